package predict

import (
	"math"
	"time"
)

// AgeSeconds returns how old a snapshot is, in whole seconds, clamped at
// zero. The clamp keeps the displayed age non-negative when the local clock
// runs behind the server clock.
func AgeSeconds(now, generatedAt time.Time) int {
	age := int(math.Round(now.Sub(generatedAt).Seconds()))
	if age < 0 {
		age = 0
	}
	return age
}

// IsStale reports whether a snapshot generated at generatedAt with the given
// ttl should be flagged unreliable. The threshold is three ttl intervals;
// an age of exactly 3*ttl is still fresh.
func IsStale(now, generatedAt time.Time, ttlSeconds int) bool {
	return AgeSeconds(now, generatedAt) > 3*ttlSeconds
}
