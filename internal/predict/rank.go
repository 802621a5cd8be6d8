package predict

import (
	"math"
	"sort"

	"github.com/parkspot/parkwatch/internal/feed"
)

// Rank returns a copy of items in display order. Spaces classified as
// unoccupied sort before everything else; within the remainder, numeric ETA
// ascending, with a nil allowed-minutes cap treated as an effectively
// infinite ETA so those spaces sort last. The sort is stable, so items with
// equal keys keep their relative order from the feed.
func Rank(items []feed.PredictionItem) []feed.PredictionItem {
	ranked := make([]feed.PredictionItem, len(items))
	copy(ranked, items)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		aUnoccupied := a.Classification == ClassUnoccupied
		bUnoccupied := b.Classification == ClassUnoccupied
		if aUnoccupied != bUnoccupied {
			return aUnoccupied
		}

		return rankKey(a) < rankKey(b)
	})

	return ranked
}

// rankKey is the numeric ETA used for ordering. It is keyed off the raw
// timing fields rather than the display ETA so that a nil cap compares as
// infinite instead of against a number.
func rankKey(item feed.PredictionItem) float64 {
	if item.AllowedMinutes == nil {
		return math.Inf(1)
	}
	remaining := math.Round(*item.AllowedMinutes - item.MinutesElapsed)
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}
