package predict

import (
	"testing"
	"time"
)

func TestAgeSeconds(t *testing.T) {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		now         time.Time
		generatedAt time.Time
		want        int
	}{
		{
			name:        "fresh snapshot",
			now:         base,
			generatedAt: base,
			want:        0,
		},
		{
			name:        "two minutes old",
			now:         base.Add(2 * time.Minute),
			generatedAt: base,
			want:        120,
		},
		{
			name:        "sub-second age rounds",
			now:         base.Add(1500 * time.Millisecond),
			generatedAt: base,
			want:        2,
		},
		{
			name:        "client clock behind server clamps to zero",
			now:         base,
			generatedAt: base.Add(30 * time.Second),
			want:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeSeconds(tt.now, tt.generatedAt); got != tt.want {
				t.Errorf("AgeSeconds() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsStale(t *testing.T) {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	const ttl = 60

	tests := []struct {
		name string
		age  time.Duration
		want bool
	}{
		{name: "fresh", age: 0, want: false},
		{name: "under threshold", age: 179 * time.Second, want: false},
		{name: "exactly three ttls is not stale", age: 180 * time.Second, want: false},
		{name: "just past threshold", age: 181 * time.Second, want: true},
		{name: "long dead", age: time.Hour, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStale(base.Add(tt.age), base, ttl); got != tt.want {
				t.Errorf("IsStale(age=%v, ttl=%d) = %v, want %v", tt.age, ttl, got, tt.want)
			}
		})
	}
}
