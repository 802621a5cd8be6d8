package predict

import (
	"testing"

	"github.com/parkspot/parkwatch/internal/feed"
)

func minutes(v float64) *float64 {
	return &v
}

func TestETAFor(t *testing.T) {
	tests := []struct {
		name        string
		item        feed.PredictionItem
		wantKind    ETAKind
		wantMinutes int
		wantDisplay string
	}{
		{
			name:        "unoccupied status yields none marker",
			item:        feed.PredictionItem{Status: "Unoccupied", AllowedMinutes: minutes(60), MinutesElapsed: 10},
			wantKind:    ETANone,
			wantDisplay: ETANoneMarker,
		},
		{
			name:        "unoccupied status is case-insensitive",
			item:        feed.PredictionItem{Status: "UNOCCUPIED"},
			wantKind:    ETANone,
			wantDisplay: ETANoneMarker,
		},
		{
			name:        "unoccupied status tolerates surrounding whitespace",
			item:        feed.PredictionItem{Status: " unoccupied "},
			wantKind:    ETANone,
			wantDisplay: ETANoneMarker,
		},
		{
			name:        "occupied with no stay limit yields open-ended marker",
			item:        feed.PredictionItem{Status: "Present", AllowedMinutes: nil, MinutesElapsed: 42},
			wantKind:    ETAOpenEnded,
			wantDisplay: ETAOpenEndedMarker,
		},
		{
			name:        "remaining time is allowed minus elapsed",
			item:        feed.PredictionItem{Status: "Present", AllowedMinutes: minutes(60), MinutesElapsed: 5},
			wantKind:    ETAMinutes,
			wantMinutes: 55,
			wantDisplay: "55",
		},
		{
			name:        "remaining time rounds to nearest minute",
			item:        feed.PredictionItem{Status: "Present", AllowedMinutes: minutes(60), MinutesElapsed: 5.4},
			wantKind:    ETAMinutes,
			wantMinutes: 55,
			wantDisplay: "55",
		},
		{
			name:        "over the limit clamps to zero, never negative",
			item:        feed.PredictionItem{Status: "Present", AllowedMinutes: minutes(30), MinutesElapsed: 45},
			wantKind:    ETAMinutes,
			wantMinutes: 0,
			wantDisplay: "0",
		},
		{
			name:        "unknown status with a limit still counts down",
			item:        feed.PredictionItem{Status: "Unknown", AllowedMinutes: minutes(120), MinutesElapsed: 30},
			wantKind:    ETAMinutes,
			wantMinutes: 90,
			wantDisplay: "90",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ETAFor(tt.item)
			if got.Kind != tt.wantKind {
				t.Errorf("ETAFor() kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Kind == ETAMinutes && got.Minutes != tt.wantMinutes {
				t.Errorf("ETAFor() minutes = %d, want %d", got.Minutes, tt.wantMinutes)
			}
			if got.Display() != tt.wantDisplay {
				t.Errorf("ETAFor().Display() = %q, want %q", got.Display(), tt.wantDisplay)
			}
		})
	}
}
