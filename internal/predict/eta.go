package predict

import (
	"math"
	"strconv"
	"strings"

	"github.com/parkspot/parkwatch/internal/feed"
)

// ETAKind distinguishes the three remaining-time outcomes.
type ETAKind int

const (
	// ETANone means the space is currently unoccupied, so there is nothing
	// to count down.
	ETANone ETAKind = iota
	// ETAOpenEnded means the space is occupied but has no known stay limit.
	ETAOpenEnded
	// ETAMinutes means a concrete number of permitted minutes remains.
	ETAMinutes
)

// Display markers for the non-numeric outcomes.
const (
	ETANoneMarker      = "-"
	ETAOpenEndedMarker = "no limit"
)

// ETA is the derived remaining permitted-stay estimate for one space.
type ETA struct {
	Kind    ETAKind
	Minutes int
}

// ETAFor computes the remaining-time estimate for an item. A status of
// "unoccupied" (any case) yields ETANone regardless of the timing fields.
// A nil allowed-minutes cap yields ETAOpenEnded; the remaining-time concept
// is undefined there and must never render as a number. Otherwise the result
// is allowed minus elapsed, rounded, clamped at zero so a space already over
// its limit reports zero remaining rather than negative time.
func ETAFor(item feed.PredictionItem) ETA {
	if strings.EqualFold(strings.TrimSpace(item.Status), "unoccupied") {
		return ETA{Kind: ETANone}
	}
	if item.AllowedMinutes == nil {
		return ETA{Kind: ETAOpenEnded}
	}

	remaining := int(math.Round(*item.AllowedMinutes - item.MinutesElapsed))
	if remaining < 0 {
		remaining = 0
	}
	return ETA{Kind: ETAMinutes, Minutes: remaining}
}

// Display renders the ETA for the dashboard table.
func (e ETA) Display() string {
	switch e.Kind {
	case ETANone:
		return ETANoneMarker
	case ETAOpenEnded:
		return ETAOpenEndedMarker
	default:
		return strconv.Itoa(e.Minutes)
	}
}
