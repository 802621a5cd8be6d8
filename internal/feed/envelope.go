// Package feed provides the client for the on-street parking prediction feed.
package feed

import (
	"encoding/json"
	"fmt"
	"time"
)

// DefaultTTLSeconds is used when the feed omits its ttl or declares a
// non-positive one.
const DefaultTTLSeconds = 60

// PredictionItem is one parking space's current prediction as reported by the
// feed. Street, KerbsideID and RestrictionCode are optional and decode to the
// empty string when absent. AllowedMinutes is nil when the space has no known
// stay limit.
type PredictionItem struct {
	Street          string   `json:"street"`
	KerbsideID      string   `json:"kerbsideid"`
	Status          string   `json:"status"`
	Classification  string   `json:"classification"`
	AllowedMinutes  *float64 `json:"allowed_minutes"`
	MinutesElapsed  float64  `json:"minutes_elapsed"`
	RestrictionCode string   `json:"restriction_code"`
}

// Envelope is the top-level feed response: a snapshot of per-classification
// counts and individual predictions, stamped with the time the server computed
// it and the number of seconds it declares itself valid for.
type Envelope struct {
	Counts      map[string]int
	Items       []PredictionItem
	GeneratedAt time.Time
	TTLSeconds  int
}

// envelopeWire mirrors the JSON shape on the wire before defaults are applied.
type envelopeWire struct {
	Counts      map[string]int   `json:"counts"`
	Items       []PredictionItem `json:"items"`
	GeneratedAt string           `json:"generated_at"`
	TTL         *float64         `json:"ttl"`
}

// decodeEnvelope parses a feed response body, applying the documented
// defaults: a missing or non-positive ttl becomes DefaultTTLSeconds. A body
// that is not valid JSON or whose generated_at cannot be parsed is reported
// as a MalformedPayloadError.
func decodeEnvelope(body []byte) (*Envelope, error) {
	var wire envelopeWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, &MalformedPayloadError{Err: err}
	}

	generatedAt, err := time.Parse(time.RFC3339, wire.GeneratedAt)
	if err != nil {
		return nil, &MalformedPayloadError{Err: fmt.Errorf("bad generated_at %q: %w", wire.GeneratedAt, err)}
	}

	ttl := DefaultTTLSeconds
	if wire.TTL != nil && *wire.TTL > 0 {
		ttl = int(*wire.TTL)
	}

	return &Envelope{
		Counts:      wire.Counts,
		Items:       wire.Items,
		GeneratedAt: generatedAt,
		TTLSeconds:  ttl,
	}, nil
}
