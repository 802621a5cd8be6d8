// Package dashboard renders prediction snapshots onto the dashboard surface
// and serves the result over HTTP.
package dashboard

// TextTarget is a place to write a string: a count tile or the updated-at
// line. The presenter skips a nil target silently rather than failing the
// cycle.
type TextTarget interface {
	SetText(value string)
}

// TableTarget is a place to append rows. Reset clears the table body before
// a cycle repopulates it.
type TableTarget interface {
	Reset()
	AppendRow(row Row)
}

// Row is one rendered table row. Optional fields that were absent from the
// feed render as empty strings.
type Row struct {
	Street          string `json:"street"`
	SpaceID         string `json:"space_id"`
	Status          string `json:"status"`
	Classification  string `json:"classification"`
	ETADisplay      string `json:"eta"`
	RestrictionCode string `json:"restriction_code"`
}
