package dashboard

import "sync"

// State is a point-in-time copy of everything shown on the dashboard. Count
// values are the rendered strings, exactly as written to their targets.
type State struct {
	Counts  map[string]string `json:"counts"`
	Updated string            `json:"updated"`
	Rows    []Row             `json:"rows"`
}

// View is the in-memory dashboard surface. The presenter is its only writer;
// HTTP handlers read through Snapshot, which copies under the lock so a
// render in progress never observes a half-written cycle.
type View struct {
	mu      sync.RWMutex
	counts  map[string]string
	updated string
	rows    []Row
}

// NewView creates an empty dashboard surface.
func NewView() *View {
	return &View{
		counts: make(map[string]string),
	}
}

// CountTarget returns the write target for one classification's count tile.
func (v *View) CountTarget(classification string) TextTarget {
	return &countCell{view: v, key: classification}
}

// UpdatedTarget returns the write target for the updated-at line.
func (v *View) UpdatedTarget() TextTarget {
	return &updatedCell{view: v}
}

// Table returns the write target for the table body.
func (v *View) Table() TableTarget {
	return &tableBody{view: v}
}

// Snapshot returns a copy of the current dashboard state.
func (v *View) Snapshot() State {
	v.mu.RLock()
	defer v.mu.RUnlock()

	counts := make(map[string]string, len(v.counts))
	for k, val := range v.counts {
		counts[k] = val
	}
	rows := make([]Row, len(v.rows))
	copy(rows, v.rows)

	return State{
		Counts:  counts,
		Updated: v.updated,
		Rows:    rows,
	}
}

type countCell struct {
	view *View
	key  string
}

func (c *countCell) SetText(value string) {
	c.view.mu.Lock()
	defer c.view.mu.Unlock()
	c.view.counts[c.key] = value
}

type updatedCell struct {
	view *View
}

func (u *updatedCell) SetText(value string) {
	u.view.mu.Lock()
	defer u.view.mu.Unlock()
	u.view.updated = value
}

type tableBody struct {
	view *View
}

func (t *tableBody) Reset() {
	t.view.mu.Lock()
	defer t.view.mu.Unlock()
	t.view.rows = t.view.rows[:0]
}

func (t *tableBody) AppendRow(row Row) {
	t.view.mu.Lock()
	defer t.view.mu.Unlock()
	t.view.rows = append(t.view.rows, row)
}
