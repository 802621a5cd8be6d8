package dashboard

import (
	"fmt"
	"strconv"
	"time"

	"github.com/parkspot/parkwatch/internal/feed"
	"github.com/parkspot/parkwatch/internal/predict"
)

// MaxTableRows is the hard cap on rendered rows, independent of how many
// items the feed returned.
const MaxTableRows = 500

// staleSuffix is appended to the updated-at line when the snapshot has aged
// past its staleness threshold.
const staleSuffix = " (stale)"

// Presenter writes computed counts, ranked rows and the staleness line into
// the dashboard surface. Each of its three writes is independent and
// tolerates a missing target: if a surface region does not exist the write
// is skipped silently.
type Presenter struct {
	counts  map[string]TextTarget
	updated TextTarget
	table   TableTarget
}

// NewPresenter creates a presenter over the given targets. Any target,
// including individual count targets, may be nil.
func NewPresenter(counts map[string]TextTarget, updated TextTarget, table TableTarget) *Presenter {
	return &Presenter{
		counts:  counts,
		updated: updated,
		table:   table,
	}
}

// PresentCounts writes each of the six classification counts to its display
// target. Keys absent from the payload display as zero; that default is
// applied here, at the presentation boundary, not stored anywhere.
func (p *Presenter) PresentCounts(counts map[string]int) {
	for _, key := range predict.Classifications {
		target := p.counts[key]
		if target == nil {
			continue
		}
		target.SetText(strconv.Itoa(counts[key]))
	}
}

// PresentTable clears and repopulates the table body with the ranked items,
// truncated to the first MaxTableRows rows.
func (p *Presenter) PresentTable(ranked []feed.PredictionItem) {
	if p.table == nil {
		return
	}

	p.table.Reset()
	for i, item := range ranked {
		if i >= MaxTableRows {
			break
		}
		p.table.AppendRow(Row{
			Street:          item.Street,
			SpaceID:         item.KerbsideID,
			Status:          item.Status,
			Classification:  item.Classification,
			ETADisplay:      predict.ETAFor(item).Display(),
			RestrictionCode: item.RestrictionCode,
		})
	}
}

// PresentUpdated writes the human-readable age of the snapshot, flagging it
// when the age has passed the staleness threshold.
func (p *Presenter) PresentUpdated(now, generatedAt time.Time, ttlSeconds int) {
	if p.updated == nil {
		return
	}

	text := fmt.Sprintf("updated %d seconds ago", predict.AgeSeconds(now, generatedAt))
	if predict.IsStale(now, generatedAt, ttlSeconds) {
		text += staleSuffix
	}
	p.updated.SetText(text)
}
