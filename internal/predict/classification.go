// Package predict derives display values from raw prediction feed data:
// remaining-time estimates, snapshot staleness and the display ranking.
// Everything in this package is a pure function of its inputs.
package predict

// The six canonical classification keys assigned by the prediction feed.
const (
	ClassUnoccupied    = "UNOCCUPIED"
	ClassVacate15M     = "VACATE_15M"
	ClassVacate30M     = "VACATE_30M"
	ClassVacate60M     = "VACATE_60M"
	ClassOccupiedGT60M = "OCCUPIED_GT_60M"
	ClassPermitParking = "PERMIT_PARKING"
)

// Classifications lists the fixed key set in display order. Counts for keys
// absent from a payload default to zero at the presentation boundary.
var Classifications = []string{
	ClassUnoccupied,
	ClassVacate15M,
	ClassVacate30M,
	ClassVacate60M,
	ClassOccupiedGT60M,
	ClassPermitParking,
}
