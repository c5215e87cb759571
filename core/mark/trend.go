package mark

import "github.com/trezcool/shule/core/assessment"

// Trend labels
const (
	TrendNew      = "New"
	TrendImproved = "Improved"
	TrendDeclined = "Declined"
	TrendSame     = "Same"
)

// histMark pairs a historical mark with its assessment so priors can be
// ordered chronologically and compared by percentage.
type histMark struct {
	mark Mark
	asmt assessment.Assessment
}

func (h histMark) percentage() float64 {
	return percentage(h.mark.Obtained, h.asmt.TotalMarks)
}

// moreRecent orders by assessment date, same-day ties broken by assessment id
// (ids are unique, so the order is total).
func moreRecent(a, b histMark) bool {
	if !a.asmt.Date.Equal(b.asmt.Date) {
		return a.asmt.Date.After(b.asmt.Date)
	}
	return a.asmt.ID > b.asmt.ID
}

// latestPrior selects the most recent mark in hist, skipping the mark being
// (re-)evaluated so a correction never compares against itself.
func latestPrior(hist []histMark, excludeMarkID int) (histMark, bool) {
	var last histMark
	var found bool
	for _, h := range hist {
		if excludeMarkID != 0 && h.mark.ID == excludeMarkID {
			continue
		}
		if !found || moreRecent(h, last) {
			last = h
			found = true
		}
	}
	return last, found
}

func percentage(obtained, total float64) float64 {
	if total == 0 {
		return 0
	}
	return obtained / total * 100
}

func compareTrend(currentPct, priorPct float64) string {
	if currentPct > priorPct {
		return TrendImproved
	}
	if currentPct < priorPct {
		return TrendDeclined
	}
	return TrendSame
}
