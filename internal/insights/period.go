// Package insights derives summary views from a transaction snapshot: period
// subsets, income/expense totals, time-bucketed series, category breakdowns
// and the filtered/sorted full listing. Every function is a pure computation
// over the slice it is given; callers pass the reference time explicitly and
// recompute whenever the snapshot or the criteria change.
package insights

import (
	"time"

	"github.com/spendlens/spendlens/internal/transaction"
)

// Period is a relative calendar window evaluated against a reference time.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "" // no filtering
)

// FilterByPeriod returns the transactions whose date falls inside the
// calendar window containing now: same day, same month or same year.
// PeriodAll passes everything through, dateless entries included; the other
// periods drop them. Input order is preserved, so filtering an
// already-filtered list is a no-op.
func FilterByPeriod(txs []transaction.Transaction, p Period, now time.Time) []transaction.Transaction {
	out := make([]transaction.Transaction, 0, len(txs))

	for _, t := range txs {
		if inPeriod(t, p, now) {
			out = append(out, t)
		}
	}

	return out
}

func inPeriod(t transaction.Transaction, p Period, now time.Time) bool {
	if p == PeriodAll {
		return true
	}

	if !t.HasDate() {
		return false
	}

	d := t.Date

	switch p {
	case PeriodDay:
		return d.Year() == now.Year() && d.Month() == now.Month() && d.Day() == now.Day()
	case PeriodMonth:
		return d.Year() == now.Year() && d.Month() == now.Month()
	case PeriodYear:
		return d.Year() == now.Year()
	}

	return true
}
