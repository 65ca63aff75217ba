package insights

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/transaction"
)

// Bucket is one aggregation cell of a time-bucketed series: a label plus
// the income and expense sums of the transactions that landed in it.
type Bucket struct {
	Label   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Bucketize groups an already period-filtered list into ordered time
// buckets. The bucket key depends on the period:
//
//	PeriodDay    hour of day, 12-hour clock ("10 am", "2 pm")
//	PeriodMonth  day of month ("Day 5")
//	PeriodYear   abbreviated month name ("Jan".."Dec")
//	PeriodAll    the ISO calendar date, in insertion order
//
// Buckets are created lazily on first contribution, so the series is sparse:
// hours, days or months with no transactions are simply absent. For the
// timed periods buckets come back in chronological order regardless of input
// order; PeriodAll keeps first-appearance order and callers wanting
// chronology must pre-sort. Dateless transactions are skipped.
func Bucketize(txs []transaction.Transaction, p Period) []Bucket {
	type keyedBucket struct {
		key    int // chronological position within the period
		bucket Bucket
	}

	var cells []keyedBucket

	index := make(map[string]int)

	for _, t := range txs {
		if !t.HasDate() {
			continue
		}

		var (
			label string
			key   int
		)

		switch p {
		case PeriodDay:
			h := t.Date.Hour()
			label = hourLabel(h)
			key = h
		case PeriodMonth:
			d := t.Date.Day()
			label = fmt.Sprintf("Day %d", d)
			key = d
		case PeriodYear:
			label = t.Date.Format("Jan")
			key = int(t.Date.Month())
		default:
			label = t.Date.Format("2006-01-02")
		}

		i, ok := index[label]
		if !ok {
			i = len(cells)
			index[label] = i
			cells = append(cells, keyedBucket{key: key, bucket: Bucket{Label: label}})
		}

		if t.Type == transaction.TypeIncome {
			cells[i].bucket.Income = cells[i].bucket.Income.Add(t.Amount)
		} else {
			cells[i].bucket.Expense = cells[i].bucket.Expense.Add(t.Amount)
		}
	}

	if p != PeriodAll {
		sort.SliceStable(cells, func(i, j int) bool {
			return cells[i].key < cells[j].key
		})
	}

	buckets := make([]Bucket, len(cells))
	for i, c := range cells {
		buckets[i] = c.bucket
	}

	return buckets
}

// hourLabel renders an hour of day on a 12-hour clock with a lowercase
// am/pm marker and no leading zero, so midnight is "12 am" and noon "12 pm".
func hourLabel(h int) string {
	marker := "am"
	if h >= 12 {
		marker = "pm"
	}

	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}

	return fmt.Sprintf("%d %s", h12, marker)
}
