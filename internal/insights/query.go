package insights

import (
	"sort"
	"strings"
	"time"

	"github.com/spendlens/spendlens/internal/transaction"
)

// DateRange selects a relative window for the full listing.
type DateRange string

const (
	RangeAllTime   DateRange = "all_time"
	RangeToday     DateRange = "today"
	RangeThisWeek  DateRange = "this_week"
	RangeThisMonth DateRange = "this_month"
	RangeThisYear  DateRange = "this_year"
)

// TypeFilter narrows the listing to one transaction type.
type TypeFilter string

const (
	TypeAll         TypeFilter = "all"
	TypeIncomeOnly  TypeFilter = "income"
	TypeExpenseOnly TypeFilter = "expense"
)

// SortKey orders the listing.
type SortKey string

const (
	SortDateDesc   SortKey = "date_desc"
	SortDateAsc    SortKey = "date_asc"
	SortAmountDesc SortKey = "amount_desc"
	SortAmountAsc  SortKey = "amount_asc"
)

// Criteria are the four independent controls of the full listing view.
// Zero values mean no search, all time, all types, newest first.
type Criteria struct {
	Search string
	Range  DateRange
	Type   TypeFilter
	Sort   SortKey
}

// Query filters and orders a transaction list: free-text search, then date
// range, then type filter, then sort. Search is a case-insensitive substring
// match against title, category and description, matching if any of the
// three contains the text. Dateless transactions fail every range except
// all time. Sorting is stable; ties keep their input order.
func Query(txs []transaction.Transaction, c Criteria, now time.Time) []transaction.Transaction {
	out := make([]transaction.Transaction, 0, len(txs))

	needle := strings.ToLower(c.Search)

	for _, t := range txs {
		if needle != "" && !matchesSearch(t, needle) {
			continue
		}

		if !inRange(t, c.Range, now) {
			continue
		}

		if !matchesType(t, c.Type) {
			continue
		}

		out = append(out, t)
	}

	sortTransactions(out, c.Sort)

	return out
}

func matchesSearch(t transaction.Transaction, needle string) bool {
	return strings.Contains(strings.ToLower(t.Title), needle) ||
		strings.Contains(strings.ToLower(t.Category), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle)
}

func matchesType(t transaction.Transaction, f TypeFilter) bool {
	switch f {
	case TypeIncomeOnly:
		return t.Type == transaction.TypeIncome
	case TypeExpenseOnly:
		return t.Type == transaction.TypeExpense
	}

	return true
}

func inRange(t transaction.Transaction, r DateRange, now time.Time) bool {
	if r == "" || r == RangeAllTime {
		return true
	}

	if !t.HasDate() {
		return false
	}

	d := t.Date

	switch r {
	case RangeToday:
		return d.Year() == now.Year() && d.Month() == now.Month() && d.Day() == now.Day()
	case RangeThisWeek:
		start, end := weekBounds(now)
		return !d.Before(start) && !d.After(end)
	case RangeThisMonth:
		return d.Year() == now.Year() && d.Month() == now.Month()
	case RangeThisYear:
		return d.Year() == now.Year()
	}

	return true
}

// weekBounds returns Monday 00:00:00 through Sunday 23:59:59.999 of the ISO
// week containing now. The week starts on Monday regardless of locale.
func weekBounds(now time.Time) (time.Time, time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	offset := int(today.Weekday())
	if offset == 0 {
		offset = 7 // Sunday belongs to the week that started six days earlier
	}

	start := today.AddDate(0, 0, -(offset - 1))
	last := start.AddDate(0, 0, 6)
	end := time.Date(last.Year(), last.Month(), last.Day(), 23, 59, 59, int(999*time.Millisecond), now.Location())

	return start, end
}

func sortTransactions(txs []transaction.Transaction, key SortKey) {
	switch key {
	case SortDateAsc:
		sort.SliceStable(txs, func(i, j int) bool {
			return txs[i].Date.Before(txs[j].Date)
		})
	case SortAmountDesc:
		sort.SliceStable(txs, func(i, j int) bool {
			return txs[i].Amount.Cmp(txs[j].Amount) > 0
		})
	case SortAmountAsc:
		sort.SliceStable(txs, func(i, j int) bool {
			return txs[i].Amount.Cmp(txs[j].Amount) < 0
		})
	default: // newest first
		sort.SliceStable(txs, func(i, j int) bool {
			return txs[i].Date.After(txs[j].Date)
		})
	}
}
