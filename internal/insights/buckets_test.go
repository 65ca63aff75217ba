package insights_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens/internal/insights"
	"github.com/spendlens/spendlens/internal/transaction"
)

func bucketLabels(buckets []insights.Bucket) []string {
	labels := make([]string, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label
	}

	return labels
}

func TestBucketize_DayOrdersByHour(t *testing.T) {
	txs := []transaction.Transaction{
		tx(transaction.TypeExpense, "5", date(2024, time.January, 15, 14)), // 2 pm
		tx(transaction.TypeIncome, "10", date(2024, time.January, 15, 9)), // 9 am
	}

	got := insights.Bucketize(txs, insights.PeriodDay)

	assert.Equal(t, []string{"9 am", "2 pm"}, bucketLabels(got))
}

func TestBucketize_DayLabels(t *testing.T) {
	txs := []transaction.Transaction{
		tx(transaction.TypeExpense, "1", date(2024, time.January, 15, 0)),
		tx(transaction.TypeExpense, "1", date(2024, time.January, 15, 10)),
		tx(transaction.TypeExpense, "1", date(2024, time.January, 15, 12)),
		tx(transaction.TypeExpense, "1", date(2024, time.January, 15, 23)),
	}

	got := insights.Bucketize(txs, insights.PeriodDay)

	assert.Equal(t, []string{"12 am", "10 am", "12 pm", "11 pm"}, bucketLabels(got))
}

func TestBucketize_MonthOrdersByDay(t *testing.T) {
	txs := []transaction.Transaction{
		tx(transaction.TypeExpense, "40", date(2024, time.January, 10, 0)),
		tx(transaction.TypeIncome, "100", date(2024, time.January, 5, 0)),
	}

	got := insights.Bucketize(txs, insights.PeriodMonth)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"Day 5", "Day 10"}, bucketLabels(got))
	assert.True(t, got[0].Income.Equal(dec("100")))
	assert.True(t, got[0].Expense.Equal(dec("0")))
	assert.True(t, got[1].Income.Equal(dec("0")))
	assert.True(t, got[1].Expense.Equal(dec("40")))
}

func TestBucketize_YearOrdersByCalendarMonth(t *testing.T) {
	txs := []transaction.Transaction{
		tx(transaction.TypeExpense, "1", date(2024, time.March, 1, 0)),
		tx(transaction.TypeExpense, "2", date(2024, time.January, 1, 0)),
		tx(transaction.TypeExpense, "3", date(2024, time.December, 1, 0)),
	}

	got := insights.Bucketize(txs, insights.PeriodYear)

	assert.Equal(t, []string{"Jan", "Mar", "Dec"}, bucketLabels(got))
}

func TestBucketize_AllTimeKeepsInsertionOrder(t *testing.T) {
	txs := []transaction.Transaction{
		tx(transaction.TypeExpense, "1", date(2024, time.March, 2, 0)),
		tx(transaction.TypeExpense, "2", date(2024, time.January, 9, 0)),
		tx(transaction.TypeExpense, "3", date(2024, time.March, 2, 6)),
	}

	got := insights.Bucketize(txs, insights.PeriodAll)

	assert.Equal(t, []string{"2024-03-02", "2024-01-09"}, bucketLabels(got))
	assert.True(t, got[0].Expense.Equal(dec("4")), "same-date entries share a bucket")
}

func TestBucketize_SkipsDateless(t *testing.T) {
	txs := []transaction.Transaction{
		tx(transaction.TypeExpense, "1", time.Time{}),
	}

	assert.Empty(t, insights.Bucketize(txs, insights.PeriodMonth))
}

func TestBucketize_SumsMatchTotals(t *testing.T) {
	now := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	txs := []transaction.Transaction{
		tx(transaction.TypeIncome, "100", date(2024, time.January, 5, 0)),
		tx(transaction.TypeExpense, "40", date(2024, time.January, 10, 0)),
		tx(transaction.TypeIncome, "7.50", date(2024, time.January, 10, 3)),
		tx(transaction.TypeExpense, "20", date(2024, time.February, 1, 0)),
	}

	filtered := insights.FilterByPeriod(txs, insights.PeriodMonth, now)
	totals := insights.Summarize(filtered)
	buckets := insights.Bucketize(filtered, insights.PeriodMonth)

	income := dec("0")
	expense := dec("0")

	for _, b := range buckets {
		income = income.Add(b.Income)
		expense = expense.Add(b.Expense)
	}

	assert.True(t, income.Equal(totals.Income))
	assert.True(t, expense.Equal(totals.Expenses))
}

func TestMonthEndToEnd(t *testing.T) {
	now := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	txs := []transaction.Transaction{
		tx(transaction.TypeIncome, "100", date(2024, time.January, 5, 0)),
		tx(transaction.TypeExpense, "40", date(2024, time.January, 10, 0)),
		tx(transaction.TypeExpense, "20", date(2024, time.February, 1, 0)),
	}

	filtered := insights.FilterByPeriod(txs, insights.PeriodMonth, now)
	require.Len(t, filtered, 2)

	totals := insights.Summarize(filtered)
	assert.True(t, totals.Income.Equal(dec("100")))
	assert.True(t, totals.Expenses.Equal(dec("40")))
	assert.True(t, totals.Balance.Equal(dec("60")))

	buckets := insights.Bucketize(filtered, insights.PeriodMonth)
	require.Len(t, buckets, 2)

	assert.Equal(t, "Day 5", buckets[0].Label)
	assert.True(t, buckets[0].Income.Equal(dec("100")))
	assert.True(t, buckets[0].Expense.Equal(dec("0")))

	assert.Equal(t, "Day 10", buckets[1].Label)
	assert.True(t, buckets[1].Income.Equal(dec("0")))
	assert.True(t, buckets[1].Expense.Equal(dec("40")))
}
