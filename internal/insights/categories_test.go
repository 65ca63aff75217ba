package insights_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens/internal/insights"
	"github.com/spendlens/spendlens/internal/transaction"
)

func catTx(category, amount string) transaction.Transaction {
	t := tx(transaction.TypeExpense, amount, date(2024, time.January, 1, 0))
	t.Category = category

	return t
}

func TestGroupExpensesByCategory(t *testing.T) {
	income := tx(transaction.TypeIncome, "100", date(2024, time.January, 1, 0))
	income.Category = "Food"

	txs := []transaction.Transaction{
		income,
		catTx("Food", "10"),
	}

	got := insights.GroupExpensesByCategory(txs)

	require.Len(t, got, 1)
	assert.Equal(t, "Food", got[0].Category)
	assert.True(t, got[0].Amount.Equal(dec("10")), "income must not count toward the category")
}

func TestGroupExpensesByCategory_FirstAppearanceOrder(t *testing.T) {
	txs := []transaction.Transaction{
		catTx("Rent", "800"),
		catTx("Food", "10"),
		catTx("Rent", "50"),
		catTx("Travel", "100"),
	}

	got := insights.GroupExpensesByCategory(txs)

	require.Len(t, got, 3)
	assert.Equal(t, "Rent", got[0].Category)
	assert.True(t, got[0].Amount.Equal(dec("850")))
	assert.Equal(t, "Food", got[1].Category)
	assert.Equal(t, "Travel", got[2].Category)
}

func TestGroupExpensesByCategory_KeepsEmptyLabel(t *testing.T) {
	txs := []transaction.Transaction{
		catTx("", "5"),
		catTx("", "7"),
	}

	got := insights.GroupExpensesByCategory(txs)

	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].Category)
	assert.True(t, got[0].Amount.Equal(dec("12")))
}

func TestGroupExpensesByCategory_Empty(t *testing.T) {
	assert.Empty(t, insights.GroupExpensesByCategory(nil))
}
