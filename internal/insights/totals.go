package insights

import (
	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/transaction"
)

// Totals holds the income and expense sums of a transaction list and their
// difference. Amounts are exact; rounding for display is the caller's job.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// Summarize sums amounts by transaction type. An empty list yields all
// zeros, and Balance is always exactly Income minus Expenses.
func Summarize(txs []transaction.Transaction) Totals {
	var income, expenses decimal.Decimal

	for _, t := range txs {
		switch t.Type {
		case transaction.TypeIncome:
			income = income.Add(t.Amount)
		case transaction.TypeExpense:
			expenses = expenses.Add(t.Amount)
		}
	}

	return Totals{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Sub(expenses),
	}
}
