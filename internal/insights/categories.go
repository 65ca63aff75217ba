package insights

import (
	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/transaction"
)

// CategoryTotal is the summed expense amount for one category label.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// GroupExpensesByCategory sums expense amounts per category label, in
// first-appearance order. Income transactions are ignored entirely; an
// empty-string category is a legitimate group, not a dropped one.
func GroupExpensesByCategory(txs []transaction.Transaction) []CategoryTotal {
	var groups []CategoryTotal

	index := make(map[string]int)

	for _, t := range txs {
		if t.Type != transaction.TypeExpense {
			continue
		}

		i, ok := index[t.Category]
		if !ok {
			i = len(groups)
			index[t.Category] = i
			groups = append(groups, CategoryTotal{Category: t.Category})
		}

		groups[i].Amount = groups[i].Amount.Add(t.Amount)
	}

	return groups
}
