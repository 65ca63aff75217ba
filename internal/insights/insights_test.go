package insights_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/transaction"
)

// tx builds a dated transaction for tests. A zero date models the
// absent/unparseable case.
func tx(typ transaction.Type, amount string, date time.Time) transaction.Transaction {
	return transaction.Transaction{
		Type:   typ,
		Title:  "test",
		Amount: decimal.RequireFromString(amount),
		Date:   date,
	}
}

func date(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
