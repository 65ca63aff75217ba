package view

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const requestTimeout = 10 * time.Second

// FormatAmount renders an amount with two decimal places.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatDate formats a time.Time into YYYY-MM-DD, or "-" when the
// transaction has no date.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Format("2006-01-02")
}

// ReqCtx returns a context with a standard timeout for API requests.
func ReqCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}
