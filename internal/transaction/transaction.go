package transaction

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Type says whether a transaction adds to or subtracts from the balance.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Transaction represents a single recorded income or expense event.
type Transaction struct {
	ID            string
	Type          Type
	Title         string
	Amount        decimal.Decimal
	Category      string
	Date          time.Time // zero when absent or unparseable
	PaymentMethod string
	Description   string
}

// HasDate reports whether the transaction carries a usable date. Entries
// without one are skipped by every period-scoped and bucketed view.
func (t Transaction) HasDate() bool {
	return !t.Date.IsZero()
}

// Draft is the user-supplied portion of a transaction, everything except
// the server-assigned id.
type Draft struct {
	Type          Type
	Title         string
	Amount        decimal.Decimal
	Category      string
	Date          time.Time
	PaymentMethod string
	Description   string
}

// Validate checks the invariants a draft must satisfy before it may be
// submitted: a known type, a non-empty title and a non-negative amount.
func (d Draft) Validate() error {
	if d.Type != TypeIncome && d.Type != TypeExpense {
		return fmt.Errorf("%w: type must be income or expense", ErrInvalidInput)
	}

	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	if d.Amount.IsNegative() {
		return fmt.Errorf("%w: amount cannot be negative", ErrInvalidInput)
	}

	return nil
}

// ParseDate parses a wire date leniently: RFC 3339 first, then a bare
// calendar date. The zero time means absent or unparseable; callers treat
// such transactions as dateless rather than failing.
func ParseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}

	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t
	}

	return time.Time{}
}

// FormatDate renders a date for the wire, preserving the time component
// when one is present. Zero dates render as the empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(time.RFC3339)
}
