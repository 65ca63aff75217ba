package api

import (
	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/transaction"
)

// transactionPayload is the wire shape of a transaction. Dates travel as
// ISO-8601 strings and are parsed leniently on the way in; a missing or
// unparseable date becomes the zero time rather than an error.
type transactionPayload struct {
	ID            string          `json:"id,omitempty"`
	ExpenseType   string          `json:"expenseType"`
	Title         string          `json:"title"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Date          string          `json:"date,omitempty"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Description   string          `json:"description,omitempty"`
}

func (p transactionPayload) toTransaction() transaction.Transaction {
	return transaction.Transaction{
		ID:            p.ID,
		Type:          transaction.Type(p.ExpenseType),
		Title:         p.Title,
		Amount:        p.Amount,
		Category:      p.Category,
		Date:          transaction.ParseDate(p.Date),
		PaymentMethod: p.PaymentMethod,
		Description:   p.Description,
	}
}

func fromDraft(d transaction.Draft) transactionPayload {
	return transactionPayload{
		ExpenseType:   string(d.Type),
		Title:         d.Title,
		Amount:        d.Amount,
		Category:      d.Category,
		Date:          transaction.FormatDate(d.Date),
		PaymentMethod: d.PaymentMethod,
		Description:   d.Description,
	}
}
