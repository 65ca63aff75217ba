package transaction

import (
	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/transaction"
)

type transactionResponse struct {
	ID            string           `json:"id"`
	Type          transaction.Type `json:"expenseType"`
	Title         string           `json:"title"`
	Amount        decimal.Decimal  `json:"amount"`
	Category      string           `json:"category"`
	Date          string           `json:"date,omitempty"`
	PaymentMethod string           `json:"paymentMethod,omitempty"`
	Description   string           `json:"description,omitempty"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:            tx.ID,
		Type:          tx.Type,
		Title:         tx.Title,
		Amount:        tx.Amount,
		Category:      tx.Category,
		Date:          transaction.FormatDate(tx.Date),
		PaymentMethod: tx.PaymentMethod,
		Description:   tx.Description,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
