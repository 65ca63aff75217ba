package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spendlens/spendlens/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const transactionColumns = `id, type, title, amount, category, date, payment_method, description`

// scanTransaction reads a transaction row. The date column is nullable:
// transactions without a usable date are stored with NULL and come back as
// the zero time.
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var (
		typeStr       string
		date          sql.NullTime
		paymentMethod sql.NullString
		description   sql.NullString
	)

	if err := s.Scan(
		&tx.ID, &typeStr, &tx.Title, &tx.Amount, &tx.Category,
		&date, &paymentMethod, &description,
	); err != nil {
		return nil, err
	}

	tx.Type = transaction.Type(typeStr)
	tx.Date = date.Time
	tx.PaymentMethod = paymentMethod.String
	tx.Description = description.String

	return &tx, nil
}

func nullDate(tx *transaction.Transaction) sql.NullTime {
	return sql.NullTime{Time: tx.Date, Valid: tx.HasDate()}
}

func (s *Store) CreateTransaction(ctx context.Context, userID string, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, type, title, amount, category, date, payment_method, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`

	_, err := s.db.ExecContext(ctx, query,
		tx.ID,
		userID,
		tx.Type,
		tx.Title,
		tx.Amount,
		tx.Category,
		nullDate(tx),
		tx.PaymentMethod,
		tx.Description,
	)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, userID, id string) (*transaction.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE id = $1 AND user_id = $2`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, userID string) ([]*transaction.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, userID string, tx *transaction.Transaction) error {
	query := `
		UPDATE transactions
		SET type = $1, title = $2, amount = $3, category = $4, date = $5, payment_method = $6, description = $7, updated_at = NOW()
		WHERE id = $8 AND user_id = $9
	`

	res, err := s.db.ExecContext(ctx, query,
		tx.Type,
		tx.Title,
		tx.Amount,
		tx.Category,
		nullDate(tx),
		tx.PaymentMethod,
		tx.Description,
		tx.ID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return transaction.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, userID, id string) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return transaction.ErrNotFound
	}

	return nil
}
