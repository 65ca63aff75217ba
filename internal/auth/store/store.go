package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spendlens/spendlens/internal/auth"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateAccount(ctx context.Context, account *auth.Account) error {
	query := `
		INSERT INTO accounts (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	_, err := s.db.ExecContext(ctx, query, account.ID, account.Name, account.Email, account.PasswordHash)
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) GetAccountByEmail(ctx context.Context, email string) (*auth.Account, error) {
	query := `SELECT id, name, email, password_hash FROM accounts WHERE email = $1`

	return scanAccount(s.db.QueryRowContext(ctx, query, email))
}

func (s *Store) GetAccount(ctx context.Context, id string) (*auth.Account, error) {
	query := `SELECT id, name, email, password_hash FROM accounts WHERE id = $1`

	return scanAccount(s.db.QueryRowContext(ctx, query, id))
}

func scanAccount(row *sql.Row) (*auth.Account, error) {
	var account auth.Account

	err := row.Scan(&account.ID, &account.Name, &account.Email, &account.PasswordHash)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, auth.ErrAccountNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return &account, nil
}
