// Package store holds the in-memory transaction list for the active
// session: the single source of truth every derived view reads from.
// Mutations are delegated to the remote API and applied locally only after
// the server confirms them.
package store

import (
	"context"
	"sync"

	"github.com/spendlens/spendlens/internal/transaction"
)

//go:generate mockgen -source=store.go -destination=api_mock.go -package=store
type API interface {
	ListTransactions(ctx context.Context) ([]transaction.Transaction, error)
	GetTransaction(ctx context.Context, id string) (transaction.Transaction, error)
	CreateTransaction(ctx context.Context, draft transaction.Draft) (transaction.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, draft transaction.Draft) (transaction.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// Store caches the authoritative transaction list. Every mutation is a
// single request/response round trip; on failure the snapshot keeps its
// last-known-good contents and the error surfaces once to the caller, with
// no retry. Callers must not issue overlapping mutations for the same id.
type Store struct {
	api API

	mu  sync.RWMutex
	txs []transaction.Transaction
}

func New(api API) *Store {
	return &Store{api: api}
}

// Refresh refetches the full list and replaces the snapshot. On error the
// previous snapshot stays in place.
func (s *Store) Refresh(ctx context.Context) error {
	txs, err := s.api.ListTransactions(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.txs = txs
	s.mu.Unlock()

	return nil
}

// Snapshot returns a copy of the current list, safe to hand to the pure
// derivation functions while mutations continue.
func (s *Store) Snapshot() []transaction.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]transaction.Transaction, len(s.txs))
	copy(out, s.txs)

	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.txs)
}

// Create submits a draft and prepends the server-confirmed transaction.
func (s *Store) Create(ctx context.Context, draft transaction.Draft) (transaction.Transaction, error) {
	created, err := s.api.CreateTransaction(ctx, draft)
	if err != nil {
		return transaction.Transaction{}, err
	}

	s.mu.Lock()
	s.txs = append([]transaction.Transaction{created}, s.txs...)
	s.mu.Unlock()

	return created, nil
}

// Update replaces the transaction with the server-confirmed result,
// in place.
func (s *Store) Update(ctx context.Context, id string, draft transaction.Draft) (transaction.Transaction, error) {
	updated, err := s.api.UpdateTransaction(ctx, id, draft)
	if err != nil {
		return transaction.Transaction{}, err
	}

	s.mu.Lock()
	for i := range s.txs {
		if s.txs[i].ID == id {
			s.txs[i] = updated
			break
		}
	}
	s.mu.Unlock()

	return updated, nil
}

// Delete removes the transaction from the snapshot once the server
// confirms the deletion.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteTransaction(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.txs {
		if s.txs[i].ID == id {
			s.txs = append(s.txs[:i], s.txs[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	return nil
}

// Get fetches a single transaction from the remote API without touching
// the snapshot.
func (s *Store) Get(ctx context.Context, id string) (transaction.Transaction, error) {
	return s.api.GetTransaction(ctx, id)
}

// Clear drops the snapshot. Called when the session ends.
func (s *Store) Clear() {
	s.mu.Lock()
	s.txs = nil
	s.mu.Unlock()
}
