package transaction

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, userID string, tx *Transaction) error
	GetTransaction(ctx context.Context, userID, id string) (*Transaction, error)
	ListTransactions(ctx context.Context, userID string) ([]*Transaction, error)
	UpdateTransaction(ctx context.Context, userID string, tx *Transaction) error
	DeleteTransaction(ctx context.Context, userID, id string) error
}

// Service implements the server side of the transaction API: per-user CRUD
// with draft validation. Aggregation is not done here; clients derive their
// views from the list.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, userID string, draft Draft) (*Transaction, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	tx := draft.toTransaction()
	tx.ID = uuid.New().String()

	if err := s.repo.CreateTransaction(ctx, userID, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, userID)
}

// Update replaces every field of an existing transaction except its id.
func (s *Service) Update(ctx context.Context, userID, id string, draft Draft) (*Transaction, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetTransaction(ctx, userID, id); err != nil {
		return nil, err
	}

	tx := draft.toTransaction()
	tx.ID = id

	if err := s.repo.UpdateTransaction(ctx, userID, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.DeleteTransaction(ctx, userID, id)
}

func (d Draft) toTransaction() *Transaction {
	return &Transaction{
		Type:          d.Type,
		Title:         d.Title,
		Amount:        d.Amount,
		Category:      d.Category,
		Date:          d.Date,
		PaymentMethod: d.PaymentMethod,
		Description:   d.Description,
	}
}
