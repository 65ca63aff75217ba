package transaction

import "errors"

var (
	// ErrNotFound is returned when no transaction exists for the given id.
	ErrNotFound = errors.New("transaction not found")

	// ErrInvalidInput is returned when a draft fails validation.
	ErrInvalidInput = errors.New("invalid transaction")
)
