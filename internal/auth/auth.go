// Package auth implements account registration, credential checks and token
// issuance for the HTTP API.
package auth

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// Account is a stored user account. PasswordHash is a bcrypt hash and never
// leaves the server.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}
