package accounts

import (
	"context"
	"errors"
)

var (
	// ErrNotFound means no account matches the lookup.
	ErrNotFound = errors.New("account not found")
	// ErrEmailTaken means an account with the email already exists.
	ErrEmailTaken = errors.New("email already registered")
)

// Repo persists accounts.
type Repo interface {
	Create(ctx context.Context, account Account) error
	GetByID(ctx context.Context, id string) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
	Upsert(ctx context.Context, account Account) error
}
