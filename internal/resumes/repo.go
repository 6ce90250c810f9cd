package resumes

import (
	"context"
	"errors"
)

var (
	// ErrNotFound means no resume exists with the given id.
	ErrNotFound = errors.New("resume not found")
	// ErrForbidden means the resume exists but belongs to another owner.
	ErrForbidden = errors.New("resume not owned by caller")
	// ErrInvalidInput covers validation failures on create or patch.
	ErrInvalidInput = errors.New("invalid input")
)

// Repo persists resume records. Ownership checks live in the service;
// repos operate on raw ids.
type Repo interface {
	Create(ctx context.Context, r Resume) error
	GetByID(ctx context.Context, id string) (Resume, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Resume, error)
	Update(ctx context.Context, r Resume) error
	Delete(ctx context.Context, id string) error
}
