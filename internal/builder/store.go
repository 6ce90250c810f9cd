package builder

import (
	"context"
	"errors"
)

// ErrNoSession means no builder session exists for the resume.
var ErrNoSession = errors.New("builder session not found")

// Store persists builder sessions keyed by resume id.
type Store interface {
	Get(ctx context.Context, resumeID string) (*Session, error)
	Put(ctx context.Context, session *Session) error
	Delete(ctx context.Context, resumeID string) error
}
