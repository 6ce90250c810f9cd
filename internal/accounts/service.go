package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidInput covers missing registration or login fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrBadCredentials means the email/password pair does not match.
	ErrBadCredentials = errors.New("invalid credentials")
)

// Service implements registration and password login over a Repo.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Register creates a new password account. All three fields are required.
func (s *Service) Register(ctx context.Context, fullName, email, password string) (Account, error) {
	fullName = strings.TrimSpace(fullName)
	email = normalizeEmail(email)
	if fullName == "" || email == "" || password == "" {
		return Account{}, fmt.Errorf("%w: full name, email and password are required", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, fmt.Errorf("hash password: %w", err)
	}

	account := Account{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, account); err != nil {
		return Account{}, err
	}
	return account, nil
}

// Login verifies the email/password pair and returns the account.
func (s *Service) Login(ctx context.Context, email, password string) (Account, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return Account{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	account, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Account{}, ErrBadCredentials
		}
		return Account{}, err
	}
	if account.PasswordHash == "" {
		// Google-only account; no password to match.
		return Account{}, ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return Account{}, ErrBadCredentials
	}
	return account, nil
}

// GetByID loads an account by id.
func (s *Service) GetByID(ctx context.Context, id string) (Account, error) {
	if strings.TrimSpace(id) == "" {
		return Account{}, fmt.Errorf("%w: account id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

// UpsertFromGoogle persists the identity returned by Google sign-in. The
// account id is derived from the Google subject so repeat sign-ins map to
// the same account.
func (s *Service) UpsertFromGoogle(ctx context.Context, sub, email, name, picture string) (Account, error) {
	sub = strings.TrimSpace(sub)
	email = normalizeEmail(email)
	if sub == "" || email == "" {
		return Account{}, fmt.Errorf("%w: google subject and email are required", ErrInvalidInput)
	}
	account := Account{
		ID:         "google:" + sub,
		Email:      email,
		FullName:   strings.TrimSpace(name),
		PictureURL: strings.TrimSpace(picture),
	}
	if err := s.Repo.Upsert(ctx, account); err != nil {
		return Account{}, err
	}
	return account, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
