package accounts

import (
	"context"
	"errors"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	account, err := svc.Register(ctx, "Jane Doe", "Jane@Example.com", "hunter22")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if account.ID == "" {
		t.Fatal("expected id to be assigned")
	}
	if account.Email != "jane@example.com" {
		t.Fatalf("expected normalized email, got %q", account.Email)
	}
	if account.PasswordHash == "hunter22" {
		t.Fatal("password stored in plain text")
	}

	got, err := svc.Login(ctx, "jane@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.ID != account.ID {
		t.Fatalf("expected account %q, got %q", account.ID, got.ID)
	}
}

func TestRegisterRequiresAllFields(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	cases := []struct {
		name, fullName, email, password string
	}{
		{"missing name", "", "jane@example.com", "hunter22"},
		{"missing email", "Jane Doe", "", "hunter22"},
		{"missing password", "Jane Doe", "jane@example.com", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(context.Background(), tc.fullName, tc.email, tc.password); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Jane Doe", "jane@example.com", "hunter22"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(ctx, "Other Jane", "JANE@example.com", "different"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Jane Doe", "jane@example.com", "hunter22"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Login(ctx, "jane@example.com", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.Login(context.Background(), "nobody@example.com", "hunter22"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
}

func TestLoginGoogleOnlyAccount(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.UpsertFromGoogle(ctx, "sub-1", "jane@example.com", "Jane Doe", ""); err != nil {
		t.Fatalf("UpsertFromGoogle: %v", err)
	}
	if _, err := svc.Login(ctx, "jane@example.com", "anything"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
}

func TestUpsertFromGoogleIsStable(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	first, err := svc.UpsertFromGoogle(ctx, "sub-1", "jane@example.com", "Jane Doe", "https://pic.example/1.png")
	if err != nil {
		t.Fatalf("UpsertFromGoogle: %v", err)
	}
	second, err := svc.UpsertFromGoogle(ctx, "sub-1", "jane@example.com", "Jane D.", "https://pic.example/2.png")
	if err != nil {
		t.Fatalf("UpsertFromGoogle again: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected stable account id, got %q then %q", first.ID, second.ID)
	}

	stored, err := svc.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.FullName != "Jane D." {
		t.Fatalf("expected refreshed name, got %q", stored.FullName)
	}
}
