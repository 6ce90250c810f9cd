package auth

import (
	"testing"
	"time"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)

	token, err := mgr.Sign("user-1", "jane@example.com", "Jane Doe")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	claims, err := mgr.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("expected subject user-1, got %q", claims.Subject)
	}
	if claims.Email != "jane@example.com" {
		t.Fatalf("expected email preserved, got %q", claims.Email)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	mgr := NewManager("test-secret", -time.Hour)

	token, err := mgr.Sign("user-1", "", "")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if _, err := mgr.Verify(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).Sign("user-1", "", "")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if _, err := NewManager("secret-b", time.Hour).Verify(token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestSignRequiresUserID(t *testing.T) {
	if _, err := NewManager("s", time.Hour).Sign("  ", "", ""); err == nil {
		t.Fatal("expected error for blank user id")
	}
}
