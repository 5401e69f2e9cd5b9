package services

import (
	"errors"
	"testing"

	"postlink/internal/auth"
)

func TestRegisterAndGet(t *testing.T) {
	users := NewUserService(newTestDB(t), testConfig())

	user, err := users.Register("alice@x.com", "pw123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected server-assigned id")
	}
	if user.CreatedAt.IsZero() {
		t.Error("expected server-assigned created_at")
	}
	if user.Password == "pw123" {
		t.Error("password must be stored hashed")
	}

	got, err := users.Get(user.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Email != "alice@x.com" {
		t.Errorf("expected alice@x.com, got %s", got.Email)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := NewUserService(newTestDB(t), testConfig())

	if _, err := users.Register("alice@x.com", "pw123"); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if _, err := users.Register("alice@x.com", "other"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}

	// Exact match only: a case variant is a different email.
	if _, err := users.Register("Alice@X.com", "pw123"); err != nil {
		t.Errorf("case-variant email should register, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	cfg := testConfig()
	users := NewUserService(newTestDB(t), cfg)

	user, err := users.Register("alice@x.com", "pw123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	token, err := users.Login("alice@x.com", "pw123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	userID, err := auth.ParseAccessToken(token, cfg)
	if err != nil {
		t.Fatalf("issued token did not validate: %v", err)
	}
	if userID != user.ID {
		t.Errorf("token carries user %d, want %d", userID, user.ID)
	}

	// Unknown email and wrong password must be indistinguishable.
	_, errUnknown := users.Login("nobody@x.com", "pw123")
	_, errWrongPw := users.Login("alice@x.com", "wrongpw")
	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPw)
	}
}

func TestGetMissingUser(t *testing.T) {
	users := NewUserService(newTestDB(t), testConfig())

	if _, err := users.Get(999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
