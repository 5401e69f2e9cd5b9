package auth

import (
	"testing"
	"time"

	"postlink/internal/config"

	jwt "github.com/golang-jwt/jwt/v4"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:          "test-secret",
		Algorithm:          "HS256",
		TokenExpireMinutes: 30,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testConfig()

	token, err := CreateAccessToken(42, cfg)
	if err != nil {
		t.Fatalf("CreateAccessToken failed: %v", err)
	}

	userID, err := ParseAccessToken(token, cfg)
	if err != nil {
		t.Fatalf("ParseAccessToken failed: %v", err)
	}
	if userID != 42 {
		t.Errorf("expected user id 42, got %d", userID)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	cfg := testConfig()
	cfg.TokenExpireMinutes = -1

	token, err := CreateAccessToken(7, cfg)
	if err != nil {
		t.Fatalf("CreateAccessToken failed: %v", err)
	}

	if _, err := ParseAccessToken(token, cfg); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	cfg := testConfig()

	token, err := CreateAccessToken(7, cfg)
	if err != nil {
		t.Fatalf("CreateAccessToken failed: %v", err)
	}

	other := testConfig()
	other.SecretKey = "another-secret"
	if _, err := ParseAccessToken(token, other); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestMalformedTokenRejected(t *testing.T) {
	cfg := testConfig()

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := ParseAccessToken(raw, cfg); err != ErrInvalidToken {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", raw, err)
		}
	}
}

func TestMissingIdentityClaimRejected(t *testing.T) {
	cfg := testConfig()

	// Valid signature and expiry, but no user_id claim.
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.SecretKey))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := ParseAccessToken(token, cfg); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for missing claim, got %v", err)
	}
}

func TestNonHMACAlgorithmRefused(t *testing.T) {
	cfg := testConfig()
	cfg.Algorithm = "RS256"

	if _, err := CreateAccessToken(1, cfg); err == nil {
		t.Error("expected error for non-HMAC signing algorithm")
	}

	cfg.Algorithm = "bogus"
	if _, err := CreateAccessToken(1, cfg); err == nil {
		t.Error("expected error for unknown signing algorithm")
	}
}
