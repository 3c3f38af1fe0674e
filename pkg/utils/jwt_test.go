package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func TestGenerateToken_RoundTrip(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken(42, testSecret)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	userCtx, err := ValidateToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if userCtx.ID != 42 {
		t.Fatalf("expected user id 42, got %d", userCtx.ID)
	}
}

func TestValidateToken_BearerPrefixTolerated(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken(7, testSecret)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	userCtx, err := ValidateToken("Bearer "+token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if userCtx.ID != 7 {
		t.Fatalf("expected user id 7, got %d", userCtx.ID)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken(42, testSecret)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := ValidateToken(token, "other-secret"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateToken_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := ValidateToken("not-a-token", testSecret); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateToken_Missing(t *testing.T) {
	t.Parallel()

	if _, err := ValidateToken("", testSecret); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	claims := TokenClaims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign expired token: %v", err)
	}

	if _, err := ValidateToken(token, testSecret); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}
