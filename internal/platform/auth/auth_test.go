package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "hunter2hunter2" {
		t.Error("hash must not equal the plaintext password")
	}
	if !CheckPassword(hash, "hunter2hunter2") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Error("expected non-matching password to fail")
	}
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testKey, time.Hour)

	token, err := issuer.IssueToken("42")
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}

	userID, err := issuer.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken() error: %v", err)
	}
	if userID != "42" {
		t.Errorf("expected user 42, got %s", userID)
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer(testKey, -time.Minute)

	token, err := issuer.IssueToken("42")
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}

	if _, err := issuer.VerifyToken(token); err != ErrExpiredToken {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestTokenIssuer_WrongKey(t *testing.T) {
	issuer := NewTokenIssuer(testKey, time.Hour)
	other := NewTokenIssuer([]byte("ffffffffffffffffffffffffffffffff"), time.Hour)

	token, err := issuer.IssueToken("42")
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}

	if _, err := other.VerifyToken(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestRequireSession(t *testing.T) {
	issuer := NewTokenIssuer(testKey, time.Hour)
	e := echo.New()

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, UserID(c))
	}
	h := RequireSession(issuer)(handler)

	// Missing token
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err == nil {
		t.Error("expected error for missing token")
	}

	// Garbage token
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec = httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err == nil {
		t.Error("expected error for invalid token")
	}

	// Valid token
	token, _ := issuer.IssueToken("7")
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec = httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Body.String() != "7" {
		t.Errorf("expected user 7 on context, got %q", rec.Body.String())
	}
}
