package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_PassThroughWhenUnconfigured(t *testing.T) {
	mw := NewAuthMiddleware("", zerolog.Nop())
	handler := mw.Wrap(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through without configured key, got %d", rec.Code)
	}
}

func TestAuthMiddleware_RejectsMissingKey(t *testing.T) {
	mw := NewAuthMiddleware("secret", zerolog.Nop())
	handler := mw.Wrap(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if got := rec.Header().Get("WWW-Authenticate"); got != "ApiKey" {
		t.Fatalf("expected WWW-Authenticate header, got %q", got)
	}
}

func TestAuthMiddleware_RejectsWrongKey(t *testing.T) {
	mw := NewAuthMiddleware("secret", zerolog.Nop())
	handler := mw.Wrap(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(APIKeyHeader, "wrong")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_AcceptsCorrectKey(t *testing.T) {
	mw := NewAuthMiddleware("secret", zerolog.Nop())
	handler := mw.Wrap(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(APIKeyHeader, "secret")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
