package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/rs/zerolog"
)

// APIKeyHeader is the header carrying the client API key.
const APIKeyHeader = "X-API-Key"

// AuthMiddleware enforces API key authentication. When no key is configured
// the middleware is a pass-through; a warning is logged once at construction
// so the open mode is visible in production logs.
type AuthMiddleware struct {
	apiKey string
	logger zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(apiKey string, logger zerolog.Logger) *AuthMiddleware {
	if apiKey == "" {
		logger.Warn().Msg("no API key configured, authentication is disabled")
	}

	return &AuthMiddleware{
		apiKey: apiKey,
		logger: logger,
	}
}

// Wrap wraps an http.Handler with API key verification.
func (m *AuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get(APIKeyHeader)
		if key == "" {
			m.logger.Warn().
				Str("path", r.URL.Path).
				Msg("API key missing from request")

			unauthorized(w, "API key is required")

			return
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(m.apiKey)) != 1 {
			m.logger.Warn().
				Str("path", r.URL.Path).
				Msg("invalid API key attempted")

			unauthorized(w, "invalid API key")

			return
		}

		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "ApiKey")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
