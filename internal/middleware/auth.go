package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sneakercollection/sneakercollection-go/internal/crypto"
)

type contextKey string

const userEmailKey contextKey = "userEmail"

// JWTAuth returns middleware that validates a Bearer token from the
// Authorization header and stores the authenticated email in the context.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeEnvelopeError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeEnvelopeError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeEnvelopeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userEmailKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EmailFromContext extracts the authenticated user email from the request context.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailKey).(string)
	return email, ok
}

// writeEnvelopeError mirrors the handler package's envelope for responses
// produced before a handler runs.
func writeEnvelopeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"statusCode": status,
		"message":    msg,
		"data":       nil,
	})
}
