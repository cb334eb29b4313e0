package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/crucial707/portfolio-api/internal/auth"
	"github.com/crucial707/portfolio-api/internal/metrics"
)

type contextKey string

const claimsKey contextKey = "auth_claims"

// ClaimsFromContext returns the claims stored by RequireAuth.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

// RequireAuth gates a route group behind a bearer token. A missing header
// or empty token segment is 401; a token that fails verification is 403.
// The decoded claims go into the request context; the referenced user is
// NOT re-checked against the store here, so an unexpired token keeps
// working even if the account is gone (handlers that need the record do
// their own lookup and 404).
func RequireAuth(gateway *auth.Gateway) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				metrics.IncTokenVerifications("no_token")
				writeError(w, "Access denied. No token provided.", http.StatusUnauthorized)
				return
			}

			claims, err := gateway.ParseToken(token)
			if err != nil {
				metrics.IncTokenVerifications("invalid_token")
				writeError(w, "Invalid or expired token.", http.StatusForbidden)
				return
			}

			metrics.IncTokenVerifications("success")
			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. Returns "" when the header is absent, has no token
// segment, or uses another scheme.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// writeError mirrors handlers.JSONError; duplicated here to keep the
// middleware package free of a handlers import cycle.
func writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
