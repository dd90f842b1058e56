package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vietbank/banking-api/internal/models"
	"github.com/vietbank/banking-api/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "account_claims"

type authErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Authenticate creates middleware that validates the bearer token and
// stores the account claims in the request context.
func Authenticate(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeAuthError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}

			claims, err := security.ParseToken(jwtSecret, strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeAuthError(w, http.StatusUnauthorized, "unauthorized", err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
		})
	}
}

// RequireAdmin creates middleware that rejects non-admin accounts. It
// must run after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || claims.Role != string(models.RoleAdmin) {
			writeAuthError(w, http.StatusForbidden, "forbidden", "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ContextWithClaims returns a context carrying the given account claims
func ContextWithClaims(ctx context.Context, claims *security.AccountClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext extracts the authenticated account claims stored by
// Authenticate.
func ClaimsFromContext(ctx context.Context) (*security.AccountClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*security.AccountClaims)
	return claims, ok
}

func writeAuthError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Best effort response writing
	json.NewEncoder(w).Encode(authErrorResponse{Error: code, Message: message})
}
