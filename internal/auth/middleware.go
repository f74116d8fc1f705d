// ABOUTME: HTTP middleware binding a bearer-token identity to the request context
// ABOUTME: The binder never rejects; protected routes reject via RequireUser/RequireAdmin

package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/skoehler/tasktrack/internal/store"
)

// UserStore is the subset of the store the middleware needs to resolve a
// token subject into a concrete user record.
type UserStore interface {
	GetUserByUsername(ctx context.Context, username string) (*store.User, error)
}

// extractBearerToken extracts a bearer token from the Authorization header.
// Returns the empty string if the header is absent or malformed.
func extractBearerToken(authHeader string) string {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// Middleware returns the request identity binder. It extracts a bearer token
// from the Authorization header, verifies it, resolves the subject to a user
// record, and binds the resulting Identity to the request context.
//
// On any failure - missing header, malformed or expired token, unknown
// subject - the request simply proceeds with no bound identity. Protected
// routes then reject through RequireUser with a uniform authorization error
// rather than a parsing error, so the middleware leaks nothing about why a
// token was unusable.
func Middleware(users UserStore, issuer *TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			subject, err := issuer.Verify(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetUserByUsername(r.Context(), subject)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			id := &Identity{
				UserID:   user.ID,
				Username: user.Username,
				Email:    user.Email,
				Role:     user.Role,
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error":%q}`, message)
}

// RequireUser rejects requests that have no bound identity with a uniform
// 401. Must be used after Middleware.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if FromContext(r.Context()) == nil {
			writeAuthError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests whose bound identity lacks the admin role.
// Must be used after Middleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := FromContext(r.Context())
		if id == nil {
			writeAuthError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if !id.IsAdmin() {
			writeAuthError(w, http.StatusForbidden, "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
