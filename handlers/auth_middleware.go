package handlers

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"jobportal/auth"
	"jobportal/models"
)

type claimsKey struct{}

func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return c, ok
}

// RequireRole admits requests carrying a valid bearer token whose user type
// is one of roles.
func RequireRole(tokens *auth.TokenIssuer, roles ...models.UserType) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "Authorization header missing or invalid")
				return
			}

			claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			if !slices.Contains(roles, claims.Type) {
				writeError(w, http.StatusForbidden, "Access denied: insufficient permissions")
				return
			}

			next(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
		}
	}
}
