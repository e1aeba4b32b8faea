// league/api/middleware.go
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/openfooty/league-api/league/auth"
	"github.com/openfooty/league-api/shared/api"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// RequireAuth verifies the Bearer token and stores its claims on the request
// context.
func (h *Handlers) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			api.WriteUnauthorized(w, "authorization token required")
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if tokenStr == header || tokenStr == "" {
			api.WriteUnauthorized(w, "invalid authorization header")
			return
		}

		claims, err := h.tokens.Verify(tokenStr)
		if err != nil {
			api.WriteUnauthorized(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects requests whose token is not admin-scoped. It must run
// after RequireAuth.
func (h *Handlers) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromContext(r.Context())
		if claims == nil || !claims.Admin {
			api.WriteUnauthorized(w, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func claimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*auth.Claims)
	return claims
}
