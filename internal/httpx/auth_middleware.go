package httpx

import (
	"net/http"
	"strings"

	"bookshelf/internal/platform/crypto"
)

// AuthMiddleware admits requests carrying a valid bearer token. A missing token
// is 401; a token that fails verification (bad signature, expired) is 403.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			if !strings.HasPrefix(authHeader, "Bearer ") || token == "" {
				JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
				return
			}

			claims, err := crypto.ParseToken(secret, token)
			if err != nil {
				JSONError(w, r, http.StatusForbidden, "INVALID_TOKEN", "Invalid token", nil)
				return
			}

			ctx := ContextWithUser(r.Context(), claims.UserID, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OwnershipGuard decides whether the authenticated caller may act on the user
// named by a path parameter.
type OwnershipGuard struct {
	Enforce bool
}

func isSelfOrAdmin(r *http.Request, pathUserID string) bool {
	return UserIDFrom(r) == pathUserID || RoleFrom(r) == RoleAdmin
}

// Allow writes 403 and returns false when the caller is neither the path user
// nor an admin. With Enforce off every authenticated caller is allowed.
func (g OwnershipGuard) Allow(w http.ResponseWriter, r *http.Request, pathUserID string) bool {
	if !g.Enforce || isSelfOrAdmin(r, pathUserID) {
		return true
	}
	JSONError(w, r, http.StatusForbidden, "FORBIDDEN", "Forbidden", nil)
	return false
}
