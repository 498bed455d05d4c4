package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dkenzhebek/estatefinder/internal/jwt"
	"github.com/dkenzhebek/estatefinder/internal/logger"
)

// Tokener defines the minimal token operations needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// identityKey is an unexported type for the identity context key.
type identityKey struct{}

// WithIdentity stores the authenticated identity in the context.
func WithIdentity(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, identityKey{}, claims)
}

// IdentityFromContext retrieves the authenticated identity from the context.
// Returns nil when the request did not pass the auth middleware.
func IdentityFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(identityKey{}).(*jwt.Claims)
	return claims
}

// AuthMiddleware validates the bearer token and puts the decoded identity
// into the request context. A missing token is rejected with 401, an invalid
// or expired one with 403.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeAuthError(w, http.StatusUnauthorized, "Missing token")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeAuthError(w, http.StatusForbidden, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(ctx, claims)))
		})
	}
}

// RequireRole rejects requests whose authenticated identity does not hold
// exactly the given role. There is no role hierarchy: admin is not
// implicitly agent.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := IdentityFromContext(r.Context())
			if identity == nil || identity.Role != role {
				writeAuthError(w, http.StatusForbidden, "Forbidden: Insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
