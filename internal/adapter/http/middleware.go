package httpadapter

import (
	"context"
	"net/http"
	"strings"

	jwt "github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// Roles carried in the JWT "role" claim.
const (
	RoleDriver = "driver"
	RoleAdmin  = "admin"
)

type contextKey string

const userIDKey contextKey = "user_id"

// AuthMiddleware verifies the bearer tokens issued by the external auth
// service and gates routes by role.
type AuthMiddleware struct {
	accessSecret string
}

// NewAuthMiddleware creates the middleware with the shared HMAC secret.
func NewAuthMiddleware(accessSecret string) *AuthMiddleware {
	return &AuthMiddleware{accessSecret: accessSecret}
}

// RequireRole parses the Authorization header, verifies the token and
// admits only the given role. The authenticated user id is stored on the
// request context.
func (am *AuthMiddleware) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("Authorization")
			if raw == "" {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			raw = strings.TrimPrefix(raw, "Bearer ")

			token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(am.accessSecret), nil
			})
			if err != nil || !token.Valid {
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				writeError(w, http.StatusUnauthorized, "invalid claims")
				return
			}
			rawUserID, ok := claims["user_id"].(string)
			if !ok {
				writeError(w, http.StatusUnauthorized, "user_id claim missing")
				return
			}
			userID, err := uuid.Parse(rawUserID)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "user_id claim malformed")
				return
			}
			tokenRole, ok := claims["role"].(string)
			if !ok || tokenRole != role {
				writeError(w, http.StatusForbidden, "insufficient role")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// userIDFrom returns the authenticated user id placed by RequireRole.
func userIDFrom(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(userIDKey).(uuid.UUID)
	return id
}
