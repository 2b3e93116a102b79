package httpadapter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jwt "github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func protectedEndpoint(t *testing.T, role string, wantUserID uuid.UUID) http.Handler {
	t.Helper()
	am := NewAuthMiddleware(testSecret)
	return am.RequireRole(role)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := userIDFrom(r.Context()); got != wantUserID {
			t.Errorf("user id in context = %s, want %s", got, wantUserID)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestRequireRoleAdmitsMatchingRole(t *testing.T) {
	userID := uuid.New()
	h := protectedEndpoint(t, RoleDriver, userID)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{
		"user_id": userID.String(),
		"role":    RoleDriver,
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestRequireRoleRejectsWrongRole(t *testing.T) {
	h := protectedEndpoint(t, RoleAdmin, uuid.Nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    RoleDriver,
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestRequireRoleRejectsMissingToken(t *testing.T) {
	h := protectedEndpoint(t, RoleDriver, uuid.Nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireRoleRejectsBadSignature(t *testing.T) {
	h := protectedEndpoint(t, RoleDriver, uuid.Nil)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    RoleDriver,
	})
	signed, err := token.SignedString([]byte("another-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
