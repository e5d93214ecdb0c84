package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/scholarstream/scholarstream/internal/app/models"
	"github.com/scholarstream/scholarstream/internal/app/repositories"
	"github.com/scholarstream/scholarstream/internal/pkg/apperrors"
	"github.com/scholarstream/scholarstream/internal/pkg/identity"
)

type fakeVerifier struct {
	ident *identity.Identity
	err   error
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) (*identity.Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ident, nil
}

type fakeRoleStore struct {
	users map[string]*models.User
	err   error
}

func (f *fakeRoleStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return u, nil
}

func newGatedRouter(verifier identity.Verifier, roles RoleStore, required ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(verifier, roles)

	router := gin.New()
	group := router.Group("", m.Authenticated())
	if len(required) > 0 {
		group.Use(m.RequireAnyRole(required...))
	}
	group.GET("/protected", func(c *gin.Context) {
		ident, _ := IdentityFromContext(c)
		c.JSON(http.StatusOK, gin.H{"email": ident.Email})
	})
	return router
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func verifiedStudent() *fakeVerifier {
	return &fakeVerifier{ident: &identity.Identity{UID: "uid-1", Email: "student@example.com"}}
}

func TestAuthenticatedRejectsMissingToken(t *testing.T) {
	router := newGatedRouter(verifiedStudent(), &fakeRoleStore{})

	w := doRequest(router, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "unauthorized access. Token not found!" {
		t.Fatalf("unexpected message %q", body["message"])
	}
}

func TestAuthenticatedRejectsInvalidToken(t *testing.T) {
	verifier := &fakeVerifier{err: apperrors.ErrTokenInvalid}
	router := newGatedRouter(verifier, &fakeRoleStore{})

	w := doRequest(router, "bad-token")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthenticatedAttachesIdentity(t *testing.T) {
	router := newGatedRouter(verifiedStudent(), &fakeRoleStore{})

	w := doRequest(router, "good-token")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["email"] != "student@example.com" {
		t.Fatalf("expected identity email in handler, got %q", body["email"])
	}
}

func TestRequireRoleAllowsMatch(t *testing.T) {
	roles := &fakeRoleStore{users: map[string]*models.User{
		"student@example.com": {Email: "student@example.com", Role: models.RoleAdmin},
	}}
	router := newGatedRouter(verifiedStudent(), roles, models.RoleAdmin)

	w := doRequest(router, "good-token")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRequireRoleRejectsInsufficientRole(t *testing.T) {
	roles := &fakeRoleStore{users: map[string]*models.User{
		"student@example.com": {Email: "student@example.com", Role: models.RoleStudent},
	}}
	router := newGatedRouter(verifiedStudent(), roles, models.RoleAdmin, models.RoleModerator)

	w := doRequest(router, "good-token")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "Forbidden: insufficient role" {
		t.Fatalf("unexpected message %q", body["message"])
	}
}

func TestRequireRoleRejectsUnregisteredIdentity(t *testing.T) {
	// Verified identity, but no row in the role store: deny, never default.
	router := newGatedRouter(verifiedStudent(), &fakeRoleStore{users: map[string]*models.User{}}, models.RoleAdmin)

	w := doRequest(router, "good-token")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "Forbidden: account is not registered" {
		t.Fatalf("unexpected message %q", body["message"])
	}
}

func TestRequireRoleLookupFailure(t *testing.T) {
	roles := &fakeRoleStore{err: errors.New("connection reset")}
	router := newGatedRouter(verifiedStudent(), roles, models.RoleAdmin)

	w := doRequest(router, "good-token")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
