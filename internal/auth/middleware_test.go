package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"propdir/internal/models"
	"propdir/internal/repository"
)

type userStubRepo struct {
	repository.Repository
	users map[uuid.UUID]*models.User
}

func (s *userStubRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.users[id], nil
}

func newAuthRig(t *testing.T) (*TokenIssuer, *userStubRepo, *gin.Engine, *models.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	issuer := NewTokenIssuer("test-secret", time.Hour)
	user := &models.User{
		ID:       uuid.New(),
		Email:    "ops@example.com",
		Role:     models.RoleEditor,
		IsActive: true,
	}
	repo := &userStubRepo{users: map[uuid.UUID]*models.User{user.ID: user}}

	r := gin.New()
	r.GET("/protected", Authenticate(issuer, repo, "token"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": CurrentUser(c).Email})
	})
	r.GET("/admin", Authenticate(issuer, repo, "token"), RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return issuer, repo, r, user
}

func doRequest(r *gin.Engine, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestAuthenticateNoToken(t *testing.T) {
	_, _, r, _ := newAuthRig(t)
	w, body := doRequest(r, httptest.NewRequest(http.MethodGet, "/protected", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if body["message"] != "Unauthorized: No token provided" {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	_, _, r, _ := newAuthRig(t)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w, body := doRequest(r, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if body["message"] != "Invalid or expired token" {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	_, repo, r, user := newAuthRig(t)
	_ = repo
	expired := NewTokenIssuer("test-secret", -time.Minute)
	token, err := expired.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w, body := doRequest(r, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if body["message"] != "Token expired, please login again" {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestAuthenticateHeaderToken(t *testing.T) {
	issuer, _, r, user := newAuthRig(t)
	token, err := issuer.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w, body := doRequest(r, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%v)", w.Code, body)
	}
	if body["email"] != user.Email {
		t.Fatalf("email = %v", body["email"])
	}
}

func TestAuthenticateCookieToken(t *testing.T) {
	issuer, _, r, user := newAuthRig(t)
	token, err := issuer.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// Quoted cookie values must be accepted too.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: `"` + token + `"`})
	w, _ := doRequest(r, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestAuthenticateHeaderBeatsCookie(t *testing.T) {
	issuer, _, r, user := newAuthRig(t)
	token, err := issuer.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	w, _ := doRequest(r, req)
	// The bad header wins; the valid cookie must not rescue the request.
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthenticateInactiveUser(t *testing.T) {
	issuer, repo, r, user := newAuthRig(t)
	repo.users[user.ID].IsActive = false
	token, err := issuer.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w, body := doRequest(r, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if body["message"] != "User not found or inactive" {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestRequireRolesForbidden(t *testing.T) {
	issuer, _, r, user := newAuthRig(t)
	token, err := issuer.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w, body := doRequest(r, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if body["message"] != "Forbidden: Access denied" {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestRequireRolesAllowed(t *testing.T) {
	issuer, repo, r, user := newAuthRig(t)
	repo.users[user.ID].Role = models.RoleAdmin
	token, err := issuer.Generate(user.ID, user.Email, models.RoleAdmin)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w, _ := doRequest(r, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
