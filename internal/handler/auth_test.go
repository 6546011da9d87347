package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"propdir/internal/auth"
	"propdir/internal/models"
)

func newAuthHandlerRig(t *testing.T, users map[string]*models.User) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := &AuthHandler{
		Repo:       &stubRepo{usersEmail: users},
		Issuer:     auth.NewTokenIssuer("rig-secret", time.Hour),
		CookieName: "token",
	}
	r := gin.New()
	h.Register(r, func(c *gin.Context) {})
	return r
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	hash, err := auth.HashPassword("s3cretpass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := &models.User{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	r := newAuthHandlerRig(t, map[string]*models.User{user.Email: user})

	w := postLogin(r, `{"email":"Admin@Example.com","password":"s3cretpass"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !body.Success || body.Message != "Login successful" {
		t.Fatalf("unexpected envelope: %s", w.Body.String())
	}
	if body.Token == "" {
		t.Fatalf("login must return a token")
	}
	if body.User.Email != user.Email {
		t.Fatalf("user.email = %q, want %q", body.User.Email, user.Email)
	}

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatalf("login must set the session cookie")
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be httpOnly")
	}
	if cookie.Value != body.Token {
		t.Fatalf("cookie must carry the issued token")
	}
}

func TestLoginRejections(t *testing.T) {
	hash, err := auth.HashPassword("s3cretpass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	users := map[string]*models.User{
		"admin@example.com": {
			ID:           uuid.New(),
			Email:        "admin@example.com",
			PasswordHash: hash,
			Role:         models.RoleAdmin,
			IsActive:     true,
		},
		"gone@example.com": {
			ID:           uuid.New(),
			Email:        "gone@example.com",
			PasswordHash: hash,
			Role:         models.RoleEditor,
			IsActive:     false,
		},
	}
	r := newAuthHandlerRig(t, users)

	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{"wrong password", `{"email":"admin@example.com","password":"nope"}`, http.StatusUnauthorized, "Invalid credentials"},
		{"unknown user", `{"email":"nobody@example.com","password":"s3cretpass"}`, http.StatusUnauthorized, "Invalid credentials"},
		{"inactive user", `{"email":"gone@example.com","password":"s3cretpass"}`, http.StatusUnauthorized, "Invalid credentials"},
		{"missing password", `{"email":"admin@example.com"}`, http.StatusBadRequest, "Email and password are required"},
		{"malformed email", `{"email":"not-an-email","password":"s3cretpass"}`, http.StatusBadRequest, "Email and password are required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := postLogin(r, tc.body)
			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d: %s", w.Code, tc.status, w.Body.String())
			}
			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
				Token   string `json:"token"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if body.Success || body.Message != tc.message {
				t.Fatalf("unexpected envelope: %s", w.Body.String())
			}
			if body.Token != "" {
				t.Fatalf("rejected login must not issue a token")
			}
		})
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newAuthHandlerRig(t, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("logout must expire the session cookie")
	}
}
