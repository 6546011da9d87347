package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"propdir/internal/auth"
	"propdir/internal/repository"
)

type AuthHandler struct {
	Repo       repository.Repository
	Issuer     *auth.TokenIssuer
	CookieName string
	Secure     bool
}

func (h *AuthHandler) Register(r gin.IRouter, authenticated gin.HandlerFunc) {
	group := r.Group("/api/v1/auth")
	group.POST("/login", h.login)
	group.POST("/logout", h.logout)
	group.GET("/me", authenticated, h.me)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// @Summary Log in with email and password
// @Tags auth
// @Param request body loginRequest true "credentials"
// @Success 200 {object} map[string]any
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "Email and password are required", nil)
		return
	}

	user, err := h.Repo.GetUserByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		serverError(c, err)
		return
	}
	// One generic message for unknown, inactive and wrong-password cases.
	if user == nil || !user.IsActive || !auth.CheckPassword(user.PasswordHash, req.Password) {
		Error(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	token, err := h.Issuer.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		serverError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.CookieName, token, int(h.Issuer.Expiry().Seconds()), "/", "", h.Secure, true)

	Ok(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// @Summary Clear the auth cookie
// @Tags auth
// @Success 200 {object} map[string]any
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.CookieName, "", -1, "/", "", h.Secure, true)
	Ok(c, http.StatusOK, "Logged out", nil)
}

// @Summary Return the authenticated user
// @Tags auth
// @Success 200 {object} map[string]any
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) me(c *gin.Context) {
	user := auth.CurrentUser(c)
	if user == nil {
		Error(c, http.StatusUnauthorized, "Unauthorized: No token provided", nil)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"user": user})
}
