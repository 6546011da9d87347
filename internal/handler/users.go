package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"propdir/internal/auth"
	"propdir/internal/models"
	"propdir/internal/repository"
)

// UserHandler manages CMS operator accounts. All routes are ADMIN only.
type UserHandler struct {
	Repo repository.Repository
}

func (h *UserHandler) Register(r gin.IRouter) {
	group := r.Group("/users")
	group.GET("", h.list)
	group.GET("/:id", h.get)
	group.POST("", h.create)
	group.PUT("/:id", h.update)
	group.PATCH("/:id/toggle-active", h.toggleActive)
	group.PATCH("/:id/password", h.changePassword)
	group.DELETE("/:id", h.remove)
}

// @Summary List users
// @Tags users
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/users [get]
func (h *UserHandler) list(c *gin.Context) {
	items, err := h.Repo.ListUsers(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"users": items, "count": len(items)})
}

// @Summary Get a user
// @Tags users
// @Param id path string true "user id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/users/{id} [get]
func (h *UserHandler) get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetUserByID(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "User not found", nil)
		return
	}
	Ok(c, http.StatusOK, "", gin.H{"user": item})
}

type createUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// @Summary Create a user
// @Tags users
// @Param request body createUserRequest true "user fields"
// @Success 201 {object} map[string]any
// @Router /api/v1/admin/users [post]
func (h *UserHandler) create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "Name, email and a password of at least 8 characters are required", nil)
		return
	}
	role := models.RoleEditor
	if req.Role != "" {
		if req.Role != models.RoleAdmin && req.Role != models.RoleEditor {
			Error(c, http.StatusBadRequest, "Invalid role", nil)
			return
		}
		role = req.Role
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		serverError(c, err)
		return
	}
	item := models.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := h.Repo.CreateUser(c.Request.Context(), &item); err != nil {
		createError(c, err, "A user with this email already exists")
		return
	}
	Ok(c, http.StatusCreated, "User created", gin.H{"user": item})
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

// @Summary Update a user
// @Tags users
// @Param id path string true "user id"
// @Param request body updateUserRequest true "changed fields"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/users/{id} [put]
func (h *UserHandler) update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetUserByID(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "User not found", nil)
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if req.Role != nil && *req.Role != models.RoleAdmin && *req.Role != models.RoleEditor {
		Error(c, http.StatusBadRequest, "Invalid role", nil)
		return
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Role != nil {
		item.Role = *req.Role
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if err := h.Repo.SaveUser(c.Request.Context(), item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "User updated", gin.H{"user": item})
}

// @Summary Flip a user's active flag
// @Tags users
// @Param id path string true "user id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/users/{id}/toggle-active [patch]
func (h *UserHandler) toggleActive(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor := auth.CurrentUser(c)
	if actor != nil && actor.ID == id {
		Error(c, http.StatusBadRequest, "Cannot deactivate your own account", nil)
		return
	}
	item, err := h.Repo.GetUserByID(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "User not found", nil)
		return
	}
	item.IsActive = !item.IsActive
	if err := h.Repo.SaveUser(c.Request.Context(), item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "User status updated", gin.H{"user": item})
}

type changePasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

// @Summary Change a user's password
// @Tags users
// @Param id path string true "user id"
// @Param request body changePasswordRequest true "new password"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/users/{id}/password [patch]
func (h *UserHandler) changePassword(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Repo.GetUserByID(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "User not found", nil)
		return
	}
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "A password of at least 8 characters is required", nil)
		return
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		serverError(c, err)
		return
	}
	item.PasswordHash = hash
	if err := h.Repo.SaveUser(c.Request.Context(), item); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "Password updated", nil)
}

// @Summary Delete a user
// @Tags users
// @Param id path string true "user id"
// @Success 200 {object} map[string]any
// @Router /api/v1/admin/users/{id} [delete]
func (h *UserHandler) remove(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor := auth.CurrentUser(c)
	if actor != nil && actor.ID == id {
		Error(c, http.StatusBadRequest, "Cannot delete your own account", nil)
		return
	}
	item, err := h.Repo.GetUserByID(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "User not found", nil)
		return
	}
	if err := h.Repo.DeleteUser(c.Request.Context(), id); err != nil {
		serverError(c, err)
		return
	}
	Ok(c, http.StatusOK, "User deleted", nil)
}
