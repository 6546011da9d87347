package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"propdir/internal/models"
	"propdir/internal/repository"
)

const userContextKey = "currentUser"

// CurrentUser returns the authenticated user set by Authenticate, or nil
// when the request did not pass through it.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// extractToken reads the bearer token from the Authorization header,
// falling back to the session cookie. Some clients send the cookie value
// wrapped in double quotes; those are stripped.
func extractToken(c *gin.Context, cookieName string) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	cookie, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return strings.Trim(cookie, `"`)
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": msg,
	})
}

// Authenticate verifies the session token and refetches the user so a
// deactivated or deleted account is cut off immediately, not at token
// expiry.
func Authenticate(issuer *TokenIssuer, repo repository.Repository, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cookieName)
		if token == "" {
			abortUnauthorized(c, "Unauthorized: No token provided")
			return
		}

		claims, err := issuer.Verify(token)
		if err != nil {
			if err == ErrTokenExpired {
				abortUnauthorized(c, "Token expired, please login again")
				return
			}
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		user, err := repo.GetUserByID(c.Request.Context(), claims.ID)
		if err != nil || user == nil || !user.IsActive {
			abortUnauthorized(c, "User not found or inactive")
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireRoles rejects authenticated users whose role is not in the
// allow list.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortUnauthorized(c, "Unauthorized: No token provided")
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Forbidden: Access denied",
		})
	}
}
