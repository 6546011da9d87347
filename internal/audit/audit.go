// Package audit records admin write requests to the audit_logs table.
package audit

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"propdir/internal/auth"
	"propdir/internal/models"
	"propdir/internal/repository"
)

// WriteAuditMiddleware logs every write-method request passing through
// the group it is mounted on. Recording is best effort: a failed insert
// is logged and never affects the response.
func WriteAuditMiddleware(repo repository.Repository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		method := strings.ToUpper(c.Request.Method)
		if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
			return
		}

		entry := models.AuditLog{
			Action:     "admin_write",
			Method:     method,
			Path:       c.Request.URL.Path,
			Status:     c.Writer.Status(),
			DurationMs: time.Since(start).Milliseconds(),
		}
		if user := auth.CurrentUser(c); user != nil {
			id := user.ID
			entry.ActorID = &id
			entry.ActorEmail = user.Email
		}
		if details, err := json.Marshal(map[string]any{
			"query":  c.Request.URL.RawQuery,
			"ip":     c.ClientIP(),
			"errors": c.Errors.Errors(),
		}); err == nil {
			entry.Details = datatypes.JSON(details)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := repo.InsertAuditLog(ctx, &entry); err != nil && logger != nil {
			logger.Debug("audit insert failed", zap.Error(err))
		}
	}
}
