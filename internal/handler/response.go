package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Ok writes the success envelope. Payload keys are merged at the top
// level next to success and message, matching what the frontend expects.
func Ok(c *gin.Context, status int, message string, payload gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Error writes the failure envelope. Extra keys (dependent counts, error
// codes) are merged when present.
func Error(c *gin.Context, status int, message string, extra gin.H) {
	body := gin.H{"success": false, "message": message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

const errorReportingKey = "errorReporting"

type errorReporting struct {
	logger  *zap.Logger
	verbose bool
}

// ErrorReporting wires the logger used by serverError into the request
// context. With verbose set (development mode) 500 responses carry the
// underlying error; otherwise clients get only the generic message.
func ErrorReporting(logger *zap.Logger, verbose bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(errorReportingKey, errorReporting{logger: logger, verbose: verbose})
		c.Next()
	}
}

func serverError(c *gin.Context, err error) {
	var extra gin.H
	if v, ok := c.Get(errorReportingKey); ok {
		if rep, ok := v.(errorReporting); ok {
			if rep.logger != nil {
				rep.logger.Error("request failed",
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Error(err),
				)
			}
			if rep.verbose {
				extra = gin.H{"error": err.Error()}
			}
		}
	}
	Error(c, http.StatusInternalServerError, "Internal server error", extra)
}
