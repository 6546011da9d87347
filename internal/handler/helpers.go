package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"propdir/internal/repository"
)

// uuidParam parses a UUID path parameter, writing a 400 and returning
// false when it is malformed.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(name)))
	if err != nil {
		Error(c, http.StatusBadRequest, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// uuidQuery parses an optional UUID query parameter. The second return
// is false when the parameter was present but malformed.
func uuidQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		Error(c, http.StatusBadRequest, "Invalid "+name, nil)
		return nil, false
	}
	return &id, true
}

// mustUUID parses an id the request binding already validated.
func mustUUID(s string) uuid.UUID {
	id, _ := uuid.Parse(s)
	return id
}

// createError maps repository create/update failures, turning unique
// violations into a 409.
func createError(c *gin.Context, err error, conflictMsg string) {
	if repository.IsUniqueViolation(err) {
		Error(c, http.StatusConflict, conflictMsg, nil)
		return
	}
	serverError(c, err)
}
