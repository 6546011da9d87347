package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newErrorRig(verbose bool) (*gin.Engine, *observer.ObservedLogs) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.ErrorLevel)
	r := gin.New()
	r.Use(ErrorReporting(zap.New(core), verbose))
	r.GET("/boom", func(c *gin.Context) {
		serverError(c, errors.New("pq: connection refused"))
	})
	return r, logs
}

func TestServerErrorSuppressedOutsideDev(t *testing.T) {
	r, logs := newErrorRig(false)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["message"] != "Internal server error" {
		t.Fatalf("message = %v", body["message"])
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("error detail must not reach the client outside dev mode")
	}
	if logs.Len() != 1 {
		t.Fatalf("error must be logged server-side, got %d entries", logs.Len())
	}
}

func TestServerErrorVerboseInDev(t *testing.T) {
	r, _ := newErrorRig(true)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["error"] != "pq: connection refused" {
		t.Fatalf("dev mode must expose the error detail, got %v", body["error"])
	}
}
