package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newLoggerTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(LoggerMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.Status(200)
	})
	return router
}

func TestLoggerMiddlewareShortRequestID(t *testing.T) {
	router := newLoggerTestRouter()

	// Shorter than the 8-char abbreviation the access log prints.
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("X-Request-ID"); got != "abc" {
		t.Errorf("request ID not echoed: got %q", got)
	}
}

func TestLoggerMiddlewareGeneratesRequestID(t *testing.T) {
	router := newLoggerTestRouter()

	req := httptest.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated request ID header")
	}
}
