package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"voice-tool-backend/config"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New(nopLogger{}, config.RateLimitConfig{PerMin: 60})

	t.Run("generates an ID when none supplied", func(t *testing.T) {
		router := gin.New()
		router.Use(m.RequestID())
		router.GET("/", func(c *gin.Context) {
			scope := GetScope(c)
			if scope.InvocationID == "" {
				t.Error("scope missing invocation ID")
			}
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		router.ServeHTTP(w, req)

		if w.Header().Get(HeaderXRequestID) == "" {
			t.Error("response missing request ID header")
		}
	})

	t.Run("honors a caller-supplied ID", func(t *testing.T) {
		router := gin.New()
		router.Use(m.RequestID())
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderXRequestID, "inv-123")
		router.ServeHTTP(w, req)

		if got := w.Header().Get(HeaderXRequestID); got != "inv-123" {
			t.Errorf("unexpected request ID: %s", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	// 60/min with burst 6: the seventh immediate request must be rejected.
	m := New(nopLogger{}, config.RateLimitConfig{PerMin: 60})

	router := gin.New()
	router.Use(m.RateLimit())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	limited := false
	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Error("burst of requests from one source was never limited")
	}

	// A different source still gets through.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("independent source was limited: %d", w.Code)
	}
}
