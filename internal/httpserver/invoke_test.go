package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"voice-tool-backend/config"
	"voice-tool-backend/internal/middleware"
	"voice-tool-backend/internal/tool"
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

// stubToolUC records the invocation it received.
type stubToolUC struct {
	toolName string
	args     map[string]any
	result   tool.Result
}

func (s *stubToolUC) Invoke(ctx context.Context, toolName string, arguments map[string]any) tool.Result {
	s.toolName = toolName
	s.args = arguments
	return s.result
}

func newTestServer(t *testing.T, uc tool.UseCase) *HTTPServer {
	t.Helper()
	srv, err := New(nopLogger{}, Config{
		Logger:      nopLogger{},
		Port:        8081,
		Mode:        gin.TestMode,
		Environment: "development",
		Middleware:  middleware.New(nopLogger{}, config.RateLimitConfig{PerMin: 600}),
		ToolUseCase: uc,
	})
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}
	if err := srv.mapHandlers(); err != nil {
		t.Fatalf("failed to map handlers: %v", err)
	}
	return srv
}

func TestInvokeEndpoint(t *testing.T) {
	uc := &stubToolUC{result: tool.Result{"answer": 42}}
	srv := newTestServer(t, uc)

	body := `{"tool_name":"get_date_and_time","arguments":{"timezone":"Asia/Kolkata"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoke", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.gin.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
	if uc.toolName != "get_date_and_time" {
		t.Errorf("tool name not forwarded: %q", uc.toolName)
	}
	if uc.args["timezone"] != "Asia/Kolkata" {
		t.Errorf("arguments not forwarded: %v", uc.args)
	}

	var envelope struct {
		ErrorCode int            `json:"error_code"`
		Message   string         `json:"message"`
		Data      map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if envelope.ErrorCode != 0 || envelope.Message != "Success" {
		t.Errorf("unexpected envelope: %+v", envelope)
	}
	if envelope.Data["answer"] != float64(42) {
		t.Errorf("payload lost: %+v", envelope.Data)
	}
}

func TestInvokeEndpointDefaultsArguments(t *testing.T) {
	uc := &stubToolUC{result: tool.Result{}}
	srv := newTestServer(t, uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoke", strings.NewReader(`{"tool_name":"get_all_events"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.gin.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", w.Code)
	}
	if uc.args == nil {
		t.Error("arguments should default to an empty map")
	}
}

func TestInvokeEndpointRejectsMalformedBody(t *testing.T) {
	srv := newTestServer(t, &stubToolUC{result: tool.Result{}})

	for name, body := range map[string]string{
		"invalid json":      `{not json`,
		"missing tool_name": `{"arguments":{}}`,
	} {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/invoke", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			srv.gin.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestHealthRoutes(t *testing.T) {
	srv := newTestServer(t, &stubToolUC{result: tool.Result{}})

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		srv.gin.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("%s returned %d", path, w.Code)
		}
	}
}
