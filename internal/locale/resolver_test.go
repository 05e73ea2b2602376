package locale_test

import (
	"context"
	"testing"

	"voice-tool-backend/internal/locale"
)

// stubDetector returns a fixed detection result.
type stubDetector struct {
	code string
	ok   bool
}

func (s stubDetector) Detect(text string) (string, bool) {
	return s.code, s.ok
}

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

func TestResolver(t *testing.T) {
	ctx := context.Background()

	t.Run("empty text falls back to English", func(t *testing.T) {
		r := locale.NewResolver(nopLogger{}, stubDetector{code: "tam", ok: true})
		got := r.Resolve(ctx, "")
		if got.Code != "en" {
			t.Errorf("expected en, got %s", got.Code)
		}
	})

	t.Run("undetectable falls back to English", func(t *testing.T) {
		r := locale.NewResolver(nopLogger{}, stubDetector{ok: false})
		got := r.Resolve(ctx, "????")
		if got.Code != "en" {
			t.Errorf("expected en, got %s", got.Code)
		}
	})

	t.Run("unsupported language falls back to English", func(t *testing.T) {
		r := locale.NewResolver(nopLogger{}, stubDetector{code: "swe", ok: true})
		got := r.Resolve(ctx, "hej hej")
		if got.Code != "en" {
			t.Errorf("expected en, got %s", got.Code)
		}
	})

	t.Run("supported language resolves", func(t *testing.T) {
		r := locale.NewResolver(nopLogger{}, stubDetector{code: "tam", ok: true})
		got := r.Resolve(ctx, "சென்னை வானிலை")
		if got.Code != "ta" || got.WeatherCode != "ta" {
			t.Errorf("expected Tamil profile, got %+v", got)
		}
		if got.DefaultTimezone != "Asia/Kolkata" {
			t.Errorf("unexpected timezone: %s", got.DefaultTimezone)
		}
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		r := locale.NewResolver(nopLogger{}, stubDetector{code: "deu", ok: true})
		first := r.Resolve(ctx, "wie ist das Wetter")
		for i := 0; i < 10; i++ {
			if got := r.Resolve(ctx, "wie ist das Wetter"); got != first {
				t.Fatalf("resolution not deterministic: %+v vs %+v", got, first)
			}
		}
	})

	t.Run("default profile is supported", func(t *testing.T) {
		if !locale.Supported(locale.Default().Code) {
			t.Error("default profile missing from table")
		}
	})
}
