package tool

import (
	"context"

	"voice-tool-backend/internal/locale"
)

// LocaleResolver picks the locale profile for a request's query text.
type LocaleResolver interface {
	Resolve(ctx context.Context, text string) locale.Profile
}

// UseCase is the single exposed operation of the invocation router.
type UseCase interface {
	Invoke(ctx context.Context, toolName string, arguments map[string]any) Result
}
