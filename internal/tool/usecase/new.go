package usecase

import (
	"voice-tool-backend/internal/tool"
	pkgLog "voice-tool-backend/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	resolver tool.LocaleResolver
	registry *tool.Registry
}

// New creates a new invocation router over a populated registry.
func New(l pkgLog.Logger, resolver tool.LocaleResolver, registry *tool.Registry) *implUseCase {
	return &implUseCase{
		l:        l,
		resolver: resolver,
		registry: registry,
	}
}

var _ tool.UseCase = (*implUseCase)(nil)
