package usecase

import (
	"time"

	"voice-tool-backend/internal/notes"
	pkgLog "voice-tool-backend/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repository notes.Repository
	now        func() time.Time
}

// New creates a new notes UseCase instance.
func New(l pkgLog.Logger, repository notes.Repository) *implUseCase {
	return &implUseCase{
		l:          l,
		repository: repository,
		now:        time.Now,
	}
}

var _ notes.UseCase = (*implUseCase)(nil)
