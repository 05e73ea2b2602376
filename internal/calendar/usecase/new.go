package usecase

import (
	"time"

	"voice-tool-backend/internal/calendar"
	pkgLog "voice-tool-backend/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	backend    calendar.Backend
	calendarID string
	now        func() time.Time
}

// New creates a new calendar UseCase instance scoped to one calendar ID.
func New(l pkgLog.Logger, backend calendar.Backend, calendarID string) *implUseCase {
	return &implUseCase{
		l:          l,
		backend:    backend,
		calendarID: calendarID,
		now:        time.Now,
	}
}

var _ calendar.UseCase = (*implUseCase)(nil)
