package file

import (
	"sync"

	"voice-tool-backend/internal/notes"
	pkgLog "voice-tool-backend/pkg/log"
)

type implRepository struct {
	l    pkgLog.Logger
	path string
	mu   sync.Mutex
}

// New creates a file-backed notes repository. The backing file is created
// on first save; a missing or corrupt file reads as an empty store.
func New(l pkgLog.Logger, path string) *implRepository {
	return &implRepository{
		l:    l,
		path: path,
	}
}

var _ notes.Repository = (*implRepository)(nil)
