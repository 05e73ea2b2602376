package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"voice-tool-backend/internal/notes"
)

// List reads the full note set. A missing file is an empty store; a file
// holding invalid JSON is reset rather than propagated, so one bad write
// never wedges the whole tool.
func (r *implRepository) List(ctx context.Context) ([]notes.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return []notes.Note{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read notes file: %w", err)
	}

	var all []notes.Note
	if err := json.Unmarshal(raw, &all); err != nil {
		r.l.Warnf(ctx, "notes: resetting corrupt store %s: %v", r.path, err)
		if err := r.write([]notes.Note{}); err != nil {
			return nil, err
		}
		return []notes.Note{}, nil
	}
	return all, nil
}

// Save replaces the full note set.
func (r *implRepository) Save(ctx context.Context, all []notes.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.write(all)
}

func (r *implRepository) write(all []notes.Note) error {
	raw, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal notes: %w", err)
	}
	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write notes file: %w", err)
	}
	return nil
}
