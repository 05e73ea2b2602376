package usecase

import (
	"context"
	"fmt"
	"time"

	"voice-tool-backend/internal/notes"
)

// Add creates a note or, when one with the same name exists, replaces its
// content. Timestamps are stamped in loc so stored notes reflect the
// caller's resolved timezone.
func (uc *implUseCase) Add(ctx context.Context, loc *time.Location, name, content string) notes.AddResult {
	if name == "" {
		return notes.AddResult{Success: false, Message: "Note name is required"}
	}
	if content == "" {
		return notes.AddResult{Success: false, Message: "Content is required"}
	}

	all, err := uc.repository.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "notes: add read failed: %v", err)
		return notes.AddResult{Success: false, Message: fmt.Sprintf("Error adding note: %v", err)}
	}

	stamp := uc.now().In(loc).Format(time.RFC3339)
	updated := false
	for i := range all {
		if all[i].Name == name {
			all[i].Content = content
			all[i].UpdatedAt = stamp
			updated = true
			break
		}
	}
	if !updated {
		all = append(all, notes.Note{
			Name:      name,
			Content:   content,
			CreatedAt: stamp,
			UpdatedAt: stamp,
		})
	}

	if err := uc.repository.Save(ctx, all); err != nil {
		uc.l.Errorf(ctx, "notes: add save failed: %v", err)
		return notes.AddResult{Success: false, Message: "Failed to save note"}
	}

	message := "Note created successfully"
	if updated {
		message = "Note updated successfully"
	}
	return notes.AddResult{
		Success: true,
		Message: message,
		Note: &notes.Note{
			Name:      name,
			Content:   content,
			UpdatedAt: stamp,
		},
	}
}

// Get returns a single note by exact name.
func (uc *implUseCase) Get(ctx context.Context, name string) notes.GetResult {
	all, err := uc.repository.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "notes: get read failed: %v", err)
		return notes.GetResult{Success: false, Message: fmt.Sprintf("Error retrieving note: %v", err)}
	}

	for i := range all {
		if all[i].Name == name {
			return notes.GetResult{Success: true, Message: "Note found", Note: &all[i]}
		}
	}
	return notes.GetResult{
		Success: false,
		Message: fmt.Sprintf("No note found with name: %s", name),
	}
}

// GetAll returns every stored note.
func (uc *implUseCase) GetAll(ctx context.Context) notes.ListResult {
	all, err := uc.repository.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "notes: list read failed: %v", err)
		return notes.ListResult{Success: false, Message: fmt.Sprintf("Error retrieving notes: %v", err)}
	}
	return notes.ListResult{
		Success: true,
		Message: fmt.Sprintf("Found %d notes", len(all)),
		Notes:   all,
	}
}

// Delete removes a note by exact name.
func (uc *implUseCase) Delete(ctx context.Context, name string) notes.DeleteResult {
	all, err := uc.repository.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "notes: delete read failed: %v", err)
		return notes.DeleteResult{Success: false, Message: fmt.Sprintf("Error deleting note: %v", err)}
	}

	kept := make([]notes.Note, 0, len(all))
	for _, note := range all {
		if note.Name != name {
			kept = append(kept, note)
		}
	}
	if len(kept) == len(all) {
		return notes.DeleteResult{
			Success: false,
			Message: fmt.Sprintf("No note found with name: %s", name),
		}
	}

	if err := uc.repository.Save(ctx, kept); err != nil {
		uc.l.Errorf(ctx, "notes: delete save failed: %v", err)
		return notes.DeleteResult{Success: false, Message: "Failed to save notes after deletion"}
	}
	return notes.DeleteResult{
		Success:     true,
		Message:     fmt.Sprintf("Note '%s' deleted successfully", name),
		DeletedNote: &name,
	}
}
