package handlers

import (
	"context"

	"voice-tool-backend/internal/locale"
	"voice-tool-backend/internal/notes"
)

// AddNoteHandler creates or updates a named note.
type AddNoteHandler struct {
	uc notes.UseCase
}

func NewAddNoteHandler(uc notes.UseCase) *AddNoteHandler {
	return &AddNoteHandler{uc: uc}
}

func (h *AddNoteHandler) Name() string {
	return "add_note"
}

func (h *AddNoteHandler) Execute(ctx context.Context, profile locale.Profile, args map[string]any) (any, error) {
	return h.uc.Add(ctx, profile.Location(), stringArg(args, "note_name"), stringArg(args, "content")), nil
}

// GetNoteHandler fetches a single note by name.
type GetNoteHandler struct {
	uc notes.UseCase
}

func NewGetNoteHandler(uc notes.UseCase) *GetNoteHandler {
	return &GetNoteHandler{uc: uc}
}

func (h *GetNoteHandler) Name() string {
	return "get_note"
}

func (h *GetNoteHandler) Execute(ctx context.Context, profile locale.Profile, args map[string]any) (any, error) {
	return h.uc.Get(ctx, stringArg(args, "note_name")), nil
}

// GetAllNotesHandler lists every stored note.
type GetAllNotesHandler struct {
	uc notes.UseCase
}

func NewGetAllNotesHandler(uc notes.UseCase) *GetAllNotesHandler {
	return &GetAllNotesHandler{uc: uc}
}

func (h *GetAllNotesHandler) Name() string {
	return "get_all_notes"
}

func (h *GetAllNotesHandler) Execute(ctx context.Context, profile locale.Profile, args map[string]any) (any, error) {
	return h.uc.GetAll(ctx), nil
}

// DeleteNoteHandler removes a note by name.
type DeleteNoteHandler struct {
	uc notes.UseCase
}

func NewDeleteNoteHandler(uc notes.UseCase) *DeleteNoteHandler {
	return &DeleteNoteHandler{uc: uc}
}

func (h *DeleteNoteHandler) Name() string {
	return "delete_note"
}

func (h *DeleteNoteHandler) Execute(ctx context.Context, profile locale.Profile, args map[string]any) (any, error) {
	return h.uc.Delete(ctx, stringArg(args, "note_name")), nil
}
