package handlers

import (
	"context"

	"voice-tool-backend/internal/calendar"
	"voice-tool-backend/internal/locale"
	"voice-tool-backend/pkg/gcalendar"
)

// CreateEventHandler inserts a new calendar event.
type CreateEventHandler struct {
	uc calendar.UseCase
}

func NewCreateEventHandler(uc calendar.UseCase) *CreateEventHandler {
	return &CreateEventHandler{uc: uc}
}

func (h *CreateEventHandler) Name() string {
	return "create_event"
}

func (h *CreateEventHandler) Execute(ctx context.Context, profile locale.Profile, args map[string]any) (any, error) {
	event := gcalendar.Event{
		Summary:     stringArg(args, "summary"),
		Description: stringArg(args, "description"),
		Location:    stringArg(args, "location"),
		Start:       dateTimeArg(args, "start"),
		End:         dateTimeArg(args, "end"),
	}
	return h.uc.Create(ctx, profile.Location(), event), nil
}

// UpdateEventHandler patches the event matched by event_name/event_date.
type UpdateEventHandler struct {
	uc calendar.UseCase
}

func NewUpdateEventHandler(uc calendar.UseCase) *UpdateEventHandler {
	return &UpdateEventHandler{uc: uc}
}

func (h *UpdateEventHandler) Name() string {
	return "update_event"
}

func (h *UpdateEventHandler) Execute(ctx context.Context, profile locale.Profile, args map[string]any) (any, error) {
	target := calendar.TargetCriteria{
		Name: stringArg(args, "event_name"),
		Date: stringArg(args, "event_date"),
	}
	return h.uc.Update(ctx, profile.Location(), target, mapArg(args, "updated_details")), nil
}

// DeleteEventHandler removes the event matched by event_name/event_date.
type DeleteEventHandler struct {
	uc calendar.UseCase
}

func NewDeleteEventHandler(uc calendar.UseCase) *DeleteEventHandler {
	return &DeleteEventHandler{uc: uc}
}

func (h *DeleteEventHandler) Name() string {
	return "delete_event"
}

func (h *DeleteEventHandler) Execute(ctx context.Context, profile locale.Profile, args map[string]any) (any, error) {
	target := calendar.TargetCriteria{
		Name: stringArg(args, "event_name"),
		Date: stringArg(args, "event_date"),
	}
	return h.uc.Delete(ctx, profile.Location(), target), nil
}

// GetEventsHandler searches events by optional name and date bounds.
type GetEventsHandler struct {
	uc calendar.UseCase
}

func NewGetEventsHandler(uc calendar.UseCase) *GetEventsHandler {
	return &GetEventsHandler{uc: uc}
}

func (h *GetEventsHandler) Name() string {
	return "get_events"
}

func (h *GetEventsHandler) Execute(ctx context.Context, profile locale.Profile, args map[string]any) (any, error) {
	criteria := calendar.FindCriteria{
		Name:  stringArg(args, "event_name"),
		Start: stringArg(args, "start_date"),
		End:   stringArg(args, "end_date"),
	}
	events, err := h.uc.Find(ctx, profile.Location(), criteria)
	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetAllEventsHandler lists every event in the standard search window.
type GetAllEventsHandler struct {
	uc calendar.UseCase
}

func NewGetAllEventsHandler(uc calendar.UseCase) *GetAllEventsHandler {
	return &GetAllEventsHandler{uc: uc}
}

func (h *GetAllEventsHandler) Name() string {
	return "get_all_events"
}

func (h *GetAllEventsHandler) Execute(ctx context.Context, profile locale.Profile, args map[string]any) (any, error) {
	events, err := h.uc.FindAll(ctx, profile.Location())
	if err != nil {
		return nil, err
	}
	return events, nil
}
