package calendar

import "voice-tool-backend/pkg/gcalendar"

// FindCriteria narrows an event search. All fields are optional; Start and
// End are raw ISO-8601 strings parsed in the resolved timezone.
type FindCriteria struct {
	Name  string
	Start string
	End   string
}

// TargetCriteria identifies the event an update or delete acts on. At least
// one of Name or Date must be set; callers never supply a stable event ID.
type TargetCriteria struct {
	Name string
	Date string
}

// CreateResult is the non-raising outcome of a create operation.
type CreateResult struct {
	Success      bool             `json:"success"`
	Message      string           `json:"message"`
	CreatedEvent *gcalendar.Event `json:"created_event"`
}

// UpdateResult is the non-raising outcome of an update operation.
type UpdateResult struct {
	Success      bool             `json:"success"`
	Message      string           `json:"message"`
	UpdatedEvent *gcalendar.Event `json:"updated_event"`
}

// DeletedEvent is the identity snapshot returned after a delete, for
// confirmation only. No post-delete re-read verifies the removal.
type DeletedEvent struct {
	ID      string                  `json:"id"`
	Summary string                  `json:"summary"`
	Start   gcalendar.EventDateTime `json:"start"`
	End     gcalendar.EventDateTime `json:"end"`
}

// DeleteResult is the non-raising outcome of a delete operation.
type DeleteResult struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	DeletedEvent *DeletedEvent `json:"deleted_event"`
}
