package calendar

import (
	"context"
	"time"

	"voice-tool-backend/pkg/gcalendar"
)

// Backend abstracts the external calendar store. It is time-range-capable
// only; name filtering happens client-side in the resolver.
type Backend interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	InsertEvent(ctx context.Context, calendarID string, event gcalendar.Event) (gcalendar.Event, error)
	UpdateEvent(ctx context.Context, calendarID, eventID string, event gcalendar.Event) (gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// UseCase is the calendar event resolution and mutation engine. The
// location argument is the resolved locale's timezone; every timestamp is
// normalized into it before touching the backend.
type UseCase interface {
	// Find returns events matching the criteria, ordered by start time
	// ascending as returned by the backend. Every call issues a fresh
	// backend query; results are never cached.
	Find(ctx context.Context, loc *time.Location, criteria FindCriteria) ([]gcalendar.Event, error)

	// FindAll returns every event within the standard one-year window
	// around now.
	FindAll(ctx context.Context, loc *time.Location) ([]gcalendar.Event, error)

	Create(ctx context.Context, loc *time.Location, details gcalendar.Event) CreateResult
	Update(ctx context.Context, loc *time.Location, target TargetCriteria, patch map[string]any) UpdateResult
	Delete(ctx context.Context, loc *time.Location, target TargetCriteria) DeleteResult
}
