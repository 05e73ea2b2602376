package usecase

import (
	"context"
	"fmt"
	"time"

	"voice-tool-backend/internal/calendar"
	"voice-tool-backend/pkg/gcalendar"
	"voice-tool-backend/pkg/timeutil"
)

// Create normalizes the event's start/end into loc, force-sets the
// timezone on both, and persists via the backend. Failures surface as a
// non-raising result, never as an error.
func (uc *implUseCase) Create(ctx context.Context, loc *time.Location, details gcalendar.Event) calendar.CreateResult {
	normalized, err := normalizeEventTimes(details, loc)
	if err != nil {
		uc.l.Warnf(ctx, "calendar: create rejected: %v", err)
		return calendar.CreateResult{
			Success: false,
			Message: fmt.Sprintf("Error creating event: %v", err),
		}
	}

	created, err := uc.backend.InsertEvent(ctx, uc.calendarID, normalized)
	if err != nil {
		uc.l.Errorf(ctx, "calendar: insert failed: %v", err)
		return calendar.CreateResult{
			Success: false,
			Message: fmt.Sprintf("Error creating event: %v", err),
		}
	}

	uc.l.Infof(ctx, "calendar: created event %s", created.ID)
	return calendar.CreateResult{
		Success:      true,
		Message:      fmt.Sprintf("Event created successfully: %s", created.ID),
		CreatedEvent: &created,
	}
}

// normalizeEventTimes rewrites both dateTime fields into loc and stamps the
// zone name, so the backend always receives offsets consistent with the
// resolved locale.
func normalizeEventTimes(event gcalendar.Event, loc *time.Location) (gcalendar.Event, error) {
	var err error
	event.Start, err = normalizeDateTime(event.Start, loc)
	if err != nil {
		return event, fmt.Errorf("%w: start: %v", calendar.ErrFormat, err)
	}
	event.End, err = normalizeDateTime(event.End, loc)
	if err != nil {
		return event, fmt.Errorf("%w: end: %v", calendar.ErrFormat, err)
	}
	return event, nil
}

func normalizeDateTime(edt gcalendar.EventDateTime, loc *time.Location) (gcalendar.EventDateTime, error) {
	if edt.DateTime != "" {
		t, err := timeutil.ParseISO(edt.DateTime, loc)
		if err != nil {
			return edt, err
		}
		edt.DateTime = timeutil.EnsureZone(t, loc).Format(time.RFC3339)
	}
	edt.TimeZone = loc.String()
	return edt, nil
}
