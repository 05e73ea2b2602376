package usecase

import (
	"context"
	"fmt"
	"time"

	"voice-tool-backend/internal/calendar"
)

// Delete resolves the target event by name and/or date, removes it, and
// returns an identity snapshot for confirmation. Same tie-break as Update:
// the earliest-starting match is the one deleted.
func (uc *implUseCase) Delete(ctx context.Context, loc *time.Location, target calendar.TargetCriteria) calendar.DeleteResult {
	if target.Name == "" && target.Date == "" {
		return calendar.DeleteResult{
			Success: false,
			Message: fmt.Sprintf("Error: %v", calendar.ErrValidation),
		}
	}

	events, err := uc.Find(ctx, loc, calendar.FindCriteria{Name: target.Name, Start: target.Date})
	if err != nil {
		uc.l.Errorf(ctx, "calendar: delete lookup failed: %v", err)
		return calendar.DeleteResult{
			Success: false,
			Message: fmt.Sprintf("Error deleting event: %v", err),
		}
	}
	if len(events) == 0 {
		return calendar.DeleteResult{
			Success: false,
			Message: fmt.Sprintf("No event found with %s", describeTarget(target)),
		}
	}

	event := events[0]

	if err := uc.backend.DeleteEvent(ctx, uc.calendarID, event.ID); err != nil {
		uc.l.Errorf(ctx, "calendar: delete failed: %v", err)
		return calendar.DeleteResult{
			Success: false,
			Message: fmt.Sprintf("Error deleting event: %v", err),
		}
	}

	uc.l.Infof(ctx, "calendar: deleted event %s (%s)", event.ID, event.Summary)
	return calendar.DeleteResult{
		Success: true,
		Message: fmt.Sprintf("Event deleted successfully: %s", describeTarget(target)),
		DeletedEvent: &calendar.DeletedEvent{
			ID:      event.ID,
			Summary: event.Summary,
			Start:   event.Start,
			End:     event.End,
		},
	}
}
