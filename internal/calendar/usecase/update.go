package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voice-tool-backend/internal/calendar"
	"voice-tool-backend/pkg/gcalendar"
)

// Update resolves the target event by name and/or date and replaces it with
// a body merged from the existing event and the patch. Fields absent from
// the patch are preserved verbatim; a patch key carrying an empty value
// removes that field. Start/end are always re-populated from the original
// when removal would leave them missing, since the backend requires both.
func (uc *implUseCase) Update(ctx context.Context, loc *time.Location, target calendar.TargetCriteria, patch map[string]any) calendar.UpdateResult {
	if target.Name == "" && target.Date == "" {
		return calendar.UpdateResult{
			Success: false,
			Message: fmt.Sprintf("Error: %v", calendar.ErrValidation),
		}
	}

	events, err := uc.Find(ctx, loc, calendar.FindCriteria{Name: target.Name, Start: target.Date})
	if err != nil {
		uc.l.Errorf(ctx, "calendar: update lookup failed: %v", err)
		return calendar.UpdateResult{
			Success: false,
			Message: fmt.Sprintf("Error updating event: %v", err),
		}
	}
	if len(events) == 0 {
		return calendar.UpdateResult{
			Success: false,
			Message: fmt.Sprintf("No event found with %s", describeTarget(target)),
		}
	}

	// Earliest start wins on ambiguity.
	event := events[0]

	body, err := mergePatch(event, patch, loc)
	if err != nil {
		uc.l.Warnf(ctx, "calendar: update patch rejected: %v", err)
		return calendar.UpdateResult{
			Success: false,
			Message: fmt.Sprintf("Error updating event: %v", err),
		}
	}

	updated, err := uc.backend.UpdateEvent(ctx, uc.calendarID, event.ID, body)
	if err != nil {
		uc.l.Errorf(ctx, "calendar: update failed: %v", err)
		return calendar.UpdateResult{
			Success: false,
			Message: fmt.Sprintf("Error updating event: %v", err),
		}
	}

	uc.l.Infof(ctx, "calendar: updated event %s", updated.ID)
	return calendar.UpdateResult{
		Success:      true,
		Message:      fmt.Sprintf("Event updated successfully: %s", updated.ID),
		UpdatedEvent: &updated,
	}
}

// mergePatch builds the outgoing body: the existing event's fields overlaid
// with every non-empty patch value. Empty patch values are explicit
// deletions, not no-ops.
func mergePatch(event gcalendar.Event, patch map[string]any, loc *time.Location) (gcalendar.Event, error) {
	body := gcalendar.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
		Start:       event.Start,
		End:         event.End,
	}

	for key, value := range patch {
		switch key {
		case "summary":
			body.Summary = stringOrEmpty(value)
		case "description":
			body.Description = stringOrEmpty(value)
		case "location":
			body.Location = stringOrEmpty(value)
		case "start":
			edt, err := patchDateTime(value, loc)
			if err != nil {
				return body, fmt.Errorf("%w: start: %v", calendar.ErrFormat, err)
			}
			body.Start = edt
		case "end":
			edt, err := patchDateTime(value, loc)
			if err != nil {
				return body, fmt.Errorf("%w: end: %v", calendar.ErrFormat, err)
			}
			body.End = edt
		}
	}

	// The backend requires both bounds; deletion falls back to the
	// original values instead of sending an invalid body.
	if body.Start.DateTime == "" {
		body.Start = event.Start
	}
	if body.End.DateTime == "" {
		body.End = event.End
	}

	var err error
	body.Start, err = normalizeDateTime(body.Start, loc)
	if err != nil {
		return body, fmt.Errorf("%w: start: %v", calendar.ErrFormat, err)
	}
	body.End, err = normalizeDateTime(body.End, loc)
	if err != nil {
		return body, fmt.Errorf("%w: end: %v", calendar.ErrFormat, err)
	}

	return body, nil
}

// patchDateTime interprets a start/end patch value. An empty value clears
// the field; a mapping with a dateTime is taken as the new bound.
func patchDateTime(value any, loc *time.Location) (gcalendar.EventDateTime, error) {
	switch v := value.(type) {
	case nil:
		return gcalendar.EventDateTime{}, nil
	case string:
		if v == "" {
			return gcalendar.EventDateTime{}, nil
		}
		return gcalendar.EventDateTime{DateTime: v}, nil
	case map[string]any:
		if len(v) == 0 {
			return gcalendar.EventDateTime{}, nil
		}
		edt := gcalendar.EventDateTime{}
		if dt, ok := v["dateTime"].(string); ok {
			edt.DateTime = dt
		}
		if tz, ok := v["timeZone"].(string); ok {
			edt.TimeZone = tz
		}
		return edt, nil
	default:
		return gcalendar.EventDateTime{}, fmt.Errorf("unsupported value %T", value)
	}
}

func stringOrEmpty(value any) string {
	s, _ := value.(string)
	return s
}

func describeTarget(target calendar.TargetCriteria) string {
	var parts []string
	if target.Name != "" {
		parts = append(parts, fmt.Sprintf("name %q", target.Name))
	}
	if target.Date != "" {
		parts = append(parts, fmt.Sprintf("date %s", target.Date))
	}
	return strings.Join(parts, ", ")
}
