package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voice-tool-backend/internal/calendar"
	"voice-tool-backend/pkg/gcalendar"
	"voice-tool-backend/pkg/timeutil"
)

const (
	// searchWindowDays is the half-width of the wide net used when a name
	// has no date anchor.
	searchWindowDays = 365

	// searchBuffer absorbs backend/clock skew around explicit date windows.
	searchBuffer = 5 * time.Minute
)

// searchWindow is the [start, end] range sent to the backend. Derived per
// call and discarded after use.
type searchWindow struct {
	start time.Time
	end   time.Time
}

// Find returns events matching the criteria, earliest start first.
//
// Mutations act on the first element of this ordering. That earliest-match
// rule is deterministic but lossy: when several events share a name on the
// same day, an ambiguous update or delete can pick the wrong one.
func (uc *implUseCase) Find(ctx context.Context, loc *time.Location, criteria calendar.FindCriteria) ([]gcalendar.Event, error) {
	window, err := uc.deriveWindow(loc, criteria)
	if err != nil {
		return nil, err
	}

	uc.l.Debugf(ctx, "calendar: searching events from %s to %s",
		window.start.Format(time.RFC3339), window.end.Format(time.RFC3339))

	events, err := uc.backend.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    window.start,
		TimeMax:    window.end,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", calendar.ErrBackend, err)
	}

	if criteria.Name != "" {
		events = filterByName(events, criteria.Name)
	}

	uc.l.Debugf(ctx, "calendar: %d events matched", len(events))
	return events, nil
}

// FindAll returns every event in the standard one-year window around now.
func (uc *implUseCase) FindAll(ctx context.Context, loc *time.Location) ([]gcalendar.Event, error) {
	now := uc.now().In(loc)
	events, err := uc.backend.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    now.AddDate(0, 0, -searchWindowDays),
		TimeMax:    now.AddDate(0, 0, searchWindowDays),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", calendar.ErrBackend, err)
	}
	return events, nil
}

// deriveWindow builds the backend query range. Precedence:
//   - neither name nor dates: the current local day
//   - name only: now ± searchWindowDays
//   - start only: end defaults to end of start's day
//   - end only: start defaults to start of end's day
//   - both: used as supplied
//
// Explicit-date windows get a ± searchBuffer before querying.
func (uc *implUseCase) deriveWindow(loc *time.Location, criteria calendar.FindCriteria) (searchWindow, error) {
	var start, end *time.Time

	if criteria.Start != "" {
		t, err := timeutil.ParseISO(criteria.Start, loc)
		if err != nil {
			return searchWindow{}, fmt.Errorf("%w: %v", calendar.ErrFormat, err)
		}
		t = timeutil.EnsureZone(t, loc)
		start = &t
	}
	if criteria.End != "" {
		t, err := timeutil.ParseISO(criteria.End, loc)
		if err != nil {
			return searchWindow{}, fmt.Errorf("%w: %v", calendar.ErrFormat, err)
		}
		t = timeutil.EnsureZone(t, loc)
		end = &t
	}

	now := uc.now().In(loc)

	if start == nil && end == nil {
		if criteria.Name != "" {
			// Name has no date anchor: cast a wide net, no buffer.
			return searchWindow{
				start: now.AddDate(0, 0, -searchWindowDays),
				end:   now.AddDate(0, 0, searchWindowDays),
			}, nil
		}
		return searchWindow{
			start: timeutil.StartOfDay(now, loc),
			end:   timeutil.EndOfDay(now, loc),
		}, nil
	}

	if start != nil && end == nil {
		e := timeutil.EndOfDay(*start, loc)
		end = &e
	} else if end != nil && start == nil {
		s := timeutil.StartOfDay(*end, loc)
		start = &s
	}

	return searchWindow{
		start: start.Add(-searchBuffer),
		end:   end.Add(searchBuffer),
	}, nil
}

// filterByName keeps events whose summary contains name, case-insensitively.
// The backend cannot filter by name, so this runs client-side over the
// time-ranged candidates.
func filterByName(events []gcalendar.Event, name string) []gcalendar.Event {
	needle := strings.ToLower(name)
	matched := make([]gcalendar.Event, 0, len(events))
	for _, event := range events {
		if strings.Contains(strings.ToLower(event.Summary), needle) {
			matched = append(matched, event)
		}
	}
	return matched
}
