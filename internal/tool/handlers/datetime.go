package handlers

import (
	"context"
	"fmt"
	"time"

	"voice-tool-backend/internal/locale"
	pkgLog "voice-tool-backend/pkg/log"
)

// DateTimeHandler answers get_date_and_time locally, without any backend
// call.
type DateTimeHandler struct {
	l   pkgLog.Logger
	now func() time.Time
}

// NewDateTimeHandler creates the date/time tool.
func NewDateTimeHandler(l pkgLog.Logger) *DateTimeHandler {
	return &DateTimeHandler{
		l:   l,
		now: time.Now,
	}
}

func (h *DateTimeHandler) Name() string {
	return "get_date_and_time"
}

// Execute resolves the requested IANA zone, defaulting to the locale
// profile's timezone. An unknown zone falls back to the default instead
// of failing.
func (h *DateTimeHandler) Execute(ctx context.Context, profile locale.Profile, args map[string]any) (any, error) {
	zoneName := stringArg(args, "timezone")
	loc := profile.Location()

	if zoneName == "" {
		zoneName = profile.DefaultTimezone
	} else if parsed, err := time.LoadLocation(zoneName); err == nil {
		loc = parsed
	} else {
		h.l.Warnf(ctx, "datetime: unknown zone %q, falling back to %s", zoneName, profile.DefaultTimezone)
		zoneName = profile.DefaultTimezone
	}

	now := h.now().In(loc)
	return map[string]any{
		"date":        now.Format("2006-01-02"),
		"time":        now.Format("15:04:05"),
		"timezone":    zoneName,
		"timestamp":   now.Unix(),
		"day_of_week": now.Weekday().String(),
		"is_dst":      isDST(now),
		"utc_offset":  utcOffset(now),
		"formatted":   now.Format("2006-01-02 15:04:05 MST"),
	}, nil
}

// isDST reports whether t's offset exceeds the zone's smallest offset of
// the year, which is the standard-time offset in every zone with DST.
func isDST(t time.Time) bool {
	jan := time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	jul := time.Date(t.Year(), 7, 1, 0, 0, 0, 0, t.Location())

	_, offset := t.Zone()
	_, janOffset := jan.Zone()
	_, julOffset := jul.Zone()

	standard := janOffset
	if julOffset < standard {
		standard = julOffset
	}
	return offset > standard
}

func utcOffset(t time.Time) string {
	_, offset := t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("%s%02d:%02d", sign, offset/3600, (offset%3600)/60)
}
