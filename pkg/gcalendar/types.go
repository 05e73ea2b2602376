package gcalendar

import "time"

// EventDateTime mirrors the Calendar API start/end shape. DateTime is an
// ISO-8601 timestamp with explicit offset; TimeZone is an IANA zone name.
type EventDateTime struct {
	DateTime string `json:"dateTime,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

// Event is a calendar event as stored by the backend. The ID is opaque and
// backend-assigned; this service never persists events locally.
type Event struct {
	ID          string        `json:"id,omitempty"`
	Summary     string        `json:"summary,omitempty"`
	Description string        `json:"description,omitempty"`
	Location    string        `json:"location,omitempty"`
	Start       EventDateTime `json:"start"`
	End         EventDateTime `json:"end"`
}

// ListEventsRequest is the input for listing events in a time range.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
