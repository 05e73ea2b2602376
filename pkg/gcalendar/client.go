package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// defaultMaxResults matches the Calendar API maximum so a single list call
// covers the whole search window.
const defaultMaxResults = 2500

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	// Try service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		tokenSource := config.TokenSource(ctx)
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	// Fallback: try OAuth2 installed app credentials
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}

	// For OAuth2 Desktop app: use a static token if token.json exists
	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: use Service Account instead")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	tokenSource := oauthConfig.TokenSource(ctx, &tok)
	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// EnsureCalendar returns the ID of the calendar with the given summary,
// creating it with the given timezone when no such calendar exists.
func (c *Client) EnsureCalendar(ctx context.Context, summary, timezone string) (string, error) {
	list, err := c.service.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to list calendars: %w", err)
	}

	for _, cal := range list.Items {
		if cal.Summary == summary {
			return cal.Id, nil
		}
	}

	created, err := c.service.Calendars.Insert(&calendar.Calendar{
		Summary:  summary,
		TimeZone: timezone,
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create calendar %q: %w", summary, err)
	}

	return created.Id, nil
}

// ListEvents returns single events in [TimeMin, TimeMax] ordered by start time.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}
	maxResults := req.MaxResults
	if maxResults == 0 {
		maxResults = defaultMaxResults
	}

	result, err := c.service.Events.List(calendarID).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(result.Items))
	for _, item := range result.Items {
		events = append(events, fromAPI(item))
	}
	return events, nil
}

// InsertEvent creates a new event and returns it as stored by the backend.
func (c *Client) InsertEvent(ctx context.Context, calendarID string, event Event) (Event, error) {
	created, err := c.service.Events.Insert(calendarID, toAPI(event)).Context(ctx).Do()
	if err != nil {
		return Event{}, fmt.Errorf("failed to insert calendar event: %w", err)
	}
	return fromAPI(created), nil
}

// UpdateEvent replaces the event with the given ID.
func (c *Client) UpdateEvent(ctx context.Context, calendarID, eventID string, event Event) (Event, error) {
	updated, err := c.service.Events.Update(calendarID, eventID, toAPI(event)).Context(ctx).Do()
	if err != nil {
		return Event{}, fmt.Errorf("failed to update calendar event %s: %w", eventID, err)
	}
	return fromAPI(updated), nil
}

// DeleteEvent removes the event with the given ID.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if err := c.service.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event %s: %w", eventID, err)
	}
	return nil
}

func toAPI(e Event) *calendar.Event {
	return &calendar.Event{
		Summary:     e.Summary,
		Description: e.Description,
		Location:    e.Location,
		Start: &calendar.EventDateTime{
			DateTime: e.Start.DateTime,
			TimeZone: e.Start.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: e.End.DateTime,
			TimeZone: e.End.TimeZone,
		},
	}
}

func fromAPI(e *calendar.Event) Event {
	out := Event{
		ID:          e.Id,
		Summary:     e.Summary,
		Description: e.Description,
		Location:    e.Location,
	}
	if e.Start != nil {
		out.Start = EventDateTime{DateTime: e.Start.DateTime, TimeZone: e.Start.TimeZone}
		// All-day events carry a date instead of a dateTime.
		if out.Start.DateTime == "" {
			out.Start.DateTime = e.Start.Date
		}
	}
	if e.End != nil {
		out.End = EventDateTime{DateTime: e.End.DateTime, TimeZone: e.End.TimeZone}
		if out.End.DateTime == "" {
			out.End.DateTime = e.End.Date
		}
	}
	return out
}
