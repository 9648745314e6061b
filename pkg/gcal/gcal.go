package gcal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/kwon0144/HarborHub/config"
)

// Sentinel errors for upstream auth failures. Handlers map these to
// 401 and 403 respectively.
var (
	ErrAuth       = errors.New("calendar authentication failed")
	ErrPermission = errors.New("calendar access denied")
)

// Interval is a half-open busy window as reported by the calendar.
// Times are RFC3339 strings carried verbatim from the API.
type Interval struct {
	Start string
	End   string
}

// EventInput describes an event to insert.
type EventInput struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	Timezone    string
	ColorID     string
}

// Event is the subset of an inserted event returned to callers.
type Event struct {
	ID       string
	HTMLLink string
	Summary  string
	Start    string
	End      string
}

// Client talks to the Google Calendar API with a refresh-token
// credential. Safe for concurrent use.
type Client struct {
	svc *calendar.Service
}

// NewClient builds a calendar client from OAuth2 refresh-token
// credentials. The token source refreshes access tokens on demand.
func NewClient(ctx context.Context, cfg *config.CalendarConfig) (*Client, error) {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
	}
	token := &oauth2.Token{RefreshToken: cfg.RefreshToken}

	httpClient := oauth2.NewClient(ctx, oauthCfg.TokenSource(ctx, token))
	httpClient.Timeout = 15 * time.Second

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// ListBusy returns the busy intervals of a calendar between min and max
// (RFC3339), expanding recurring events into single instances.
func (c *Client) ListBusy(ctx context.Context, calendarID, timeMin, timeMax, timezone string) ([]Interval, error) {
	events, err := c.svc.Events.List(calendarID).
		TimeMin(timeMin).
		TimeMax(timeMax).
		TimeZone(timezone).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, translateErr(err)
	}

	busy := make([]Interval, 0, len(events.Items))
	for _, item := range events.Items {
		if item.Start == nil || item.End == nil {
			continue
		}
		// All-day events carry Date instead of DateTime; they never
		// match an hourly slot so they are skipped.
		if item.Start.DateTime == "" || item.End.DateTime == "" {
			continue
		}
		busy = append(busy, Interval{Start: item.Start.DateTime, End: item.End.DateTime})
	}

	return busy, nil
}

// IsSlotFree runs a freebusy query for a single window.
func (c *Client) IsSlotFree(ctx context.Context, calendarID string, start, end time.Time) (bool, error) {
	resp, err := c.svc.Freebusy.Query(&calendar.FreeBusyRequest{
		TimeMin: start.Format(time.RFC3339),
		TimeMax: end.Format(time.RFC3339),
		Items:   []*calendar.FreeBusyRequestItem{{Id: calendarID}},
	}).Context(ctx).Do()
	if err != nil {
		return false, translateErr(err)
	}

	cal, ok := resp.Calendars[calendarID]
	if !ok {
		return false, fmt.Errorf("calendar %s missing from freebusy response", calendarID)
	}

	return len(cal.Busy) == 0, nil
}

// InsertEvent creates an event on the target calendar.
func (c *Client) InsertEvent(ctx context.Context, in EventInput) (*Event, error) {
	ev := &calendar.Event{
		Summary:     in.Summary,
		Description: in.Description,
		Location:    in.Location,
		ColorId:     in.ColorID,
		Start: &calendar.EventDateTime{
			DateTime: in.Start.Format(time.RFC3339),
			TimeZone: in.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: in.End.Format(time.RFC3339),
			TimeZone: in.Timezone,
		},
	}

	created, err := c.svc.Events.Insert(in.CalendarID, ev).Context(ctx).Do()
	if err != nil {
		return nil, translateErr(err)
	}

	out := &Event{
		ID:       created.Id,
		HTMLLink: created.HtmlLink,
		Summary:  created.Summary,
	}
	if created.Start != nil {
		out.Start = created.Start.DateTime
	}
	if created.End != nil {
		out.End = created.End.DateTime
	}

	return out, nil
}

func translateErr(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %v", ErrAuth, err)
		case http.StatusForbidden:
			return fmt.Errorf("%w: %v", ErrPermission, err)
		}
	}
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return fmt.Errorf("%w: %v", ErrAuth, err)
	}
	return err
}
