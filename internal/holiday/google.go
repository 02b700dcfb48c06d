package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/koyomi/internal/calendar"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// DefaultGoogleCalendarID is Google's public Japanese holiday calendar.
const DefaultGoogleCalendarID = "ja.japanese#holiday@group.v.calendar.google.com"

// GoogleSource reads all-day events from a public Google Calendar and turns
// them into holiday entries.
type GoogleSource struct {
	srv        *gcal.Service
	calendarID string
}

// NewGoogleSource creates a source for calendarID. Public calendars only
// need an API key; extra client options are passed through. An
// option.WithHTTPClient replaces the key authentication.
func NewGoogleSource(ctx context.Context, apiKey, calendarID string, opts ...option.ClientOption) (*GoogleSource, error) {
	if calendarID == "" {
		calendarID = DefaultGoogleCalendarID
	}
	if apiKey != "" {
		opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	}
	srv, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}
	return &GoogleSource{srv: srv, calendarID: calendarID}, nil
}

// Fetch returns the holidays dated within [from, to], both inclusive.
// Timed (non all-day) events are ignored.
func (s *GoogleSource) Fetch(ctx context.Context, from, to string) (*Table, error) {
	start, err := calendar.ParseDate(from, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	end, err := calendar.ParseDate(to, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("range end %s before start %s", to, from)
	}

	entries := make(map[string]string)
	call := s.srv.Events.List(s.calendarID).
		TimeMin(start.Format(time.RFC3339)).
		TimeMax(end.AddDate(0, 0, 1).Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(250)

	err = call.Pages(ctx, func(page *gcal.Events) error {
		for _, ev := range page.Items {
			if ev.Start == nil || ev.Start.Date == "" || ev.Summary == "" {
				continue
			}
			if ev.Start.Date < from || ev.Start.Date > to {
				continue
			}
			entries[ev.Start.Date] = ev.Summary
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing holiday events: %w", err)
	}

	return NewTable(entries), nil
}
