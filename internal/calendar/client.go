// Package calendar creates and removes course events through the
// Google Calendar API, tagging every created event with a batch id so
// one upload's events can be bulk-deleted later.
package calendar

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// batchProperty is the private extended-property key carrying the
// batch id. It is queryable server-side, which is what DeleteBatch
// relies on instead of a local index.
const batchProperty = "coursecalBatch"

// Client wraps the Google Calendar API service
type Client struct {
	service *calendar.Service
}

// NewClient creates a new Google Calendar API client.
// Optionally accepts an endpoint URL for testing with mock servers.
func NewClient(ctx context.Context, httpClient *http.Client, endpoint ...string) (*Client, error) {
	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}

	// Add endpoint override if provided
	if len(endpoint) > 0 && endpoint[0] != "" {
		opts = append(opts, option.WithEndpoint(endpoint[0]))
	}

	srv, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create Calendar service: %w", err)
	}

	return &Client{
		service: srv,
	}, nil
}

// CalendarInfo identifies one calendar the user can write to.
type CalendarInfo struct {
	ID      string
	Summary string
}

// ListCalendars returns the calendars on the user's calendar list.
func (c *Client) ListCalendars(ctx context.Context) ([]CalendarInfo, error) {
	var calendars []CalendarInfo

	pageToken := ""
	for {
		call := c.service.CalendarList.List().Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		list, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("unable to list calendars: %w", err)
		}

		for _, item := range list.Items {
			calendars = append(calendars, CalendarInfo{ID: item.Id, Summary: item.Summary})
		}

		pageToken = list.NextPageToken
		if pageToken == "" {
			return calendars, nil
		}
	}
}

// InsertEvent creates a single event in the specified calendar.
func (c *Client) InsertEvent(ctx context.Context, calendarID string, event *calendar.Event) (*calendar.Event, error) {
	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to create event: %w", err)
	}
	return created, nil
}

// ListBatch returns every event on the calendar tagged with the given
// batch id, recurring-series masters included. Single-event expansion
// is deliberately off: deleting the master removes the whole series.
func (c *Client) ListBatch(ctx context.Context, calendarID, batchID string) ([]*calendar.Event, error) {
	var events []*calendar.Event

	pageToken := ""
	for {
		call := c.service.Events.List(calendarID).
			Context(ctx).
			PrivateExtendedProperty(batchProperty + "=" + batchID)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("unable to retrieve events: %w", err)
		}

		events = append(events, page.Items...)

		pageToken = page.NextPageToken
		if pageToken == "" {
			return events, nil
		}
	}
}

// DeleteEvent deletes an event from the specified calendar
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	err := c.service.Events.Delete(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to delete event: %w", err)
	}
	return nil
}
