// Package googlecaltest provides a mock Google Calendar API server for
// testing batch event creation and deletion without authentication or
// network access.
//
// # Supported Operations
//
// The mock server implements the Calendar API v3 surface this module
// calls:
//
//   - Insert Event: POST /calendars/{calendarId}/events
//   - List Events: GET /calendars/{calendarId}/events (with pagination
//     and privateExtendedProperty metadata filters)
//   - Delete Event: DELETE /calendars/{calendarId}/events/{eventId}
//   - Calendar List: GET /users/me/calendarList
//
// # Basic Usage
//
//	// Create mock server
//	server := googlecaltest.NewServer()
//	defer server.Close()
//
//	// Create Google Calendar client pointing to mock
//	ctx := context.Background()
//	client := &http.Client{}
//	svc, err := calendar.NewService(ctx,
//	    option.WithHTTPClient(client),
//	    option.WithEndpoint(server.URL))
//
//	// Use the service normally
//	event := &calendar.Event{
//	    Summary: "CS 2110 - Computer Organization",
//	    Start: &calendar.EventDateTime{
//	        DateTime: "2025-01-13T09:00:00",
//	        TimeZone: "America/Chicago",
//	    },
//	}
//	created, err := svc.Events.Insert("primary", event).Do()
//
// # Test Helpers
//
// The server provides helper methods for test setup and assertions:
//
//	// Pre-populate events for testing
//	server.AddEvent("primary", &calendar.Event{
//	    Id: "test-event-1",
//	    Summary: "Existing Event",
//	})
//
//	// Get all events for assertions
//	events := server.GetEvents("primary")
//
//	// Clear all data between tests
//	server.Reset()
//
// # Features
//
//   - Thread-safe: Uses mutex for concurrent access
//   - Pagination: Supports maxResults and pageToken query parameters
//   - Metadata filtering: Supports privateExtendedProperty=key=value
//     parameters, which is how batch-tagged course events are located
//     for bulk deletion
//   - Recurring events: Stored and listed as series masters, so
//     deleting a listed event removes its whole series
//   - Multiple calendars: Each calendar ID maintains separate event
//     storage, and every calendar that has received events appears on
//     the user's calendar list
//   - Automatic ID generation: Assigns sequential IDs to new events
//   - Metadata: Sets Created, Updated, Status, and HtmlLink fields
package googlecaltest
