// Package googlecaltest provides a mock Google Calendar API server for
// testing batch create and delete flows without real credentials. It
// implements the subset of the Calendar API v3 this module calls:
// event insert, list, and delete, plus the user's calendar list.
package googlecaltest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"google.golang.org/api/calendar/v3"
)

// Server is a mock Google Calendar API server. Events live in memory,
// keyed by calendar id then event id, and survive until Reset or Close.
type Server struct {
	*httptest.Server
	mu     sync.RWMutex
	events map[string]map[string]*calendar.Event
	nextID int
}

// NewServer starts a mock server. Callers own the returned server and
// must Close it.
func NewServer() *Server {
	s := &Server{
		events: make(map[string]map[string]*calendar.Event),
		nextID: 1,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.route)

	s.Server = httptest.NewServer(mux)
	return s
}

func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	if strings.Contains(r.URL.Path, "/users/me/calendarList") {
		s.listCalendars(w, r)
		return
	}

	calendarID, eventID, ok := splitEventsPath(r.URL.Path)
	if !ok {
		http.Error(w, "unsupported endpoint", http.StatusNotFound)
		return
	}

	switch {
	case eventID == "" && r.Method == http.MethodPost:
		s.insertEvent(w, r, calendarID)
	case eventID == "" && r.Method == http.MethodGet:
		s.listEvents(w, r, calendarID)
	case eventID != "" && r.Method == http.MethodDelete:
		s.deleteEvent(w, calendarID, eventID)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// splitEventsPath extracts the calendar and optional event id from
// /calendar/v3/calendars/{calendarId}/events[/{eventId}].
func splitEventsPath(path string) (calendarID, eventID string, ok bool) {
	idx := strings.Index(path, "/calendars/")
	if idx == -1 {
		return "", "", false
	}

	parts := strings.Split(strings.Trim(path[idx+len("/calendars/"):], "/"), "/")
	if len(parts) < 2 || len(parts) > 3 || parts[1] != "events" {
		return "", "", false
	}
	if len(parts) == 3 {
		eventID = parts[2]
	}
	return parts[0], eventID, true
}

// listCalendars handles GET /users/me/calendarList. The mock reports
// "primary" plus any calendar that has received events, sorted for
// stable assertions.
func (s *Server) listCalendars(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := []string{"primary"}
	for id := range s.events {
		if id != "primary" {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids[1:])

	items := make([]*calendar.CalendarListEntry, 0, len(ids))
	for _, id := range ids {
		items = append(items, &calendar.CalendarListEntry{Id: id, Summary: id})
	}

	writeJSON(w, &calendar.CalendarList{
		Kind:  "calendar#calendarList",
		Items: items,
	})
}

// insertEvent handles POST /calendars/{calendarId}/events. The event
// is stored as sent, recurrence rules and extended properties
// included, so tests can assert on the exact payload the client built.
func (s *Server) insertEvent(w http.ResponseWriter, r *http.Request, calendarID string) {
	var event calendar.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, fmt.Sprintf("invalid JSON: %v", err), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event.Id = fmt.Sprintf("event%d", s.nextID)
	s.nextID++

	event.Status = "confirmed"
	event.Created = time.Now().Format(time.RFC3339)
	event.Updated = event.Created
	event.HtmlLink = "https://calendar.google.com/event?eid=" + event.Id

	if s.events[calendarID] == nil {
		s.events[calendarID] = make(map[string]*calendar.Event)
	}
	s.events[calendarID][event.Id] = &event

	writeJSON(w, &event)
}

// listEvents handles GET /calendars/{calendarId}/events. It honors
// privateExtendedProperty filters (every "key=value" pair must match
// the event's private extended properties), maxResults, and pageToken.
// Recurring events are returned as their series masters; the
// singleEvents expansion is not implemented.
func (s *Server) listEvents(w http.ResponseWriter, r *http.Request, calendarID string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := r.URL.Query()
	privateProps := query["privateExtendedProperty"]

	var events []*calendar.Event
	for _, evt := range s.events[calendarID] {
		if matchesPrivateProps(evt, privateProps) {
			events = append(events, evt)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Id < events[j].Id })

	startIdx := 0
	if token := query.Get("pageToken"); token != "" {
		startIdx, _ = strconv.Atoi(token)
	}
	endIdx := len(events)
	if raw := query.Get("maxResults"); raw != "" {
		if max, err := strconv.Atoi(raw); err == nil && startIdx+max < endIdx {
			endIdx = startIdx + max
		}
	}
	if startIdx > len(events) {
		startIdx = len(events)
	}

	resp := &calendar.Events{
		Kind:    "calendar#events",
		Summary: calendarID,
		Items:   events[startIdx:endIdx],
	}
	if endIdx < len(events) {
		resp.NextPageToken = strconv.Itoa(endIdx)
	}

	writeJSON(w, resp)
}

func matchesPrivateProps(evt *calendar.Event, filters []string) bool {
	if len(filters) == 0 {
		return true
	}
	if evt.ExtendedProperties == nil || evt.ExtendedProperties.Private == nil {
		return false
	}
	for _, filter := range filters {
		key, value, ok := strings.Cut(filter, "=")
		if !ok {
			return false
		}
		if evt.ExtendedProperties.Private[key] != value {
			return false
		}
	}
	return true
}

// deleteEvent handles DELETE /calendars/{calendarId}/events/{eventId}
func (s *Server) deleteEvent(w http.ResponseWriter, calendarID, eventID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	calEvents := s.events[calendarID]
	if calEvents == nil || calEvents[eventID] == nil {
		http.Error(w, "event not found", http.StatusNotFound)
		return
	}

	delete(calEvents, eventID)
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// Reset clears all events from the server.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[string]map[string]*calendar.Event)
	s.nextID = 1
}

// GetEvents returns all events for a calendar (for test assertions).
func (s *Server) GetEvents(calendarID string) []*calendar.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var events []*calendar.Event
	for _, evt := range s.events[calendarID] {
		events = append(events, evt)
	}
	return events
}

// AddEvent adds a pre-configured event to the server (for test setup).
func (s *Server) AddEvent(calendarID string, event *calendar.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if event.Id == "" {
		event.Id = fmt.Sprintf("event%d", s.nextID)
		s.nextID++
	}

	if s.events[calendarID] == nil {
		s.events[calendarID] = make(map[string]*calendar.Event)
	}
	s.events[calendarID][event.Id] = event
}
