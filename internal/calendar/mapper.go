package calendar

import (
	"errors"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/drewfead/coursecal/internal/schedule"
)

// DefaultTimeZone is the zone course wall-clock times are interpreted
// in when the caller doesn't supply one.
const DefaultTimeZone = "America/Chicago"

// ErrMissingDateTime reports a course that cannot be scheduled because
// its parsed date or meeting time is absent.
var ErrMissingDateTime = errors.New("missing date or time")

// localDateTime is the Calendar API DateTime layout without a UTC
// offset. The offset is deliberately omitted: the wall-clock time is
// paired with an explicit TimeZone name instead, so the provider
// interprets it in that zone rather than double-converting through
// UTC.
const localDateTime = "2006-01-02T15:04:05"

// CourseToEvent builds the Calendar API event for one course. today is
// the wall date used to align the first occurrence. The returned event
// carries the batch id as a private extended property so DeleteBatch
// can find exactly this creation's events later.
func CourseToEvent(c schedule.Course, batchID, timeZone string, today time.Time) (*calendar.Event, error) {
	if c.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: no start date", ErrMissingDateTime)
	}

	rule, err := schedule.RecurrenceRule(c.Days, c.EndDate)
	if err != nil {
		return nil, err
	}

	if timeZone == "" {
		timeZone = DefaultTimeZone
	}

	first := schedule.FirstMeetingDate(c.StartDate, c.Days, today)
	start := withClock(first, c.Start)
	end := withClock(first, c.End)

	event := &calendar.Event{
		Summary:  c.Title,
		Location: c.Location,
		Start: &calendar.EventDateTime{
			DateTime: start.Format(localDateTime),
			TimeZone: timeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(localDateTime),
			TimeZone: timeZone,
		},
		Recurrence: []string{rule},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{batchProperty: batchID},
		},
	}
	if c.Instructor != "" {
		event.Description = "Instructor: " + c.Instructor
	}
	return event, nil
}

func withClock(date time.Time, clock schedule.Clock) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour, clock.Minute, 0, 0, time.UTC)
}
