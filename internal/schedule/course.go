// Package schedule extracts normalized course records from a raw
// spreadsheet grid and computes their weekly recurrence.
package schedule

import (
	"fmt"
	"time"
)

// UntitledCourse is the sentinel title for rows whose listing cell was
// empty.
const UntitledCourse = "Untitled Course"

// Clock is a timezone-independent wall-clock time of day.
type Clock struct {
	Hour   int // 0-23
	Minute int // 0-59
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ICS renders the clock as a zero-padded HHMMSS iCalendar time value.
func (c Clock) ICS() string {
	return fmt.Sprintf("%02d%02d00", c.Hour, c.Minute)
}

// Course is one normalized class meeting record extracted from the
// schedule grid. Courses are immutable after construction; they exist
// only for the duration of one conversion request.
type Course struct {
	// ID is the sequence number assigned in extraction order. It is
	// only used for locally-generated file UIDs and is not stable
	// across runs.
	ID int

	// Title is the display name, never empty.
	Title string

	// Days is the ordered, de-duplicated Monday-first meeting day set.
	// It is never empty; extraction defaults it to Monday.
	Days []Weekday

	Start Clock
	End   Clock

	Location           string
	Instructor         string
	RegistrationStatus string

	// StartDate and EndDate are wall-clock calendar dates stored at
	// midnight UTC. A zero value means the source row had no parseable
	// date; callers must handle that explicitly.
	StartDate time.Time
	EndDate   time.Time
}
