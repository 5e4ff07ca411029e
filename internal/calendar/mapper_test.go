package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/drewfead/coursecal/internal/schedule"
)

var testToday = time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)

func testCourse() schedule.Course {
	return schedule.Course{
		ID:         1,
		Title:      "CS 2110 - Computer Organization",
		Days:       []schedule.Weekday{schedule.Monday, schedule.Wednesday},
		Start:      schedule.Clock{Hour: 9},
		End:        schedule.Clock{Hour: 10, Minute: 15},
		Location:   "Klaus 1443",
		Instructor: "A. Hamilton",
		StartDate:  time.Date(2025, time.January, 14, 0, 0, 0, 0, time.UTC), // a Tuesday
		EndDate:    time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestCourseToEvent(t *testing.T) {
	event, err := CourseToEvent(testCourse(), "batch-123", "", testToday)
	if err != nil {
		t.Fatalf("CourseToEvent() error = %v", err)
	}

	if event.Summary != "CS 2110 - Computer Organization" {
		t.Errorf("unexpected summary %q", event.Summary)
	}
	if event.Location != "Klaus 1443" {
		t.Errorf("unexpected location %q", event.Location)
	}
	if event.Description != "Instructor: A. Hamilton" {
		t.Errorf("unexpected description %q", event.Description)
	}

	// The first Monday/Wednesday on or after Tuesday the 14th is
	// Wednesday the 15th; the DateTime must be local-floating (no
	// offset suffix) with the zone carried separately.
	if event.Start == nil || event.Start.DateTime != "2025-01-15T09:00:00" {
		t.Fatalf("unexpected start %+v", event.Start)
	}
	if event.Start.TimeZone != DefaultTimeZone {
		t.Errorf("expected default timezone %q, got %q", DefaultTimeZone, event.Start.TimeZone)
	}
	if event.End == nil || event.End.DateTime != "2025-01-15T10:15:00" {
		t.Fatalf("unexpected end %+v", event.End)
	}

	if len(event.Recurrence) != 1 || event.Recurrence[0] != "RRULE:FREQ=WEEKLY;BYDAY=MO,WE;UNTIL=20250502" {
		t.Errorf("unexpected recurrence %v", event.Recurrence)
	}

	if event.ExtendedProperties == nil || event.ExtendedProperties.Private["coursecalBatch"] != "batch-123" {
		t.Errorf("expected batch id in private extended properties, got %+v", event.ExtendedProperties)
	}
}

func TestCourseToEvent_ExplicitTimeZone(t *testing.T) {
	event, err := CourseToEvent(testCourse(), "batch-123", "America/New_York", testToday)
	if err != nil {
		t.Fatalf("CourseToEvent() error = %v", err)
	}
	if event.Start.TimeZone != "America/New_York" || event.End.TimeZone != "America/New_York" {
		t.Errorf("expected explicit timezone on both ends, got %q / %q",
			event.Start.TimeZone, event.End.TimeZone)
	}
}

func TestCourseToEvent_MissingStartDate(t *testing.T) {
	course := testCourse()
	course.StartDate = time.Time{}

	_, err := CourseToEvent(course, "batch-123", "", testToday)
	if !errors.Is(err, ErrMissingDateTime) {
		t.Errorf("expected ErrMissingDateTime, got %v", err)
	}
}

func TestCourseToEvent_EmptyDays(t *testing.T) {
	course := testCourse()
	course.Days = nil

	_, err := CourseToEvent(course, "batch-123", "", testToday)
	if !errors.Is(err, schedule.ErrInvalidRecurrence) {
		t.Errorf("expected ErrInvalidRecurrence, got %v", err)
	}
}
