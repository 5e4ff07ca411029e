// Package ical renders extracted courses as a single iCalendar
// document with one weekly-recurring VEVENT per course.
package ical

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/drewfead/coursecal/internal/schedule"
)

const (
	productID = "-//coursecal//course schedule export//EN"
	uidDomain = "coursecal"
)

// Calendar serializes the courses into iCalendar text. now supplies
// both the DTSTAMP and the fallback date for courses with no start
// date; passing a fixed time makes generation deterministic.
//
// DTSTART and DTEND are deliberately local-floating (no zone, no UTC
// suffix): the extracted times already represent the institution's
// wall clock and must render identically in any viewer timezone.
func Calendar(courses []schedule.Course, now time.Time) string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)

	for _, c := range courses {
		ev := cal.AddEvent(fmt.Sprintf("course-%d@%s", c.ID, uidDomain))
		ev.SetDtStampTime(now.UTC())

		first := schedule.FirstMeetingDate(c.StartDate, c.Days, today)
		ev.SetProperty(ics.ComponentPropertyDtStart, floatingDateTime(first, c.Start))
		ev.SetProperty(ics.ComponentPropertyDtEnd, floatingDateTime(first, c.End))

		// Text values are passed raw; the serializer escapes the
		// characters RFC 5545 reserves in TEXT properties.
		ev.SetSummary(c.Title)

		if rule, err := schedule.RecurrenceRule(c.Days, c.EndDate); err == nil {
			ev.AddRrule(strings.TrimPrefix(rule, "RRULE:"))
		}
		if c.Location != "" {
			ev.SetLocation(c.Location)
		}
		if c.Instructor != "" {
			ev.SetDescription("Instructor: " + c.Instructor)
		}
	}

	return cal.Serialize()
}

// floatingDateTime renders a wall date plus clock time as a floating
// iCalendar DATE-TIME value.
func floatingDateTime(date time.Time, clock schedule.Clock) string {
	return date.Format("20060102") + "T" + clock.ICS()
}
