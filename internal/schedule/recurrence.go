package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidRecurrence reports a course whose meeting days cannot form
// a weekly recurrence.
var ErrInvalidRecurrence = errors.New("invalid recurrence")

// maxForwardScan bounds the first-meeting search; any weekday is
// reachable within seven days of the start.
const maxForwardScan = 7

// FirstMeetingDate returns the earliest date on or after startDate
// whose weekday is in the course's day set. A zero startDate starts
// the scan from today instead, and an empty day set falls back to
// today outright. today must be a wall date (midnight).
func FirstMeetingDate(startDate time.Time, days []Weekday, today time.Time) time.Time {
	if len(days) == 0 {
		return today
	}
	from := startDate
	if from.IsZero() {
		from = today
	}
	for i := 0; i <= maxForwardScan; i++ {
		candidate := from.AddDate(0, 0, i)
		if containsDay(days, FromTime(candidate.Weekday())) {
			return candidate
		}
	}
	return from
}

// RecurrenceRule builds the weekly RRULE for the given day set,
// bounded by endDate when present and unbounded otherwise. The same
// rule text is used verbatim in both the ICS export and the Calendar
// API payload so the two paths stay consistent.
func RecurrenceRule(days []Weekday, endDate time.Time) (string, error) {
	if len(days) == 0 {
		return "", fmt.Errorf("%w: no meeting days", ErrInvalidRecurrence)
	}

	abbrevs := make([]string, len(days))
	for i, d := range days {
		abbrevs[i] = d.Abbrev()
	}

	rule := "RRULE:FREQ=WEEKLY;BYDAY=" + strings.Join(abbrevs, ",")
	if !endDate.IsZero() {
		rule += ";UNTIL=" + endDate.Format("20060102")
	}
	return rule, nil
}
