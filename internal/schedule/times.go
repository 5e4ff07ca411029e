package schedule

import (
	"regexp"
	"strconv"
	"strings"
)

// Default meeting times used when a row's time token doesn't parse.
var (
	DefaultStart = Clock{Hour: 9}
	DefaultEnd   = Clock{Hour: 10}
)

var (
	clockRe     = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(AM|PM)$`)
	timeRangeRe = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(AM|PM)\s*-\s*(\d{1,2}):(\d{2})\s*(AM|PM)$`)
)

// ParseClock parses a 12-hour "H:MM AM" time into a wall clock.
// "12:00 AM" is midnight and "12:00 PM" is noon.
func ParseClock(s string) (Clock, bool) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Clock{}, false
	}
	return clockFromParts(m[1], m[2], m[3]), true
}

// ParseTimeRange parses "H:MM AM - H:MM PM" into start and end clocks,
// falling back to the 09:00-10:00 defaults when the token doesn't
// match.
func ParseTimeRange(token string) (start, end Clock) {
	m := timeRangeRe.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return DefaultStart, DefaultEnd
	}
	return clockFromParts(m[1], m[2], m[3]), clockFromParts(m[4], m[5], m[6])
}

func clockFromParts(hour, minute, meridiem string) Clock {
	h, _ := strconv.Atoi(hour)
	mm, _ := strconv.Atoi(minute)
	switch strings.ToUpper(meridiem) {
	case "AM":
		if h == 12 {
			h = 0
		}
	case "PM":
		if h != 12 {
			h += 12
		}
	}
	return Clock{Hour: h, Minute: mm}
}
