package schedule

import (
	"sort"
	"strings"
	"time"
)

// Weekday is a day of the week in Monday-first canonical order, which
// is how course schedules list meeting days.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// weekdayPrefixes are matched case-sensitively as substrings, so
// "Mon", "Monday", and "Mondays" all resolve to Monday.
var weekdayPrefixes = [...]string{
	"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun",
}

var weekdayAbbrevs = [...]string{"MO", "TU", "WE", "TH", "FR", "SA", "SU"}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "Unknown"
	}
	return weekdayNames[d]
}

// Abbrev returns the two-letter RFC 5545 BYDAY code for the weekday.
func (d Weekday) Abbrev() string {
	if d < Monday || d > Sunday {
		return ""
	}
	return weekdayAbbrevs[d]
}

// Time converts the weekday to the stdlib's Sunday-first numbering.
func (d Weekday) Time() time.Weekday {
	return time.Weekday((int(d) + 1) % 7)
}

// FromTime converts a stdlib weekday into Monday-first numbering.
func FromTime(d time.Weekday) Weekday {
	return Weekday((int(d) + 6) % 7)
}

// ParseDays maps a free-text day token onto the set of weekdays it
// mentions. Tokens may list several days in one fragment
// ("Monday, Wednesday") or separate them with slashes
// ("Monday/Wednesday"); both normalize to the same set. Fragments that
// mention no weekday contribute nothing. The result is de-duplicated
// and sorted Monday-first; an empty result defaults to Monday because
// a course with no meeting day is not representable.
func ParseDays(token string) []Weekday {
	seen := make(map[Weekday]bool)
	for _, fragment := range strings.Split(token, "/") {
		for i, prefix := range weekdayPrefixes {
			if strings.Contains(fragment, prefix) {
				seen[Weekday(i)] = true
			}
		}
	}

	if len(seen) == 0 {
		return []Weekday{Monday}
	}

	days := make([]Weekday, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

func containsDay(days []Weekday, d Weekday) bool {
	for _, day := range days {
		if day == d {
			return true
		}
	}
	return false
}
