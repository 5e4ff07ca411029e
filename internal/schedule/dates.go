package schedule

import (
	"strconv"
	"strings"
	"time"
)

// excelEpoch is the day before serial 1, so serial 1 maps to
// 1900-01-01.
var excelEpoch = time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)

// leapBugBoundary is the serial of the fictitious 1900-02-29 that the
// 1900 date system counts as a real day. Serials past 59 must drop one
// day to land on the actual calendar.
const leapBugBoundary = 59

// FromExcelSerial converts a 1900-system Excel day serial into a wall
// date at midnight UTC, correcting for the format's false assumption
// that 1900 was a leap year.
func FromExcelSerial(serial int) time.Time {
	days := serial
	if serial > leapBugBoundary {
		days--
	}
	return excelEpoch.AddDate(0, 0, days)
}

// ParseDateCell interprets a raw date cell. Numeric cells are treated
// as Excel serials; anything else (including blank) yields the zero
// time, never "today". Downstream code must handle missing dates
// explicitly.
func ParseDateCell(cell string) time.Time {
	s := strings.TrimSpace(cell)
	if s == "" {
		return time.Time{}
	}
	serial, err := strconv.ParseFloat(s, 64)
	if err != nil || serial <= 0 {
		return time.Time{}
	}
	// A fractional part encodes a time of day; only the wall date is
	// wanted, so it is truncated.
	return FromExcelSerial(int(serial))
}

// FormatDate renders a wall date as ISO YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
