package schedule

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/drewfead/coursecal/internal/grid"
)

// headerScanLimit bounds how many leading rows are searched for the
// header; exports prepend banner rows of arbitrary length.
const headerScanLimit = 10

// headerMarkers must all appear (case-insensitive, substring) in a row
// for it to be recognized as the header.
var headerMarkers = []string{"meeting patterns", "instructor", "course listing"}

// strayArtifact is a junk value the source export sometimes emits in
// the listing column.
const strayArtifact = "13"

// columns is the resolved column index per logical field; -1 means the
// column was not found and the field defaults at Course construction.
type columns struct {
	courseListing      int
	meetingPatterns    int
	instructor         int
	startDate          int
	endDate            int
	registrationStatus int
}

// Synonyms per logical field, in priority order; the first header cell
// containing one of them wins.
var (
	courseListingSynonyms      = []string{"course listing", "course", "subject", "class", "name", "title"}
	meetingPatternsSynonyms    = []string{"meeting patterns", "meeting", "pattern", "schedule", "time"}
	instructorSynonyms         = []string{"instructor", "professor", "teacher", "faculty"}
	startDateSynonyms          = []string{"start date", "start", "begin"}
	endDateSynonyms            = []string{"end date", "end"}
	registrationStatusSynonyms = []string{"registration status", "registration", "status", "enrolled"}
)

var (
	// courseCodeRe is the validity gate: 2-4 uppercase letters, a
	// space, then 4 digits.
	courseCodeRe = regexp.MustCompile(`^[A-Z]{2,4}\s+\d{4}`)

	// courseTitleRe captures "CODE NNNN - description", optionally
	// truncating a trailing "- Fall ..." term marker.
	courseTitleRe = regexp.MustCompile(`^([A-Z]{2,4}\s+\d{4})\s*-\s*(.*?)(?:\s*-\s*Fall.*)?$`)
)

// excludedStatuses mark rows for students who are not actively
// enrolled; those rows never become Course records.
var excludedStatuses = []string{"unregistered", "dropped", "withdrawn"}

// Extract converts a raw grid into the ordered sequence of valid
// Course records. Rows that fail the course-code pattern or whose
// registration status shows the student is not enrolled are dropped
// silently; that is expected filtering, not a fault.
func Extract(g grid.Grid) []Course {
	headerRow := findHeaderRow(g)
	cols := resolveColumns(g.Row(headerRow))

	// Exports sometimes repeat the header mid-data; an echoed row is
	// recognized by its listing cell matching the resolved header cell.
	headerEcho := strings.TrimSpace(g.Cell(headerRow, cols.courseListing))

	var courses []Course
	for row := headerRow + 1; row < len(g); row++ {
		if rowEmpty(g.Row(row)) {
			continue
		}

		listing := strings.TrimSpace(g.Cell(row, cols.courseListing))
		if listing == "" || listing == strayArtifact {
			continue
		}
		if headerEcho != "" && strings.EqualFold(listing, headerEcho) {
			continue
		}

		c := buildCourse(g, row, cols, listing)
		c.ID = len(courses) + 1
		if !courseCodeRe.MatchString(c.Title) {
			slog.Debug("dropping row without course code", "row", row, "title", c.Title)
			continue
		}
		if statusExcluded(c.RegistrationStatus) {
			slog.Debug("dropping unenrolled row", "row", row, "title", c.Title, "status", c.RegistrationStatus)
			continue
		}
		courses = append(courses, c)
	}
	return courses
}

func buildCourse(g grid.Grid, row int, cols columns, listing string) Course {
	days, start, end, location := parseMeetingPattern(g.Cell(row, cols.meetingPatterns))
	return Course{
		Title:              parseTitle(listing),
		Days:               days,
		Start:              start,
		End:                end,
		Location:           location,
		Instructor:         strings.TrimSpace(g.Cell(row, cols.instructor)),
		RegistrationStatus: strings.TrimSpace(g.Cell(row, cols.registrationStatus)),
		StartDate:          ParseDateCell(g.Cell(row, cols.startDate)),
		EndDate:            ParseDateCell(g.Cell(row, cols.endDate)),
	}
}

// findHeaderRow scans the first headerScanLimit rows for one containing
// every header marker; row 0 is assumed when none matches.
func findHeaderRow(g grid.Grid) int {
	limit := headerScanLimit
	if len(g) < limit {
		limit = len(g)
	}
	for row := 0; row < limit; row++ {
		joined := strings.ToLower(strings.Join(g.Row(row), " "))
		matched := true
		for _, marker := range headerMarkers {
			if !strings.Contains(joined, marker) {
				matched = false
				break
			}
		}
		if matched {
			return row
		}
	}
	return 0
}

func resolveColumns(header []string) columns {
	return columns{
		courseListing:      findColumn(header, courseListingSynonyms),
		meetingPatterns:    findColumn(header, meetingPatternsSynonyms),
		instructor:         findColumn(header, instructorSynonyms),
		startDate:          findColumn(header, startDateSynonyms),
		endDate:            findColumn(header, endDateSynonyms),
		registrationStatus: findColumn(header, registrationStatusSynonyms),
	}
}

// findColumn returns the index of the first header cell containing any
// synonym, trying synonyms in priority order. -1 means not found.
func findColumn(header []string, synonyms []string) int {
	for _, syn := range synonyms {
		for i, cell := range header {
			if strings.Contains(strings.ToLower(cell), syn) {
				return i
			}
		}
	}
	return -1
}

// parseTitle normalizes a listing cell into the display title. Cells
// matching the course-code pattern are rebuilt as "CODE - description"
// with any trailing "- Fall ..." marker removed; anything else passes
// through unchanged, and an empty cell yields the sentinel title.
func parseTitle(listing string) string {
	if listing == "" {
		return UntitledCourse
	}
	m := courseTitleRe.FindStringSubmatch(listing)
	if m == nil {
		return listing
	}
	desc := strings.TrimSpace(m[2])
	if desc == "" {
		return m[1]
	}
	return m[1] + " - " + desc
}

// parseMeetingPattern decomposes a "days | times | location" cell.
// Missing or malformed segments fall back to Monday, 09:00-10:00, and
// an empty location.
func parseMeetingPattern(cell string) (days []Weekday, start, end Clock, location string) {
	segments := strings.SplitN(cell, "|", 3)
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}

	dayToken := ""
	timeToken := ""
	if len(segments) > 0 {
		dayToken = segments[0]
	}
	if len(segments) > 1 {
		timeToken = segments[1]
	}
	if len(segments) > 2 {
		location = segments[2]
	}

	days = ParseDays(dayToken)
	start, end = ParseTimeRange(timeToken)
	return days, start, end, location
}

func statusExcluded(status string) bool {
	lower := strings.ToLower(status)
	for _, excluded := range excludedStatuses {
		if strings.Contains(lower, excluded) {
			return true
		}
	}
	return false
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
