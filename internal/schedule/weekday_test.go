package schedule

import (
	"reflect"
	"testing"
	"time"
)

func TestParseDays(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  []Weekday
	}{
		{"slash separated", "Monday/Wednesday", []Weekday{Monday, Wednesday}},
		{"abbreviations", "Mon/Wed/Fri", []Weekday{Monday, Wednesday, Friday}},
		{"single day", "Thursday", []Weekday{Thursday}},
		{"duplicates collapse", "Monday/Mon", []Weekday{Monday}},
		{"out of order normalizes", "Friday/Monday", []Weekday{Monday, Friday}},
		{"unknown fragment ignored", "Monday/TBA", []Weekday{Monday}},
		{"nothing matches defaults", "TBA", []Weekday{Monday}},
		{"empty defaults", "", []Weekday{Monday}},
		{"case sensitive prefixes", "MONDAY", []Weekday{Monday}}, // no "Mon" substring -> default
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDays(tt.token); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseDays(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseDays_SeparatorCommutativity(t *testing.T) {
	// The same day set must come back regardless of how the source
	// separates days.
	slash := ParseDays("Monday/Wednesday")
	comma := ParseDays("Monday, Wednesday")
	if !reflect.DeepEqual(slash, comma) {
		t.Errorf("separator changed the day set: %v vs %v", slash, comma)
	}
}

func TestWeekdayConversions(t *testing.T) {
	if FromTime(time.Monday) != Monday || FromTime(time.Sunday) != Sunday {
		t.Error("stdlib conversion broken")
	}
	for d := Monday; d <= Sunday; d++ {
		if FromTime(d.Time()) != d {
			t.Errorf("round trip failed for %v", d)
		}
	}
	if Monday.Abbrev() != "MO" || Sunday.Abbrev() != "SU" {
		t.Error("unexpected BYDAY abbreviations")
	}
}
