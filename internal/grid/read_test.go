package grid

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("failed to build cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				t.Fatalf("failed to set cell %s: %v", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("failed to serialize workbook: %v", err)
	}
	return buf.Bytes()
}

func TestRead_XLSX(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Course Listing", "Meeting Patterns", "Start Date"},
		{"CS 2110 - Computer Organization", "Mon/Wed | 9:00 AM - 10:15 AM | Klaus", 45670},
		{"MATH 1550 - Calculus I", "Tue/Thu | 1:30 PM - 2:45 PM | Skiles", 45670},
	})

	g, err := Read(data)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if len(g) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(g))
	}
	if g.Cell(0, 0) != "Course Listing" {
		t.Errorf("unexpected header cell %q", g.Cell(0, 0))
	}
	// Raw cell values keep date cells as their Excel serials.
	if g.Cell(1, 2) != "45670" {
		t.Errorf("expected raw serial 45670, got %q", g.Cell(1, 2))
	}
}

func TestRead_CSVFallback(t *testing.T) {
	csv := "Course Listing,Meeting Patterns,Instructor\n" +
		"CS 2110 - Computer Organization,Mon/Wed | 9:00 AM - 10:15 AM | Klaus,A. Hamilton\n" +
		"HIST 2111 - United States\n" // ragged on purpose

	g, err := Read([]byte(csv))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if len(g) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(g))
	}
	if g.Cell(1, 1) != "Mon/Wed | 9:00 AM - 10:15 AM | Klaus" {
		t.Errorf("unexpected cell %q", g.Cell(1, 1))
	}
	// Ragged row reads as empty beyond its own length.
	if g.Cell(2, 1) != "" {
		t.Errorf("expected empty cell on ragged row, got %q", g.Cell(2, 1))
	}
}

func TestRead_TooFewRows(t *testing.T) {
	if _, err := Read([]byte("only,one,row\n")); err == nil {
		t.Error("expected error for single-row input")
	}
}

func TestGridCell_OutOfRange(t *testing.T) {
	g := Grid{{"a"}}

	tests := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		{"row past end", 5, 0},
		{"col past end", 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Cell(tt.row, tt.col); got != "" {
				t.Errorf("Cell(%d, %d) = %q, want empty", tt.row, tt.col, got)
			}
		})
	}
}
