package grid

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"
)

// minDataRows is the smallest row count a strategy must produce before
// its result is trusted. Exports always carry at least a header row and
// one course row; anything less means the strategy mis-detected the
// populated range.
const minDataRows = 2

// probe window for the cell-sweep strategy. Schedule exports are small;
// the window only bounds how far the sweep looks, not the grid size.
const (
	probeRows = 500
	probeCols = 40
)

type strategy struct {
	name string
	read func(data []byte) (Grid, error)
}

// strategies are tried in order; the first one yielding at least
// minDataRows wins. The sweep strategy exists because xlsx dimension
// metadata is sometimes wrong and GetRows then returns a truncated
// grid; the CSV strategy covers exports saved as plain text.
var strategies = []strategy{
	{name: "xlsx-rows", read: readXLSXRows},
	{name: "xlsx-sweep", read: readXLSXSweep},
	{name: "csv", read: readCSV},
}

// Read decodes raw uploaded bytes into a Grid, trying each parse
// strategy in priority order.
func Read(data []byte) (Grid, error) {
	var lastErr error
	for _, s := range strategies {
		g, err := s.read(data)
		if err != nil {
			lastErr = err
			slog.Debug("grid strategy failed", "strategy", s.name, "error", err)
			continue
		}
		if len(g) < minDataRows {
			slog.Debug("grid strategy produced too few rows", "strategy", s.name, "rows", len(g))
			continue
		}
		slog.Debug("grid parsed", "strategy", s.name, "rows", len(g))
		return g, nil
	}
	if lastErr != nil {
		return nil, fmt.Errorf("unable to read schedule grid: %w", lastErr)
	}
	return nil, fmt.Errorf("unable to read schedule grid: no strategy produced at least %d rows", minDataRows)
}

// readXLSXRows reads the first sheet via the workbook's own row data.
// Raw cell values are requested so date cells come back as their
// underlying Excel serials instead of display-formatted strings.
func readXLSXRows(data []byte) (Grid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet %q: %w", sheet, err)
	}
	return Grid(rows), nil
}

// readXLSXSweep rebuilds the grid cell-by-cell over a fixed probe
// window, ignoring the sheet's dimension metadata entirely. Trailing
// empty rows and columns are trimmed afterwards.
func readXLSXSweep(data []byte) (Grid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	opts := excelize.Options{RawCellValue: true}
	var g Grid
	lastRow := -1
	for r := 0; r < probeRows; r++ {
		row := make([]string, 0, probeCols)
		lastCol := -1
		for c := 0; c < probeCols; c++ {
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, fmt.Errorf("unable to build cell name: %w", err)
			}
			v, err := f.GetCellValue(sheet, name, opts)
			if err != nil {
				return nil, fmt.Errorf("unable to read cell %s: %w", name, err)
			}
			row = append(row, v)
			if strings.TrimSpace(v) != "" {
				lastCol = c
			}
		}
		g = append(g, row[:lastCol+1])
		if lastCol >= 0 {
			lastRow = r
		}
	}
	return g[:lastRow+1], nil
}

// readCSV decodes the bytes as CSV. Records are allowed to be ragged.
func readCSV(data []byte) (Grid, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var g Grid
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("unable to parse CSV: %w", err)
		}
		g = append(g, record)
	}
	return g, nil
}
