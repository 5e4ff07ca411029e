// Package grid reads an uploaded spreadsheet into a raw two-dimensional
// cell grid, prior to any semantic interpretation.
package grid

// Grid is the raw cell data from one spreadsheet export. Rows may be
// ragged; always read cells through Cell.
type Grid [][]string

// Cell returns the cell at (row, col), or the empty string when the
// position is outside the grid.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	if col < 0 || col >= len(g[row]) {
		return ""
	}
	return g[row][col]
}

// Row returns the row at index i, or nil when out of range.
func (g Grid) Row(i int) []string {
	if i < 0 || i >= len(g) {
		return nil
	}
	return g[i]
}
