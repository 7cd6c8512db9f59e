package cli

import (
	"strings"
)

// Table is a simple column-aligned table formatter.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2, // 2 spaces between columns
	}
}

// AddRow adds a row to the table. Rows shorter than the header count
// are padded with empty cells, longer rows are truncated.
func (t *Table) AddRow(row []string) {
	if len(row) != len(t.headers) {
		newRow := make([]string, len(t.headers))
		copy(newRow, row)
		t.rows = append(t.rows, newRow)
		return
	}
	t.rows = append(t.rows, row)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	// Calculate column widths.
	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var result strings.Builder

	// Header and separator.
	headerParts := make([]string, len(t.headers))
	sepParts := make([]string, len(t.headers))
	for i, h := range t.headers {
		headerParts[i] = padRight(h, colWidths[i])
		sepParts[i] = strings.Repeat("-", colWidths[i])
	}
	result.WriteString(strings.Join(headerParts, gap))
	result.WriteString("\n")
	result.WriteString(strings.Join(sepParts, gap))
	result.WriteString("\n")

	// Data rows.
	for _, row := range t.rows {
		rowParts := make([]string, len(t.headers))
		for i, cell := range row {
			rowParts[i] = padRight(cell, colWidths[i])
		}
		result.WriteString(strings.Join(rowParts, gap))
		result.WriteString("\n")
	}

	return result.String()
}

// padRight pads a string with spaces on the right to reach the desired width.
// If the string is already longer than or equal to the width, it is returned unchanged.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
