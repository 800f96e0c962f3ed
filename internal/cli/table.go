package cli

import (
	"strings"
)

// Table is a plain-text table with columns sized to their widest cell.
// The last column is never padded, so it can hold ANSI escape sequences.
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

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	if len(row) != len(t.headers) {
		newRow := make([]string, len(t.headers))
		copy(newRow, row)
		row = newRow
	}
	t.rows = append(t.rows, row)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

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

	var result strings.Builder

	t.writeLine(&result, t.headers, colWidths)

	sep := make([]string, len(t.headers))
	for i := range t.headers {
		w := colWidths[i]
		if i == len(t.headers)-1 {
			w = len(t.headers[i])
		}
		sep[i] = strings.Repeat("-", w)
	}
	t.writeLine(&result, sep, colWidths)

	for _, row := range t.rows {
		t.writeLine(&result, row, colWidths)
	}

	return result.String()
}

func (t *Table) writeLine(sb *strings.Builder, cells []string, widths []int) {
	parts := make([]string, len(cells))
	last := len(cells) - 1
	for i, cell := range cells {
		if i == last {
			parts[i] = cell
			continue
		}
		parts[i] = padRight(cell, widths[i])
	}
	sb.WriteString(strings.TrimRight(strings.Join(parts, strings.Repeat(" ", t.padding)), " "))
	sb.WriteString("\n")
}

// padRight pads a string with spaces on the right to reach the desired width.
// If the string is already longer than or equal to the width, it is returned unchanged.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
