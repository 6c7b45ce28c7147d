package ui

import (
	"fmt"
	"strings"
)

// TableColumn represents a table column configuration
type TableColumn struct {
	Header string
	Width  int
	Align  string // "left", "center", "right"
}

// TableRenderer renders data in table format
type TableRenderer struct {
	columns []TableColumn
	rows    [][]string
}

// NewTable creates a new table renderer
func NewTable() *TableRenderer {
	return &TableRenderer{}
}

// AddColumn adds a column to the table
func (t *TableRenderer) AddColumn(header string, width int, align string) *TableRenderer {
	if align == "" {
		align = "left"
	}
	t.columns = append(t.columns, TableColumn{
		Header: header,
		Width:  width,
		Align:  align,
	})
	return t
}

// AddRow adds a data row to the table
func (t *TableRenderer) AddRow(cells ...string) *TableRenderer {
	t.rows = append(t.rows, cells)
	return t
}

// Render outputs the formatted table
func (t *TableRenderer) Render() string {
	if len(t.columns) == 0 {
		return ""
	}

	var lines []string

	var headerCells []string
	for i, col := range t.columns {
		cell := formatCell(col.Header, col.Width, col.Align)
		if i == 0 {
			headerCells = append(headerCells, Header.Render(cell))
		} else {
			headerCells = append(headerCells, Bold.Render(cell))
		}
	}
	lines = append(lines, strings.Join(headerCells, "  "))

	var sepCells []string
	for _, col := range t.columns {
		sepCells = append(sepCells, Muted.Render(strings.Repeat("─", max(col.Width, 0))))
	}
	lines = append(lines, strings.Join(sepCells, "  "))

	for _, row := range t.rows {
		var rowCells []string
		for i, col := range t.columns {
			var cellValue string
			if i < len(row) {
				cellValue = row[i]
			}
			rowCells = append(rowCells, formatCell(cellValue, col.Width, col.Align))
		}
		lines = append(lines, strings.Join(rowCells, "  "))
	}

	return strings.Join(lines, "\n")
}

// formatCell formats a cell with the specified width and alignment
func formatCell(text string, width int, align string) string {
	runes := []rune(text)
	if len(runes) > width {
		if width > 3 {
			return string(runes[:width-3]) + "..."
		}
		return string(runes[:max(width, 0)])
	}

	padding := width - len(runes)
	switch align {
	case "center":
		leftPad := padding / 2
		rightPad := padding - leftPad
		return fmt.Sprintf("%*s%s%*s", leftPad, "", text, rightPad, "")
	case "right":
		return strings.Repeat(" ", padding) + text
	case "left":
		fallthrough
	default:
		return text + strings.Repeat(" ", padding)
	}
}
