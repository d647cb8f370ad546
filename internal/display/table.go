package display

import (
	"strings"
	"unicode/utf8"
)

// Table renders an aligned text table. Styling is applied per line after
// widths are computed, so escape codes never skew the alignment.
type Table struct {
	headers []string
	rows    [][]string
	// highlightRow is the 0-based row to accent (typically "today"); -1
	// for none. dimRows marks rows rendered faint.
	highlightRow int
	dimRows      map[int]bool
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers:      headers,
		highlightRow: -1,
		dimRows:      make(map[int]bool),
	}
}

// AddRow appends a row. Missing cells render empty; extra cells are dropped.
func (t *Table) AddRow(values ...string) {
	t.rows = append(t.rows, values)
}

// SetHighlightRow accents the given 0-based row.
func (t *Table) SetHighlightRow(idx int) {
	t.highlightRow = idx
}

// SetDimRow renders the given 0-based row faint. Highlight wins when both
// are set on the same row.
func (t *Table) SetDimRow(idx int) {
	t.dimRows[idx] = true
}

// Render produces the formatted table with a two-space leading indent.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); i < len(widths) && n > widths[i] {
				widths[i] = n
			}
		}
	}

	var sb strings.Builder

	sb.WriteString("  " + Bold(formatRow(t.headers, widths)) + "\n")

	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("─", w)
	}
	sb.WriteString(Dim("  "+strings.Join(sep, "  ")) + "\n")

	for i, row := range t.rows {
		line := formatRow(row, widths)
		switch {
		case i == t.highlightRow:
			sb.WriteString("  " + Accent(line) + "\n")
		case t.dimRows[i]:
			sb.WriteString("  " + Dim(line) + "\n")
		default:
			sb.WriteString("  " + line + "\n")
		}
	}

	return sb.String()
}

// formatRow left-pads by rune count, not bytes, so multi-byte cells (the
// unreachable dash) keep columns aligned.
func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = cell + strings.Repeat(" ", w-utf8.RuneCountInString(cell))
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
