// Package cli provides the command-line interface for iconseek.
package cli

import (
	"strings"
)

// table is a simple plain-text table with dynamic column widths. One
// column may be designated as flexible; when the rendered width would
// exceed a given total, that column's cells are word-wrapped to fit.
type table struct {
	headers  []string
	rows     [][]string
	padding  int
	flexible int // column index allowed to wrap, -1 for none
}

func newTable(headers ...string) *table {
	return &table{
		headers:  headers,
		padding:  2,
		flexible: -1,
	}
}

// setFlexible marks the column that absorbs width pressure by wrapping.
func (t *table) setFlexible(col int) {
	t.flexible = col
}

// addRow appends a row, padding or truncating it to the header count.
func (t *table) addRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// render formats the table. When totalWidth is positive and the natural
// layout is wider, the flexible column is wrapped to make the table fit;
// without a flexible column the layout is left at its natural width.
func (t *table) render(totalWidth int) string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	if totalWidth > 0 && t.flexible >= 0 {
		fixed := t.padding * (len(t.headers) - 1)
		for i, w := range widths {
			if i != t.flexible {
				fixed += w
			}
		}
		if avail := totalWidth - fixed; avail > len(t.headers[t.flexible]) && avail < widths[t.flexible] {
			widths[t.flexible] = avail
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var b strings.Builder

	cells := make([]string, len(t.headers))
	for i, h := range t.headers {
		cells[i] = padRight(h, widths[i])
	}
	b.WriteString(strings.TrimRight(strings.Join(cells, gap), " "))
	b.WriteByte('\n')

	for i, w := range widths {
		cells[i] = strings.Repeat("-", w)
	}
	b.WriteString(strings.Join(cells, gap))
	b.WriteByte('\n')

	for _, row := range t.rows {
		wrapped := make([][]string, len(row))
		lines := 1
		for i, cell := range row {
			if i == t.flexible {
				wrapped[i] = wrapText(cell, widths[i])
			} else {
				wrapped[i] = []string{cell}
			}
			if len(wrapped[i]) > lines {
				lines = len(wrapped[i])
			}
		}
		for line := 0; line < lines; line++ {
			for i := range row {
				cell := ""
				if line < len(wrapped[i]) {
					cell = wrapped[i][line]
				}
				cells[i] = padRight(cell, widths[i])
			}
			b.WriteString(strings.TrimRight(strings.Join(cells, gap), " "))
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// padRight pads a string with spaces to reach width; longer strings are
// returned unchanged.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// wrapText word-wraps text to the given width. Words longer than the
// width are hard-broken.
func wrapText(text string, width int) []string {
	if width <= 0 || len(text) <= width {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	current := ""
	for _, word := range words {
		for len(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
