package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colGap is the padding between table columns.
const colGap = 2

// RenderTable renders a simple aligned table with a header separator line.
// Headers are rendered with the Header style. Columns are padded to the
// widest visible cell, so styled and double-width text aligns. Empty cells
// render as a dimmed "--".
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	cellAt := func(row []string, i int) string {
		if i < len(row) && row[i] != "" {
			return row[i]
		}
		return Dim("--")
	}
	for _, row := range rows {
		for i := 0; i < cols; i++ {
			if w := lipgloss.Width(cellAt(row, i)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i < cols-1 {
				b.WriteString(PadRight(cell, widths[i]+colGap))
			} else {
				b.WriteString(cell)
			}
		}
		b.WriteString("\n")
	}

	header := make([]string, cols)
	sep := make([]string, cols)
	for i, h := range headers {
		header[i] = StyleHeader.Render(h)
		sep[i] = StyleDim.Render(strings.Repeat("─", widths[i]))
	}
	writeRow(header)
	writeRow(sep)

	for _, row := range rows {
		cells := make([]string, cols)
		for i := range cells {
			cells[i] = cellAt(row, i)
		}
		writeRow(cells)
	}
	return b.String()
}
