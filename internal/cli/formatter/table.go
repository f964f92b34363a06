package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colGap is the number of spaces between table columns.
const colGap = 2

// RenderTable renders an aligned table with a header separator line. Column
// widths are measured on visible text, so styled cells align too. Short rows
// are padded with empty cells; extra cells are dropped.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	measure := func(cells []string) {
		for i := range min(len(cells), len(widths)) {
			widths[i] = max(widths[i], lipgloss.Width(cells[i]))
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i, w := range widths {
			var cell string
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(style(cell))
			if i < len(widths)-1 {
				b.WriteString(strings.Repeat(" ", w-lipgloss.Width(cell)+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return StyleHeader.Render(s) })

	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("─", w)
	}
	writeRow(seps, func(s string) string { return StyleDim.Render(s) })

	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}
	return b.String()
}
