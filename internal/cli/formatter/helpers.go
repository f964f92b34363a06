package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// GPA renders a GPA with two decimals.
func GPA(gpa float64) string {
	return fmt.Sprintf("%.2f", gpa)
}

// List joins items with commas, or returns a dim dash when empty.
func List(items []string) string {
	if len(items) == 0 {
		return Dim("—")
	}
	return strings.Join(items, ", ")
}

// KeyValue renders an aligned "key  value" line for detail views.
func KeyValue(key, value string) string {
	return fmt.Sprintf("%s %s", StyleDim.Render(fmt.Sprintf("%-16s", key)), value)
}
