package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/registrar/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle colors an academic status: green for Dean's List, red for
// probation.
func StatusStyle(s domain.AcademicStatus) lipgloss.Style {
	switch s {
	case domain.StatusDeansList:
		return StyleGreen
	case domain.StatusProbation:
		return StyleRed
	case domain.StatusGoodStanding:
		return StyleBlue
	default:
		return StyleDim
	}
}

// StatusIndicator returns a colored marker such as "● DEAN'S LIST".
func StatusIndicator(s domain.AcademicStatus) string {
	if s == "" {
		return StyleDim.Render("● UNRECORDED")
	}
	return StatusStyle(s).Render("● " + strings.ToUpper(string(s)))
}

// CourseStatus renders a record entry: in-progress courses in yellow, failing
// grades in red, everything else in the foreground color.
func CourseStatus(s domain.CourseStatus) string {
	switch g, graded := s.Grade(); {
	case !graded:
		return StyleYellow.Render("in progress")
	case g == domain.GradeF:
		return StyleRed.Render(string(g))
	default:
		return StyleFg.Render(string(g))
	}
}

// RoleStyle gives each role family its own color.
func RoleStyle(r domain.Role) lipgloss.Style {
	switch r {
	case domain.RoleProfessor, domain.RoleLecturer, domain.RoleTA:
		return StylePurple
	case domain.RoleStudent:
		return StyleBlue
	default:
		return StyleFg
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
