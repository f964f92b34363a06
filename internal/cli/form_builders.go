package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/registrar/internal/cli/formatter"
	"github.com/alexanderramin/registrar/internal/service"
)

// registrarHuhTheme matches huh forms to the formatter palette.
func registrarHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// studentOptions lists the students that can be registered. Students
// without a record are left out.
func studentOptions(students []service.StudentSummary) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(students))
	for _, s := range students {
		if !s.Managed {
			continue
		}
		label := fmt.Sprintf("%s  %s  (GPA %s)", s.ID, s.Name, formatter.GPA(s.GPA))
		opts = append(opts, huh.NewOption(label, s.ID))
	}
	return opts
}

func courseOptions(courses []service.CourseSummary) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(courses))
	for _, c := range courses {
		label := fmt.Sprintf("%s  %s  %d/%d seats", c.Code, c.Title, c.Enrolled, c.Capacity)
		opts = append(opts, huh.NewOption(label, c.Code))
	}
	return opts
}

// registrationForm asks for whichever of student and course is still empty.
func registrationForm(dir *service.Directory, studentID, courseCode *string) *huh.Form {
	var fields []huh.Field
	if *studentID == "" {
		fields = append(fields, huh.NewSelect[string]().
			Title("Student").
			Options(studentOptions(dir.Students)...).
			Value(studentID))
	}
	if *courseCode == "" {
		fields = append(fields, huh.NewSelect[string]().
			Title("Course").
			Options(courseOptions(dir.Courses)...).
			Value(courseCode))
	}
	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(registrarHuhTheme()).
		WithShowHelp(false)
}
