package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/registrar/internal/service"
)

// FormatDirectory renders the department summary: courses, then students.
func FormatDirectory(dir *service.Directory) string {
	var b strings.Builder
	b.WriteString(Header(dir.Name))
	b.WriteString("\n\n")

	if len(dir.Courses) == 0 {
		b.WriteString(Dim("No courses."))
		b.WriteString("\n")
	} else {
		rows := make([][]string, 0, len(dir.Courses))
		for _, c := range dir.Courses {
			rows = append(rows, []string{
				Bold(c.Code),
				c.Title,
				RenderSeats(c.Enrolled, c.Capacity, 10),
				instructor(c),
				List(c.Prerequisites),
			})
		}
		b.WriteString(RenderTable([]string{"CODE", "TITLE", "SEATS", "INSTRUCTOR", "REQUIRES"}, rows))
	}
	b.WriteString("\n")

	if len(dir.Students) == 0 {
		b.WriteString(Dim("No students."))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(RenderTable([]string{"ID", "NAME", "LEVEL", "COURSES", "GPA", "STATUS"}, studentRows(dir.Students)))
	return b.String()
}

func instructor(c service.CourseSummary) string {
	switch {
	case c.InstructorName != "":
		return c.InstructorName
	case c.InstructorID != "":
		return Dim(c.InstructorID + " (departed)")
	default:
		return Dim("unassigned")
	}
}

func studentRows(students []service.StudentSummary) [][]string {
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		if !s.Managed {
			rows = append(rows, []string{s.ID, s.Name, string(s.Level), Dim("—"), Dim("—"), Dim("no record")})
			continue
		}
		rows = append(rows, []string{
			s.ID,
			s.Name,
			string(s.Level),
			strconv.Itoa(s.CourseCount),
			GPA(s.GPA),
			StatusIndicator(s.Status),
		})
	}
	return rows
}

// FormatRoster renders one course and the students on its roster.
func FormatRoster(r *service.Roster) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s %s", r.Course.Code, r.Course.Title)))
	b.WriteString("\n")
	b.WriteString(KeyValue("Instructor", instructor(r.Course)))
	b.WriteString("\n")
	b.WriteString(KeyValue("Seats", RenderSeats(r.Course.Enrolled, r.Course.Capacity, 10)))
	b.WriteString("\n")
	b.WriteString(KeyValue("Prerequisites", List(r.Course.Prerequisites)))
	b.WriteString("\n\n")

	if len(r.Students) == 0 {
		b.WriteString(Dim("Nobody is enrolled."))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(RenderTable([]string{"ID", "NAME", "LEVEL", "COURSES", "GPA", "STATUS"}, studentRows(r.Students)))
	return b.String()
}

// FormatTranscript renders a student's record with GPA and status.
func FormatTranscript(t *service.Transcript) string {
	s := t.Student
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s %s", s.ID, s.Name)))
	b.WriteString("\n")
	b.WriteString(KeyValue("Email", s.Email))
	b.WriteString("\n")
	b.WriteString(KeyValue("Level", string(s.Level)))
	b.WriteString("\n")

	if !s.Managed {
		b.WriteString("\n")
		b.WriteString(Dim("This student has no academic record."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(KeyValue("GPA", GPA(s.GPA)))
	b.WriteString("\n")
	b.WriteString(KeyValue("Status", StatusIndicator(s.Status)))
	b.WriteString("\n")
	b.WriteString(KeyValue("Enrollments", fmt.Sprintf("%d of %d", s.CourseCount, t.MaxEnrollments)))
	b.WriteString("\n\n")

	if len(t.Courses) == 0 {
		b.WriteString(Dim("No courses on record."))
		b.WriteString("\n")
	} else {
		rows := make([][]string, 0, len(t.Courses))
		for _, c := range t.Courses {
			rows = append(rows, []string{Bold(c.CourseCode), c.Title, CourseStatus(c.Status)})
		}
		b.WriteString(RenderTable([]string{"CODE", "TITLE", "STATUS"}, rows))
	}

	if len(t.GPAHistory) > 0 {
		b.WriteString("\n")
		rows := make([][]string, 0, len(t.GPAHistory))
		for _, h := range t.GPAHistory {
			rows = append(rows, []string{h.Semester, GPA(h.GPA)})
		}
		b.WriteString(RenderTable([]string{"SEMESTER", "GPA"}, rows))
	}
	return b.String()
}

// FormatRoles lists every person's responsibilities, with the weekly
// workload for faculty.
func FormatRoles(people []service.PersonSummary) string {
	var b strings.Builder
	b.WriteString(Header("Responsibilities"))
	b.WriteString("\n")
	for _, p := range people {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s %s %s\n", Bold(p.Name), RoleStyle(p.Role).Render(string(p.Role)), Dim(p.ID))
		for _, r := range p.Responsibilities {
			fmt.Fprintf(&b, "  • %s\n", r)
		}
		if p.Workload > 0 {
			fmt.Fprintf(&b, "  %s\n", Dim(fmt.Sprintf("workload %d hrs/week", p.Workload)))
		}
	}
	return b.String()
}

// FormatStandings renders one line per student with every course status,
// GPA and academic status.
func FormatStandings(transcripts []*service.Transcript) string {
	rows := make([][]string, 0, len(transcripts))
	for _, t := range transcripts {
		courses := make([]string, 0, len(t.Courses))
		for _, c := range t.Courses {
			courses = append(courses, fmt.Sprintf("%s=%s", c.CourseCode, c.Status))
		}
		rows = append(rows, []string{
			t.Student.Name,
			List(courses),
			GPA(t.Student.GPA),
			StatusIndicator(t.Student.Status),
		})
	}
	return RenderTable([]string{"NAME", "COURSES", "GPA", "STATUS"}, rows)
}

// FormatPolymorphism renders the compact responsibilities listing, one
// person per line with faculty workload underneath.
func FormatPolymorphism(people []service.PersonSummary) string {
	var b strings.Builder
	for _, p := range people {
		fmt.Fprintf(&b, "%s -> resp=[%s]\n", p.Name, strings.Join(p.Responsibilities, ", "))
		if p.Workload > 0 {
			fmt.Fprintf(&b, "  workload=%d hrs/week\n", p.Workload)
		}
	}
	return b.String()
}
