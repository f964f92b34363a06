package service

import (
	"maps"
	"slices"

	"github.com/alexanderramin/registrar/internal/domain"
	"github.com/alexanderramin/registrar/internal/registry"
)

type PersonSummary struct {
	ID               string
	Name             string
	Email            string
	Role             domain.Role
	Responsibilities []string
	// Workload is zero for roles without a teaching load.
	Workload int
}

type CourseSummary struct {
	Code           string
	Title          string
	Capacity       int
	Enrolled       int
	Prerequisites  []string
	InstructorID   string
	InstructorName string
}

type StudentSummary struct {
	PersonSummary
	Level   domain.StudentLevel
	Managed bool
	// The fields below are zero for unmanaged students.
	CourseCount int
	GPA         float64
	Status      domain.AcademicStatus
}

type TranscriptEntry struct {
	CourseCode string
	Title      string
	Status     domain.CourseStatus
}

type SemesterGPA struct {
	Semester string
	GPA      float64
}

type Transcript struct {
	Student        StudentSummary
	MaxEnrollments int
	Courses        []TranscriptEntry
	GPAHistory     []SemesterGPA
}

type Roster struct {
	Course   CourseSummary
	Students []StudentSummary
}

type Directory struct {
	Name     string
	Courses  []CourseSummary
	Faculty  []PersonSummary
	Staff    []PersonSummary
	Students []StudentSummary
}

// People returns staff, faculty and students in that order.
func (d *Directory) People() []PersonSummary {
	out := make([]PersonSummary, 0, len(d.Staff)+len(d.Faculty)+len(d.Students))
	out = append(out, d.Staff...)
	out = append(out, d.Faculty...)
	for _, s := range d.Students {
		out = append(out, s.PersonSummary)
	}
	return out
}

func summarizePerson(p domain.Person) PersonSummary {
	s := PersonSummary{
		ID:               p.ID(),
		Name:             p.Name(),
		Email:            p.Email(),
		Role:             p.Role(),
		Responsibilities: p.Responsibilities(),
	}
	if w, ok := p.(domain.WorkloadCalculator); ok {
		s.Workload = w.Workload()
	}
	return s
}

func summarizeStudent(s domain.Enrollee) StudentSummary {
	out := StudentSummary{PersonSummary: summarizePerson(s), Level: s.Level()}
	if rm, ok := s.(domain.RecordManager); ok {
		out.Managed = true
		out.CourseCount = rm.Record().Len()
		out.GPA = rm.CalculateGPA()
		out.Status = rm.AcademicStatus()
	}
	return out
}

func summarizeCourse(d *registry.Department, c *domain.Course) CourseSummary {
	s := CourseSummary{
		Code:          c.Code(),
		Title:         c.Title(),
		Capacity:      c.Capacity(),
		Enrolled:      c.EnrolledCount(),
		Prerequisites: c.Prerequisites(),
	}
	if id, ok := c.AssignedFaculty(); ok {
		s.InstructorID = id
	}
	if f, ok := d.CourseInstructor(c.Code()); ok {
		s.InstructorName = f.Name()
	}
	return s
}

func buildTranscript(d *registry.Department, s domain.Enrollee) *Transcript {
	t := &Transcript{Student: summarizeStudent(s)}
	rm, ok := s.(domain.RecordManager)
	if !ok {
		return t
	}
	record := rm.Record()
	t.MaxEnrollments = record.MaxEnrollments()

	courses := record.Courses()
	for _, code := range slices.Sorted(maps.Keys(courses)) {
		entry := TranscriptEntry{CourseCode: code, Status: courses[code]}
		if c, err := d.Course(code); err == nil {
			entry.Title = c.Title()
		}
		t.Courses = append(t.Courses, entry)
	}

	history := record.GPAHistory()
	for _, sem := range slices.Sorted(maps.Keys(history)) {
		t.GPAHistory = append(t.GPAHistory, SemesterGPA{Semester: sem, GPA: history[sem]})
	}
	return t
}
