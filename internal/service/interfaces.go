package service

import (
	"context"

	"github.com/alexanderramin/registrar/internal/domain"
)

// EnrollmentService mutates a department. Implementations serialize calls.
type EnrollmentService interface {
	AddCourse(ctx context.Context, c *domain.Course) error
	AddFaculty(ctx context.Context, f domain.FacultyMember) error
	AddStaff(ctx context.Context, s *domain.Staff) error
	AddStudent(ctx context.Context, s domain.Enrollee) error
	AssignFaculty(ctx context.Context, facultyID, courseCode string) error
	Register(ctx context.Context, studentID, courseCode string) error
	Drop(ctx context.Context, studentID, courseCode string) error
	RecordGrade(ctx context.Context, studentID, courseCode, letter string) error
	RecordSemesterGPA(ctx context.Context, studentID, semester string, gpa float64) error
}

// RecordsService answers read-only queries with detached snapshots.
type RecordsService interface {
	Transcript(ctx context.Context, studentID string) (*Transcript, error)
	Roster(ctx context.Context, courseCode string) (*Roster, error)
	Directory(ctx context.Context) (*Directory, error)
}

var (
	_ EnrollmentService = (*Enrollment)(nil)
	_ RecordsService    = (*Enrollment)(nil)
)
