package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/registrar/internal/domain"
	"github.com/alexanderramin/registrar/internal/registry"
)

var testIDCounter atomic.Int64

// NextID returns a unique id with the given prefix, e.g. "S007".
func NextID(prefix string) string {
	return fmt.Sprintf("%s%03d", prefix, testIDCounter.Add(1))
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("testutil: %v", err))
	}
	return v
}

func emailFor(id string) string {
	return strings.ToLower(id) + "@uni.edu"
}

// Student options
type studentConfig struct {
	name       string
	email      string
	graduate   bool
	recordOpts []domain.RecordOption
	grades     [][2]string
}

type StudentOption func(*studentConfig)

func WithStudentName(name string) StudentOption {
	return func(c *studentConfig) {
		c.name = name
	}
}

func WithStudentEmail(email string) StudentOption {
	return func(c *studentConfig) {
		c.email = email
	}
}

func AsGraduate() StudentOption {
	return func(c *studentConfig) {
		c.graduate = true
	}
}

func WithMaxEnrollments(n int) StudentOption {
	return func(c *studentConfig) {
		c.recordOpts = append(c.recordOpts, domain.WithMaxEnrollments(n))
	}
}

// WithCompleted records the course in the student's record with the letter
// grade. It bypasses any course roster.
func WithCompleted(courseCode, letter string) StudentOption {
	return func(c *studentConfig) {
		c.grades = append(c.grades, [2]string{courseCode, letter})
	}
}

// WithInProgress tracks the course in the student's record without a grade.
func WithInProgress(courseCode string) StudentOption {
	return func(c *studentConfig) {
		c.grades = append(c.grades, [2]string{courseCode, ""})
	}
}

func NewTestStudent(id string, opts ...StudentOption) *domain.ManagedStudent {
	cfg := &studentConfig{name: "test student " + id, email: emailFor(id)}
	for _, opt := range opts {
		opt(cfg)
	}
	newFn := domain.NewManagedUndergraduate
	if cfg.graduate {
		newFn = domain.NewManagedGraduate
	}
	s := must(newFn(id, cfg.name, cfg.email, cfg.recordOpts...))
	for _, g := range cfg.grades {
		if err := s.EnrollCourse(g[0]); err != nil {
			panic(fmt.Sprintf("testutil: %v", err))
		}
		if g[1] == "" {
			continue
		}
		if err := s.Record().SetGrade(g[0], g[1]); err != nil {
			panic(fmt.Sprintf("testutil: %v", err))
		}
	}
	return s
}

// NewTestUnmanagedStudent returns a student without record management.
func NewTestUnmanagedStudent(id string) *domain.Student {
	return must(domain.NewUndergraduate(id, "plain student "+id, emailFor(id)))
}

func NewTestCourse(code string, opts ...domain.CourseOption) *domain.Course {
	return must(domain.NewCourse(code, "Course "+code, opts...))
}

func NewTestFaculty(role domain.Role, id string) domain.FacultyMember {
	return must(domain.NewFacultyMember(role, id, "faculty "+id, emailFor(id), "CS"))
}

// NewDemoDepartment returns the Computer Science department used across
// tests: three faculty, CS101 (capacity 3) taught by F001 and CS201
// (capacity 2, requires CS101) taught by F002. No students are added.
func NewDemoDepartment() *registry.Department {
	d := registry.New("Computer Science")
	d.AddFaculty(must(domain.NewProfessor("F001", "Ada Lovelace", "ada@uni.edu", "CS")))
	d.AddFaculty(must(domain.NewLecturer("F002", "Grace Hopper", "grace@uni.edu", "CS")))
	d.AddFaculty(must(domain.NewTA("F003", "Linus Torvalds", "linus@uni.edu", "CS")))
	d.AddCourse(must(domain.NewCourse("CS101", "Intro to CS", domain.WithCapacity(3))))
	d.AddCourse(must(domain.NewCourse("CS201", "Data Structures", domain.WithCapacity(2), domain.WithPrerequisites("CS101"))))
	if err := d.AssignFacultyToCourse("F001", "CS101"); err != nil {
		panic(err)
	}
	if err := d.AssignFacultyToCourse("F002", "CS201"); err != nil {
		panic(err)
	}
	return d
}
