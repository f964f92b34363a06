package domain

import (
	"fmt"
	"maps"
	"slices"
)

const DefaultCapacity = 50

// Course is a seat-limited offering gated by prerequisites. The roster never
// holds more students than its capacity. Build one with NewCourse; the zero
// value has no seats.
type Course struct {
	code          string
	title         string
	capacity      int
	prerequisites []string

	enrolled          map[string]struct{}
	assignedFacultyID string
}

type CourseOption func(*Course)

func WithCapacity(n int) CourseOption {
	return func(c *Course) {
		c.capacity = n
	}
}

func WithPrerequisites(codes ...string) CourseOption {
	return func(c *Course) {
		c.prerequisites = append(c.prerequisites, codes...)
	}
}

// NewCourse returns an empty course. Capacity defaults to DefaultCapacity.
func NewCourse(code, title string, opts ...CourseOption) (*Course, error) {
	if code == "" {
		return nil, ErrInvalidCode
	}
	c := &Course{
		code:     code,
		title:    title,
		capacity: DefaultCapacity,
		enrolled: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.capacity <= 0 {
		return nil, fmt.Errorf("%w: %s has capacity %d", ErrInvalidCapacity, code, c.capacity)
	}
	return c, nil
}

func (c *Course) Code() string  { return c.code }
func (c *Course) Title() string { return c.title }
func (c *Course) Capacity() int { return c.capacity }

// Prerequisites returns a copy of the prerequisite codes in declared order.
func (c *Course) Prerequisites() []string {
	return slices.Clone(c.prerequisites)
}

func (c *Course) HasSeat() bool {
	return len(c.enrolled) < c.capacity
}

func (c *Course) SeatsLeft() int {
	return c.capacity - len(c.enrolled)
}

// Enroll adds studentID to the roster. Adding a student already on the
// roster is harmless but still requires a free seat.
func (c *Course) Enroll(studentID string) error {
	if !c.HasSeat() {
		return fmt.Errorf("%w: %s", ErrCourseFull, c.code)
	}
	if c.enrolled == nil {
		c.enrolled = make(map[string]struct{})
	}
	c.enrolled[studentID] = struct{}{}
	return nil
}

// Drop removes studentID if present.
func (c *Course) Drop(studentID string) {
	delete(c.enrolled, studentID)
}

func (c *Course) IsEnrolled(studentID string) bool {
	_, ok := c.enrolled[studentID]
	return ok
}

// Enrolled returns the roster sorted by student id.
func (c *Course) Enrolled() []string {
	return slices.Sorted(maps.Keys(c.enrolled))
}

func (c *Course) EnrolledCount() int {
	return len(c.enrolled)
}

// AssignFaculty overwrites the assignment. The owning department checks that
// the id exists.
func (c *Course) AssignFaculty(facultyID string) {
	c.assignedFacultyID = facultyID
}

func (c *Course) AssignedFaculty() (string, bool) {
	return c.assignedFacultyID, c.assignedFacultyID != ""
}
