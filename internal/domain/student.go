package domain

import (
	"maps"
	"slices"
)

// RecordManager is the record-management capability. Only students that
// implement it can be registered for courses.
type RecordManager interface {
	Person
	Record() *AcademicRecord
	EnrollCourse(courseCode string) error
	DropCourse(courseCode string) error
	CalculateGPA() float64
	AcademicStatus() AcademicStatus
}

// ManagedStudent is a student with an academic record attached.
type ManagedStudent struct {
	Student
	record *AcademicRecord
}

func newManagedStudent(id, name, email string, level StudentLevel, opts []RecordOption) (*ManagedStudent, error) {
	s, err := newStudent(id, name, email, level)
	if err != nil {
		return nil, err
	}
	rec, err := NewAcademicRecord(opts...)
	if err != nil {
		return nil, err
	}
	return &ManagedStudent{Student: *s, record: rec}, nil
}

func NewManagedUndergraduate(id, name, email string, opts ...RecordOption) (*ManagedStudent, error) {
	return newManagedStudent(id, name, email, LevelUndergraduate, opts)
}

func NewManagedGraduate(id, name, email string, opts ...RecordOption) (*ManagedStudent, error) {
	return newManagedStudent(id, name, email, LevelGraduate, opts)
}

func (s *ManagedStudent) Record() *AcademicRecord { return s.record }

func (s *ManagedStudent) EnrollCourse(courseCode string) error {
	return s.record.Enroll(courseCode)
}

func (s *ManagedStudent) DropCourse(courseCode string) error {
	return s.record.Drop(courseCode)
}

// CalculateGPA averages the 4.0-scale weights of graded courses, rounded to
// two decimals. In-progress courses are ignored; no graded courses yields 0.
func (s *ManagedStudent) CalculateGPA() float64 {
	return GPA(s.record.Courses())
}

func (s *ManagedStudent) AcademicStatus() AcademicStatus {
	return StatusForGPA(s.CalculateGPA())
}

// GPA computes the grade point average of a course snapshot.
func GPA(courses map[string]CourseStatus) float64 {
	var sum float64
	var n int
	for _, code := range slices.Sorted(maps.Keys(courses)) {
		g, ok := courses[code].Grade()
		if !ok {
			continue
		}
		points, _ := g.Points()
		sum += points
		n++
	}
	if n == 0 {
		return 0.0
	}
	return round2(sum / float64(n))
}
