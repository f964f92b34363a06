package domain

import (
	"fmt"
	"maps"
)

// CourseStatus is either InProgress or a letter grade.
type CourseStatus string

const InProgress CourseStatus = "IN_PROGRESS"

// IsGraded reports whether the course has been completed with any grade.
func (s CourseStatus) IsGraded() bool {
	return s != InProgress && Grade(s).IsValid()
}

// Grade returns the letter grade; ok is false while in progress.
func (s CourseStatus) Grade() (Grade, bool) {
	if !s.IsGraded() {
		return "", false
	}
	return Grade(s), true
}

const DefaultMaxEnrollments = 6

// AcademicRecord is the ledger of one student's course attempts and
// per-semester GPA snapshots. The number of tracked course codes never
// exceeds the enrollment limit.
type AcademicRecord struct {
	maxEnrollments int
	courses        map[string]CourseStatus
	gpaHistory     map[string]float64
}

type RecordOption func(*AcademicRecord)

func WithMaxEnrollments(n int) RecordOption {
	return func(r *AcademicRecord) {
		r.maxEnrollments = n
	}
}

func NewAcademicRecord(opts ...RecordOption) (*AcademicRecord, error) {
	r := &AcademicRecord{
		maxEnrollments: DefaultMaxEnrollments,
		courses:        make(map[string]CourseStatus),
		gpaHistory:     make(map[string]float64),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.maxEnrollments <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, r.maxEnrollments)
	}
	return r, nil
}

func (r *AcademicRecord) MaxEnrollments() int { return r.maxEnrollments }

// Len returns the number of tracked course codes, graded or not.
func (r *AcademicRecord) Len() int { return len(r.courses) }

// CanEnroll reports the error Enroll would return for courseCode, without
// changing the record.
func (r *AcademicRecord) CanEnroll(courseCode string) error {
	if _, ok := r.courses[courseCode]; ok {
		return fmt.Errorf("%w in %s", ErrDuplicateEnrollment, courseCode)
	}
	if len(r.courses) >= r.maxEnrollments {
		return fmt.Errorf("%w (%d)", ErrEnrollmentLimit, r.maxEnrollments)
	}
	return nil
}

func (r *AcademicRecord) Enroll(courseCode string) error {
	if err := r.CanEnroll(courseCode); err != nil {
		return err
	}
	r.courses[courseCode] = InProgress
	return nil
}

func (r *AcademicRecord) Drop(courseCode string) error {
	if _, ok := r.courses[courseCode]; !ok {
		return fmt.Errorf("%w: %s", ErrNotEnrolled, courseCode)
	}
	delete(r.courses, courseCode)
	return nil
}

// SetGrade overwrites the status of a tracked course. Re-grading an already
// graded course is allowed.
func (r *AcademicRecord) SetGrade(courseCode, letter string) error {
	if _, ok := r.courses[courseCode]; !ok {
		return fmt.Errorf("%w: %s", ErrNotEnrolled, courseCode)
	}
	g, err := ParseGrade(letter)
	if err != nil {
		return err
	}
	r.courses[courseCode] = CourseStatus(g)
	return nil
}

// Status returns the status of courseCode; ok is false when untracked.
func (r *AcademicRecord) Status(courseCode string) (CourseStatus, bool) {
	s, ok := r.courses[courseCode]
	return s, ok
}

// IsCompleted reports whether courseCode is tracked with any grade, failing
// grades included.
func (r *AcademicRecord) IsCompleted(courseCode string) bool {
	s, ok := r.courses[courseCode]
	return ok && s.IsGraded()
}

// Courses returns a copy of the code to status mapping.
func (r *AcademicRecord) Courses() map[string]CourseStatus {
	return maps.Clone(r.courses)
}

func (r *AcademicRecord) SetSemesterGPA(semester string, gpa float64) error {
	// NaN fails both comparisons.
	if !(gpa >= 0.0 && gpa <= 4.0) {
		return fmt.Errorf("%w: got %v", ErrGPAOutOfRange, gpa)
	}
	r.gpaHistory[semester] = round2(gpa)
	return nil
}

func (r *AcademicRecord) SemesterGPA(semester string) (float64, bool) {
	gpa, ok := r.gpaHistory[semester]
	return gpa, ok
}

// GPAHistory returns a copy of the semester to GPA mapping.
func (r *AcademicRecord) GPAHistory() map[string]float64 {
	return maps.Clone(r.gpaHistory)
}
