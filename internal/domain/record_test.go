package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(t *testing.T, opts ...RecordOption) *AcademicRecord {
	t.Helper()
	r, err := NewAcademicRecord(opts...)
	require.NoError(t, err)
	return r
}

func TestAcademicRecord_Defaults(t *testing.T) {
	r := newTestRecord(t)
	assert.Equal(t, DefaultMaxEnrollments, r.MaxEnrollments())
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Courses())
}

func TestAcademicRecord_InvalidLimit(t *testing.T) {
	_, err := NewAcademicRecord(WithMaxEnrollments(0))
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestAcademicRecord_EnrollSetsInProgress(t *testing.T) {
	r := newTestRecord(t)
	require.NoError(t, r.Enroll("CS101"))

	status, ok := r.Status("CS101")
	require.True(t, ok)
	assert.Equal(t, InProgress, status)
	assert.False(t, r.IsCompleted("CS101"))
}

func TestAcademicRecord_DuplicateEnrollmentLeavesState(t *testing.T) {
	r := newTestRecord(t)
	require.NoError(t, r.Enroll("CS101"))
	require.NoError(t, r.SetGrade("CS101", "B"))
	before := r.Courses()

	err := r.Enroll("CS101")
	assert.ErrorIs(t, err, ErrDuplicateEnrollment)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Equal(t, before, r.Courses())
}

func TestAcademicRecord_EnrollmentLimit(t *testing.T) {
	r := newTestRecord(t, WithMaxEnrollments(2))
	require.NoError(t, r.Enroll("A1"))
	require.NoError(t, r.Enroll("A2"))

	err := r.Enroll("A3")
	assert.ErrorIs(t, err, ErrEnrollmentLimit)
	assert.True(t, IsCapacity(err))
	assert.Equal(t, 2, r.Len())

	// Completed courses still count toward the limit.
	require.NoError(t, r.SetGrade("A1", "A"))
	assert.ErrorIs(t, r.Enroll("A3"), ErrEnrollmentLimit)

	require.NoError(t, r.Drop("A2"))
	assert.NoError(t, r.Enroll("A3"))
}

func TestAcademicRecord_CanEnrollDoesNotMutate(t *testing.T) {
	r := newTestRecord(t, WithMaxEnrollments(1))
	assert.NoError(t, r.CanEnroll("CS101"))
	assert.Equal(t, 0, r.Len())
}

func TestAcademicRecord_Drop(t *testing.T) {
	r := newTestRecord(t)
	assert.ErrorIs(t, r.Drop("CS101"), ErrNotEnrolled)
	require.NoError(t, r.Enroll("CS101"))
	require.NoError(t, r.Drop("CS101"))
	_, ok := r.Status("CS101")
	assert.False(t, ok)
}

func TestAcademicRecord_SetGrade(t *testing.T) {
	r := newTestRecord(t)

	err := r.SetGrade("CS101", "A")
	assert.ErrorIs(t, err, ErrNotEnrolled)
	assert.True(t, IsNotFound(err))

	require.NoError(t, r.Enroll("CS101"))
	for _, bad := range []string{"E", "a", "A+", "IN_PROGRESS", ""} {
		assert.ErrorIs(t, r.SetGrade("CS101", bad), ErrInvalidGrade, "letter %q", bad)
	}
	status, _ := r.Status("CS101")
	assert.Equal(t, InProgress, status)

	require.NoError(t, r.SetGrade("CS101", "F"))
	assert.True(t, r.IsCompleted("CS101"))

	require.NoError(t, r.SetGrade("CS101", "B+"))
	status, _ = r.Status("CS101")
	assert.Equal(t, CourseStatus("B+"), status)
}

func TestAcademicRecord_SemesterGPA(t *testing.T) {
	r := newTestRecord(t)

	_, ok := r.SemesterGPA("2024-fall")
	assert.False(t, ok)

	require.NoError(t, r.SetSemesterGPA("2024-fall", 3.456))
	gpa, ok := r.SemesterGPA("2024-fall")
	require.True(t, ok)
	assert.Equal(t, 3.46, gpa)

	require.NoError(t, r.SetSemesterGPA("2024-fall", 4.0))
	gpa, _ = r.SemesterGPA("2024-fall")
	assert.Equal(t, 4.0, gpa)

	require.NoError(t, r.SetSemesterGPA("2025-spring", 0.0))

	for _, bad := range []float64{-0.01, 4.01, 10, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.ErrorIs(t, r.SetSemesterGPA("2025-fall", bad), ErrGPAOutOfRange)
	}
	_, ok = r.SemesterGPA("2025-fall")
	assert.False(t, ok)
	assert.Len(t, r.GPAHistory(), 2)
}

func TestAcademicRecord_CoursesSnapshotIsolated(t *testing.T) {
	r := newTestRecord(t)
	require.NoError(t, r.Enroll("CS101"))

	first := r.Courses()
	second := r.Courses()
	assert.Equal(t, first, second)

	first["CS101"] = "A"
	first["CS999"] = InProgress
	status, _ := r.Status("CS101")
	assert.Equal(t, InProgress, status)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, second, r.Courses())
}

func TestAcademicRecord_GPAHistorySnapshotIsolated(t *testing.T) {
	r := newTestRecord(t)
	require.NoError(t, r.SetSemesterGPA("2024-fall", 3.0))
	h := r.GPAHistory()
	h["2024-fall"] = 1.0
	gpa, _ := r.SemesterGPA("2024-fall")
	assert.Equal(t, 3.0, gpa)
}
