package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradePoints(t *testing.T) {
	want := map[Grade]float64{
		GradeA: 4.0, GradeAMinus: 3.7, GradeBPlus: 3.3, GradeB: 3.0, GradeBMinus: 2.7,
		GradeCPlus: 2.3, GradeC: 2.0, GradeD: 1.0, GradeF: 0.0,
	}
	require.Len(t, Grades(), len(want))
	for _, g := range Grades() {
		points, ok := g.Points()
		require.True(t, ok, "grade %s", g)
		assert.Equal(t, want[g], points, "grade %s", g)
	}

	_, ok := Grade("D-").Points()
	assert.False(t, ok)
}

func TestParseGrade(t *testing.T) {
	g, err := ParseGrade("A-")
	require.NoError(t, err)
	assert.Equal(t, GradeAMinus, g)

	for _, bad := range []string{"a-", " A", "E", "IN_PROGRESS"} {
		_, err := ParseGrade(bad)
		assert.ErrorIs(t, err, ErrInvalidGrade, "letter %q", bad)
	}
}

func TestStatusForGPA(t *testing.T) {
	tests := []struct {
		gpa  float64
		want AcademicStatus
	}{
		{4.0, StatusDeansList},
		{3.7, StatusDeansList},
		{3.69, StatusGoodStanding},
		{2.5, StatusGoodStanding},
		{2.0, StatusGoodStanding},
		{1.99, StatusProbation},
		{0.0, StatusProbation},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, StatusForGPA(tc.gpa), "gpa %v", tc.gpa)
	}
}

func TestGPA(t *testing.T) {
	tests := []struct {
		name    string
		courses map[string]CourseStatus
		want    float64
	}{
		{"empty", nil, 0.0},
		{"in progress only", map[string]CourseStatus{"CS101": InProgress}, 0.0},
		{"two graded", map[string]CourseStatus{"CS101": "A", "CS201": "B+"}, 3.65},
		{"ignores in progress", map[string]CourseStatus{"CS101": "A", "CS201": "B+", "CS301": InProgress}, 3.65},
		{"fail counts", map[string]CourseStatus{"CS101": "A", "CS201": "F"}, 2.0},
		{"rounds", map[string]CourseStatus{"A1": "A", "A2": "A-", "A3": "B+"}, 3.67},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GPA(tc.courses))
		})
	}
}

func TestManagedStudent_GPAAndStatus(t *testing.T) {
	s, err := NewManagedUndergraduate("S1", "john doe", "john@uni.edu")
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.CalculateGPA())
	assert.Equal(t, StatusProbation, s.AcademicStatus())

	require.NoError(t, s.EnrollCourse("CS101"))
	require.NoError(t, s.EnrollCourse("CS201"))
	require.NoError(t, s.Record().SetGrade("CS101", "A"))
	assert.Equal(t, 4.0, s.CalculateGPA())
	assert.Equal(t, StatusDeansList, s.AcademicStatus())

	require.NoError(t, s.Record().SetGrade("CS201", "B+"))
	assert.Equal(t, 3.65, s.CalculateGPA())
	assert.Equal(t, StatusGoodStanding, s.AcademicStatus())

	require.NoError(t, s.DropCourse("CS201"))
	assert.Equal(t, 4.0, s.CalculateGPA())
}

func TestManagedStudent_RecordOptions(t *testing.T) {
	s, err := NewManagedGraduate("S3", "sara connor", "sara@uni.edu", WithMaxEnrollments(1))
	require.NoError(t, err)
	require.NoError(t, s.EnrollCourse("CS101"))
	assert.ErrorIs(t, s.EnrollCourse("CS201"), ErrEnrollmentLimit)

	_, err = NewManagedGraduate("S4", "kyle", "kyle@uni.edu", WithMaxEnrollments(-1))
	assert.ErrorIs(t, err, ErrInvalidLimit)
}
