package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity_Normalizes(t *testing.T) {
	cases := []struct {
		name, email         string
		wantName, wantEmail string
	}{
		{"john doe", "john@uni.edu", "John Doe", "john@uni.edu"},
		{"ADA LOVELACE", "Ada@Uni.EDU", "Ada Lovelace", "ada@uni.edu"},
		{"grace", "GRACE@UNI.EDU", "Grace", "grace@uni.edu"},
		{"o'neil", "oneil@uni.edu", "O'neil", "oneil@uni.edu"},
	}
	for _, tc := range cases {
		ident, err := NewIdentity("P1", tc.name, tc.email)
		require.NoError(t, err)
		assert.Equal(t, "P1", ident.ID())
		assert.Equal(t, tc.wantName, ident.Name())
		assert.Equal(t, tc.wantEmail, ident.Email())
	}
}

func TestNewIdentity_Rejects(t *testing.T) {
	tests := []struct {
		name             string
		id, pname, email string
		want             error
	}{
		{"empty id", "", "John", "john@uni.edu", ErrInvalidID},
		{"empty name", "S1", "", "john@uni.edu", ErrInvalidName},
		{"email without at", "S1", "John", "john.uni.edu", ErrInvalidEmail},
		{"empty email", "S1", "John", "", ErrInvalidEmail},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewIdentity(tc.id, tc.pname, tc.email)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestIdentity_SetRejectsWithoutMutation(t *testing.T) {
	s, err := NewUndergraduate("S1", "john doe", "john@uni.edu")
	require.NoError(t, err)

	assert.ErrorIs(t, s.SetEmail("nope"), ErrInvalidEmail)
	assert.Equal(t, "john@uni.edu", s.Email())

	assert.ErrorIs(t, s.SetName(""), ErrInvalidName)
	assert.Equal(t, "John Doe", s.Name())

	require.NoError(t, s.SetName("johnny doe"))
	assert.Equal(t, "Johnny Doe", s.Name())
}

func TestRoles_ConstructorsValidate(t *testing.T) {
	_, err := NewProfessor("", "Ada", "ada@uni.edu", "CS")
	assert.ErrorIs(t, err, ErrInvalidID)
	_, err = NewStaff("X1", "Bob", "bob")
	assert.ErrorIs(t, err, ErrInvalidEmail)
	_, err = NewManagedGraduate("S3", "", "sara@uni.edu")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestResponsibilities_Polymorphic(t *testing.T) {
	prof, err := NewProfessor("F1", "ada lovelace", "ada@uni.edu", "CS")
	require.NoError(t, err)
	lec, err := NewLecturer("F2", "grace hopper", "grace@uni.edu", "CS")
	require.NoError(t, err)
	ta, err := NewTA("F3", "linus torvalds", "linus@uni.edu", "CS")
	require.NoError(t, err)
	staff, err := NewStaff("X1", "bob", "bob@uni.edu")
	require.NoError(t, err)
	ug, err := NewManagedUndergraduate("S1", "john doe", "john@uni.edu")
	require.NoError(t, err)

	people := []Person{prof, lec, ta, staff, ug}
	want := map[Role]int{RoleProfessor: 4, RoleLecturer: 3, RoleTA: 3, RoleStaff: 3, RoleStudent: 3}
	for _, p := range people {
		assert.Len(t, p.Responsibilities(), want[p.Role()], "role %s", p.Role())
	}

	workloads := map[Role]int{}
	for _, p := range people {
		if w, ok := p.(WorkloadCalculator); ok {
			workloads[p.Role()] = w.Workload()
		}
	}
	assert.Equal(t, map[Role]int{RoleProfessor: 12, RoleLecturer: 16, RoleTA: 10}, workloads)
}

func TestResponsibilities_ReturnsFreshSlice(t *testing.T) {
	prof, err := NewProfessor("F1", "ada", "ada@uni.edu", "CS")
	require.NoError(t, err)
	got := prof.Responsibilities()
	got[0] = "changed"
	assert.Equal(t, "Teach courses", prof.Responsibilities()[0])
}

func TestNewFacultyMember(t *testing.T) {
	f, err := NewFacultyMember(RoleLecturer, "F2", "grace hopper", "grace@uni.edu", "CS")
	require.NoError(t, err)
	assert.Equal(t, RoleLecturer, f.Role())
	assert.Equal(t, "CS", f.Department())
	assert.Equal(t, 16, f.Workload())

	f, err = NewFacultyMember(RoleStaff, "F9", "x", "x@uni.edu", "CS")
	assert.Nil(t, f)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestStudentLevel(t *testing.T) {
	g, err := NewGraduate("S3", "sara connor", "sara@uni.edu")
	require.NoError(t, err)
	assert.Equal(t, LevelGraduate, g.Level())

	mg, err := NewManagedGraduate("S4", "kyle reese", "kyle@uni.edu")
	require.NoError(t, err)
	assert.Equal(t, LevelGraduate, mg.Level())
	assert.Equal(t, RoleStudent, mg.Role())
}
