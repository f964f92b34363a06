package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/registrar/internal/domain"
	"github.com/alexanderramin/registrar/internal/importer"
	"github.com/alexanderramin/registrar/internal/logger"
)

func testApp(t *testing.T) *App {
	t.Helper()
	return &App{
		Options:       importer.DefaultOptions(),
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs the root command with args and returns combined output.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeDepartmentFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dept.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const mathDepartment = `
department: {name: Mathematics, code: MA}
faculty:
  - {id: F10, name: emmy noether, email: emmy@uni.edu, rank: professor}
courses:
  - {code: MA100, title: Calculus, capacity: 1, instructor: F10}
  - {code: MA200, title: Algebra, prerequisites: [MA100]}
students:
  - {id: S10, name: kurt goedel, email: kurt@uni.edu}
  - {id: S11, name: alan turing, email: alan@uni.edu, level: graduate}
  - {id: S12, name: plain visitor, email: visitor@uni.edu, managed: false}
`

func TestSummaryCmd_Demo(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "COMPUTER SCIENCE")
	assert.Contains(t, out, "Intro to CS")
	assert.Contains(t, out, "3/3")
	assert.Contains(t, out, "2/2")
	assert.Contains(t, out, "Grace Hopper")
	assert.Contains(t, out, "Sara Connor")
}

func TestSummaryCmd_File(t *testing.T) {
	path := writeDepartmentFile(t, mathDepartment)
	out, err := executeCmd(t, testApp(t), "summary", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "MATHEMATICS")
	assert.Contains(t, out, "0/50")
	assert.Contains(t, out, "no record")
}

func TestSummaryCmd_DefaultFileFromApp(t *testing.T) {
	app := testApp(t)
	app.DefaultFile = writeDepartmentFile(t, mathDepartment)
	out, err := executeCmd(t, app, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "MATHEMATICS")
}

func TestSummaryCmd_LoadFailuresAreLogged(t *testing.T) {
	var logs bytes.Buffer
	logger.Configure(logger.Config{Level: logger.WarnLevel, Output: &logs})
	t.Cleanup(func() { logger.Configure(logger.Config{Level: logger.ErrorLevel, Output: &bytes.Buffer{}}) })

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := executeCmd(t, testApp(t), "summary", "--file", missing)
	require.Error(t, err)
	assert.Contains(t, logs.String(), "department file unreadable")
	assert.Contains(t, logs.String(), missing)

	logs.Reset()
	broken := writeDepartmentFile(t, "department: {name: Broken}\ncourses:\n  - {code: X1}\n")
	_, err = executeCmd(t, testApp(t), "summary", "--file", broken)
	require.Error(t, err)
	assert.Contains(t, logs.String(), "department file rejected")
}

func TestSummaryCmd_InvalidFile(t *testing.T) {
	path := writeDepartmentFile(t, "department: {name: Broken}\ncourses:\n  - {code: X1}\n")
	_, err := executeCmd(t, testApp(t), "summary", "--file", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, importer.ErrInvalidFile)
	assert.Contains(t, err.Error(), "courses[0].title")
}

func TestRolesCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "roles")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "Research & publish")
	assert.Contains(t, out, "workload 12 hrs/week")
	assert.Contains(t, out, "workload 16 hrs/week")
	assert.Contains(t, out, "workload 10 hrs/week")
	assert.Contains(t, out, "Maintain academic integrity")
}

func TestTranscriptCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "transcript", "S001")
	require.NoError(t, err)
	assert.Contains(t, out, "S001 JOHN DOE")
	assert.Contains(t, out, "4.00")
	assert.Contains(t, out, "DEAN'S LIST")
	assert.Contains(t, out, "Data Structures")
	assert.Contains(t, out, "in progress")
}

func TestTranscriptCmd_UnknownStudent(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "transcript", "S404")
	assert.ErrorIs(t, err, domain.ErrUnknownStudent)
}

func TestTranscriptCmd_RequiresArg(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "transcript")
	assert.Error(t, err)
}

func TestRosterCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "roster", "CS201")
	require.NoError(t, err)
	assert.Contains(t, out, "CS201 DATA STRUCTURES")
	assert.Contains(t, out, "Grace Hopper")
	assert.Contains(t, out, "S001")
	assert.Contains(t, out, "S002")
	assert.NotContains(t, out, "S003")

	_, err = executeCmd(t, testApp(t), "roster", "CS999")
	assert.ErrorIs(t, err, domain.ErrUnknownCourse)
}

func TestRegisterCmd_CourseFull(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "register", "S003", "CS201")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCourseFull)
	assert.Contains(t, err.Error(), "registering S003 for CS201")
}

func TestRegisterCmd_Success(t *testing.T) {
	path := writeDepartmentFile(t, mathDepartment)
	out, err := executeCmd(t, testApp(t), "register", "S10", "MA100", "--file", path, "--grade", "B")
	require.NoError(t, err)
	assert.Contains(t, out, "S10 registered for MA100")
	assert.Contains(t, out, "1/1")
	assert.Contains(t, out, "Kurt Goedel")
	assert.Contains(t, out, "3.00")
}

func TestRegisterCmd_Rejections(t *testing.T) {
	path := writeDepartmentFile(t, mathDepartment)
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"prerequisites", []string{"S10", "MA200"}, domain.ErrPrerequisitesNotMet},
		{"unmanaged", []string{"S12", "MA100"}, domain.ErrUnsupportedOperation},
		{"unknown course", []string{"S10", "MA999"}, domain.ErrUnknownCourse},
		{"unknown student", []string{"S99", "MA100"}, domain.ErrUnknownStudent},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"register", "--file", path}, tc.args...)
			_, err := executeCmd(t, testApp(t), args...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRegisterCmd_BadGrade(t *testing.T) {
	path := writeDepartmentFile(t, mathDepartment)
	_, err := executeCmd(t, testApp(t), "register", "S10", "MA100", "--file", path, "--grade", "Q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"--grade"`)
	assert.Contains(t, err.Error(), "invalid letter grade")
}

func TestRegisterCmd_MissingArgsNonInteractive(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "register", "S001")
	assert.ErrorIs(t, err, errRegistrationArgs)
}

func TestRegisterCmd_PromptsWhenInteractive(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	var prompted bool
	app.RunForm = func(*huh.Form) error {
		prompted = true
		return huh.ErrUserAborted
	}

	_, err := executeCmd(t, app, "register")
	assert.True(t, prompted)
	assert.ErrorIs(t, err, huh.ErrUserAborted)
}

func TestDemoCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "course is full")
	assert.Contains(t, out, "GPA & STATUS")
	assert.Contains(t, out, "CS101=A, CS201=IN_PROGRESS")
	assert.Contains(t, out, "CS101=B+, CS201=IN_PROGRESS")
	assert.Contains(t, out, "3.70")
	assert.Contains(t, out, "Ada Lovelace -> resp=[Teach courses, Research & publish, Supervise students, Service]")
	assert.Contains(t, out, "  workload=12 hrs/week")
	assert.Contains(t, out, "Sara Connor -> resp=[Attend classes, Complete assignments, Maintain academic integrity]")
	assert.Equal(t, 3, strings.Count(out, "hrs/week"))
}

func TestDemoCmd_IgnoresFileFlag(t *testing.T) {
	path := writeDepartmentFile(t, mathDepartment)
	out, err := executeCmd(t, testApp(t), "demo", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Ada Lovelace")
	assert.NotContains(t, out, "Noether")
}

func TestStudentAndCourseOptions(t *testing.T) {
	app := testApp(t)
	dept, err := app.load(t.Context(), writeDepartmentFile(t, mathDepartment))
	require.NoError(t, err)
	dir, err := dept.Directory(t.Context())
	require.NoError(t, err)

	students := studentOptions(dir.Students)
	require.Len(t, students, 2)
	assert.Equal(t, "S10", students[0].Value)
	assert.Contains(t, students[0].Key, "Kurt Goedel")

	courses := courseOptions(dir.Courses)
	require.Len(t, courses, 2)
	assert.Equal(t, "MA100", courses[0].Value)
	assert.Contains(t, courses[0].Key, "0/1 seats")
}
