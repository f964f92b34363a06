// Package registry holds the department: the owner of courses and faculty
// and the single place where enrollment rules are enforced.
package registry

import (
	"fmt"
	"maps"
	"slices"

	"github.com/alexanderramin/registrar/internal/domain"
)

// Department is not safe for concurrent use. service.Enrollment serializes
// access to it.
type Department struct {
	name     string
	faculty  map[string]domain.FacultyMember
	staff    map[string]*domain.Staff
	courses  map[string]*domain.Course
	students map[string]domain.Enrollee
}

func New(name string) *Department {
	return &Department{
		name:     name,
		faculty:  make(map[string]domain.FacultyMember),
		staff:    make(map[string]*domain.Staff),
		courses:  make(map[string]*domain.Course),
		students: make(map[string]domain.Enrollee),
	}
}

func (d *Department) Name() string { return d.name }

// AddCourse replaces any course with the same code.
func (d *Department) AddCourse(c *domain.Course) {
	d.courses[c.Code()] = c
}

// AddFaculty replaces any faculty member with the same id.
func (d *Department) AddFaculty(f domain.FacultyMember) {
	d.faculty[f.ID()] = f
}

func (d *Department) AddStaff(s *domain.Staff) {
	d.staff[s.ID()] = s
}

// AddStudent registers s by reference and replaces any student with the
// same id. The student's record is not copied.
func (d *Department) AddStudent(s domain.Enrollee) {
	d.students[s.ID()] = s
}

func (d *Department) AssignFacultyToCourse(facultyID, courseCode string) error {
	course, err := d.Course(courseCode)
	if err != nil {
		return err
	}
	if _, err := d.Faculty(facultyID); err != nil {
		return err
	}
	course.AssignFaculty(facultyID)
	return nil
}

// RegisterStudentForCourse enrolls a student in both the course roster and
// their record. All checks run before either side changes, so a failed
// registration leaves the department untouched.
//
// A prerequisite counts as satisfied once the record holds any grade for it,
// failing grades included.
func (d *Department) RegisterStudentForCourse(studentID, courseCode string) error {
	course, err := d.Course(courseCode)
	if err != nil {
		return err
	}
	rm, err := d.managedStudent(studentID)
	if err != nil {
		return err
	}

	record := rm.Record()
	if missing := missingPrerequisites(record, course); len(missing) > 0 {
		return &domain.PrerequisitesError{CourseCode: courseCode, Missing: missing}
	}
	if !course.HasSeat() {
		return fmt.Errorf("%w: %s", domain.ErrCourseFull, courseCode)
	}
	if err := record.CanEnroll(courseCode); err != nil {
		return err
	}

	if err := course.Enroll(studentID); err != nil {
		return err
	}
	if err := rm.EnrollCourse(courseCode); err != nil {
		course.Drop(studentID)
		return err
	}
	return nil
}

func missingPrerequisites(record *domain.AcademicRecord, course *domain.Course) []string {
	var missing []string
	for _, code := range course.Prerequisites() {
		if !record.IsCompleted(code) {
			missing = append(missing, code)
		}
	}
	return missing
}

// DropStudentFromCourse removes the course from the student's record and the
// student from the roster. Nothing changes when the record does not track
// the course.
func (d *Department) DropStudentFromCourse(studentID, courseCode string) error {
	course, err := d.Course(courseCode)
	if err != nil {
		return err
	}
	rm, err := d.managedStudent(studentID)
	if err != nil {
		return err
	}
	if err := rm.DropCourse(courseCode); err != nil {
		return err
	}
	course.Drop(studentID)
	return nil
}

func (d *Department) RecordGrade(studentID, courseCode, letter string) error {
	rm, err := d.managedStudent(studentID)
	if err != nil {
		return err
	}
	return rm.Record().SetGrade(courseCode, letter)
}

func (d *Department) RecordSemesterGPA(studentID, semester string, gpa float64) error {
	rm, err := d.managedStudent(studentID)
	if err != nil {
		return err
	}
	return rm.Record().SetSemesterGPA(semester, gpa)
}

func (d *Department) managedStudent(studentID string) (domain.RecordManager, error) {
	s, err := d.Student(studentID)
	if err != nil {
		return nil, err
	}
	rm, ok := s.(domain.RecordManager)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedOperation, studentID)
	}
	return rm, nil
}

func (d *Department) Course(code string) (*domain.Course, error) {
	c, ok := d.courses[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCourse, code)
	}
	return c, nil
}

func (d *Department) Student(id string) (domain.Enrollee, error) {
	s, ok := d.students[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownStudent, id)
	}
	return s, nil
}

func (d *Department) Faculty(id string) (domain.FacultyMember, error) {
	f, ok := d.faculty[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownFaculty, id)
	}
	return f, nil
}

// CourseInstructor returns the faculty member assigned to the course, if the
// course exists and its instructor is still in the department.
func (d *Department) CourseInstructor(code string) (domain.FacultyMember, bool) {
	c, ok := d.courses[code]
	if !ok {
		return nil, false
	}
	id, ok := c.AssignedFaculty()
	if !ok {
		return nil, false
	}
	f, ok := d.faculty[id]
	return f, ok
}

// Courses returns every course ordered by code.
func (d *Department) Courses() []*domain.Course {
	return sortedValues(d.courses)
}

// Students returns every student ordered by id.
func (d *Department) Students() []domain.Enrollee {
	return sortedValues(d.students)
}

// FacultyMembers returns every faculty member ordered by id.
func (d *Department) FacultyMembers() []domain.FacultyMember {
	return sortedValues(d.faculty)
}

func (d *Department) StaffMembers() []*domain.Staff {
	return sortedValues(d.staff)
}

// People returns staff, faculty and students, each group ordered by id.
func (d *Department) People() []domain.Person {
	people := make([]domain.Person, 0, len(d.staff)+len(d.faculty)+len(d.students))
	for _, s := range d.StaffMembers() {
		people = append(people, s)
	}
	for _, f := range d.FacultyMembers() {
		people = append(people, f)
	}
	for _, s := range d.Students() {
		people = append(people, s)
	}
	return people
}

func sortedValues[V any](m map[string]V) []V {
	out := make([]V, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		out = append(out, m[k])
	}
	return out
}
