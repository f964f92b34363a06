package importer

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/alexanderramin/registrar/internal/domain"
	"github.com/alexanderramin/registrar/internal/registry"
	"github.com/alexanderramin/registrar/internal/service"
)

var ErrInvalidFile = errors.New("invalid department file")

// Options carries the defaults for values a file leaves out.
type Options struct {
	DefaultCapacity int
	MaxEnrollments  int
}

func DefaultOptions() Options {
	return Options{
		DefaultCapacity: domain.DefaultCapacity,
		MaxEnrollments:  domain.DefaultMaxEnrollments,
	}
}

// Result summarizes an applied file.
type Result struct {
	// GeneratedIDs maps the index of each student imported without an id to
	// the id it was given.
	GeneratedIDs map[int]string
	Registered   int
	Graded       int
}

// StepError is a domain failure while replaying an enrollment entry.
type StepError struct {
	Index      int
	Enrollment EnrollmentImport
	Err        error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("enrollments[%d] (%s in %s): %v", e.Index, e.Enrollment.Student, e.Enrollment.Course, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Build validates f and returns a service hosting the department it describes.
func Build(ctx context.Context, f *DepartmentFile, opts Options, observers ...service.UseCaseObserver) (*service.Enrollment, *Result, error) {
	svc := service.NewEnrollment(registry.New(f.Department.Name), observers...)
	res, err := Apply(ctx, svc, f, opts)
	if err != nil {
		return nil, nil, err
	}
	return svc, res, nil
}

// Apply validates f and adds its people and courses to svc, then replays
// the enrollments in file order. It stops at the first failing enrollment
// and returns a *StepError; earlier steps stay applied.
func Apply(ctx context.Context, svc service.EnrollmentService, f *DepartmentFile, opts Options) (*Result, error) {
	if errs := ValidateSchema(f); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, errors.Join(errs...))
	}
	if opts.DefaultCapacity <= 0 {
		opts.DefaultCapacity = domain.DefaultCapacity
	}
	if opts.MaxEnrollments <= 0 {
		opts.MaxEnrollments = domain.DefaultMaxEnrollments
	}

	deptLabel := f.Department.Code
	if deptLabel == "" {
		deptLabel = f.Department.Name
	}
	for i, fi := range f.Faculty {
		member, err := domain.NewFacultyMember(domain.ValidRanks[fi.Rank], fi.ID, fi.Name, fi.Email, deptLabel)
		if err != nil {
			return nil, fmt.Errorf("faculty[%d]: %w", i, err)
		}
		if err := svc.AddFaculty(ctx, member); err != nil {
			return nil, err
		}
	}
	for i, si := range f.Staff {
		staff, err := domain.NewStaff(si.ID, si.Name, si.Email)
		if err != nil {
			return nil, fmt.Errorf("staff[%d]: %w", i, err)
		}
		if err := svc.AddStaff(ctx, staff); err != nil {
			return nil, err
		}
	}
	for i, ci := range f.Courses {
		course, err := newCourse(ci, opts)
		if err != nil {
			return nil, fmt.Errorf("courses[%d]: %w", i, err)
		}
		if err := svc.AddCourse(ctx, course); err != nil {
			return nil, err
		}
		if ci.Instructor != "" {
			if err := svc.AssignFaculty(ctx, ci.Instructor, ci.Code); err != nil {
				return nil, fmt.Errorf("courses[%d]: %w", i, err)
			}
		}
	}

	res := &Result{GeneratedIDs: make(map[int]string)}
	for i, si := range f.Students {
		if si.ID == "" {
			si.ID = uuid.NewString()
			res.GeneratedIDs[i] = si.ID
		}
		student, err := newStudent(si, opts)
		if err != nil {
			return nil, fmt.Errorf("students[%d]: %w", i, err)
		}
		if err := svc.AddStudent(ctx, student); err != nil {
			return nil, err
		}
		for _, sem := range slices.Sorted(maps.Keys(si.GPAHistory)) {
			if err := svc.RecordSemesterGPA(ctx, si.ID, sem, si.GPAHistory[sem]); err != nil {
				return nil, fmt.Errorf("students[%d].gpa_history[%s]: %w", i, sem, err)
			}
		}
	}

	for i, e := range f.Enrollments {
		if err := svc.Register(ctx, e.Student, e.Course); err != nil {
			return res, &StepError{Index: i, Enrollment: e, Err: err}
		}
		res.Registered++
		if e.Grade == "" {
			continue
		}
		if err := svc.RecordGrade(ctx, e.Student, e.Course, e.Grade); err != nil {
			return res, &StepError{Index: i, Enrollment: e, Err: err}
		}
		res.Graded++
	}
	return res, nil
}

func newCourse(ci CourseImport, opts Options) (*domain.Course, error) {
	capacity := opts.DefaultCapacity
	if ci.Capacity != nil {
		capacity = *ci.Capacity
	}
	return domain.NewCourse(ci.Code, ci.Title,
		domain.WithCapacity(capacity),
		domain.WithPrerequisites(ci.Prerequisites...),
	)
}

func newStudent(si StudentImport, opts Options) (domain.Enrollee, error) {
	graduate := si.Level == "graduate"
	if !si.IsManaged() {
		newFn := domain.NewUndergraduate
		if graduate {
			newFn = domain.NewGraduate
		}
		s, err := newFn(si.ID, si.Name, si.Email)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	limit := opts.MaxEnrollments
	if si.MaxEnrollments != nil {
		limit = *si.MaxEnrollments
	}
	newFn := domain.NewManagedUndergraduate
	if graduate {
		newFn = domain.NewManagedGraduate
	}
	s, err := newFn(si.ID, si.Name, si.Email, domain.WithMaxEnrollments(limit))
	if err != nil {
		return nil, err
	}
	return s, nil
}
