package importer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateSchema checks a department file before anything is built.
// Returns every problem found, in file order within each check.
func ValidateSchema(f *DepartmentFile) []error {
	var errs []error
	errs = append(errs, fieldErrors(f)...)

	people := make(map[string]string)
	claim := func(path, id string) {
		if id == "" {
			return
		}
		if prev, ok := people[id]; ok {
			errs = append(errs, fmt.Errorf("%s: id %q already used by %s", path, id, prev))
			return
		}
		people[id] = path
	}
	faculty := make(map[string]bool)
	for i, fac := range f.Faculty {
		claim(fmt.Sprintf("faculty[%d].id", i), fac.ID)
		faculty[fac.ID] = true
	}
	for i, s := range f.Staff {
		claim(fmt.Sprintf("staff[%d].id", i), s.ID)
	}
	students := make(map[string]StudentImport)
	for i, s := range f.Students {
		claim(fmt.Sprintf("students[%d].id", i), s.ID)
		if s.ID != "" {
			students[s.ID] = s
		}
		if !s.IsManaged() && (s.MaxEnrollments != nil || len(s.GPAHistory) > 0) {
			errs = append(errs, fmt.Errorf("students[%d]: max_enrollments and gpa_history need a managed student", i))
		}
	}

	courses := make(map[string]bool)
	for i, c := range f.Courses {
		if c.Code == "" {
			continue
		}
		if courses[c.Code] {
			errs = append(errs, fmt.Errorf("courses[%d].code: duplicate course %q", i, c.Code))
		}
		courses[c.Code] = true
	}
	for i, c := range f.Courses {
		if c.Instructor != "" && !faculty[c.Instructor] {
			errs = append(errs, fmt.Errorf("courses[%d].instructor: unknown faculty %q", i, c.Instructor))
		}
		for j, p := range c.Prerequisites {
			switch {
			case p == c.Code:
				errs = append(errs, fmt.Errorf("courses[%d].prerequisites[%d]: course cannot require itself", i, j))
			case p != "" && !courses[p]:
				errs = append(errs, fmt.Errorf("courses[%d].prerequisites[%d]: unknown course %q", i, j, p))
			}
		}
	}

	for i, e := range f.Enrollments {
		if e.Student != "" {
			s, ok := students[e.Student]
			switch {
			case !ok:
				errs = append(errs, fmt.Errorf("enrollments[%d].student: unknown student %q", i, e.Student))
			case !s.IsManaged():
				errs = append(errs, fmt.Errorf("enrollments[%d].student: %q is not a managed student", i, e.Student))
			}
		}
		if e.Course != "" && !courses[e.Course] {
			errs = append(errs, fmt.Errorf("enrollments[%d].course: unknown course %q", i, e.Course))
		}
	}

	return errs
}

func fieldErrors(f *DepartmentFile) []error {
	err := validate.Struct(f)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		if err != nil {
			return []error{err}
		}
		return nil
	}
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		// Drop the root type name from the namespace.
		_, path, _ := strings.Cut(fe.Namespace(), ".")
		errs = append(errs, fmt.Errorf("%s: %s", path, describe(fe)))
	}
	return errs
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "contains":
		return fmt.Sprintf("must contain %q", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte", "lte":
		return "must be between 0.0 and 4.0"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
