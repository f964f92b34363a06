package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every domain error matches exactly one of these with errors.Is.
var (
	ErrValidation          = errors.New("validation failed")
	ErrCapacity            = errors.New("capacity exceeded")
	ErrDuplicate           = errors.New("duplicate")
	ErrNotFound            = errors.New("not found")
	ErrPrerequisitesNotMet = errors.New("prerequisites not met")
	ErrUnsupported         = errors.New("unsupported operation")
)

// Error is a domain failure tagged with the entity, the operation and its kind.
type Error struct {
	Domain  string
	Op      string
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap exposes the kind so errors.Is(err, ErrCapacity) works on wrapped values.
func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(domain, op string, kind error, message string) *Error {
	return &Error{Domain: domain, Op: op, Kind: kind, Message: message}
}

// Identity errors
var (
	ErrInvalidID    = newError("person", "Validate", ErrValidation, "id must be a non-empty string")
	ErrInvalidName  = newError("person", "Validate", ErrValidation, "name must be a non-empty string")
	ErrInvalidEmail = newError("person", "Validate", ErrValidation, "email must contain '@'")
)

// Academic record errors
var (
	ErrDuplicateEnrollment = newError("record", "Enroll", ErrDuplicate, "already enrolled")
	ErrEnrollmentLimit     = newError("record", "Enroll", ErrCapacity, "enrollment limit reached")
	ErrNotEnrolled         = newError("record", "Lookup", ErrNotFound, "course not found in record")
	ErrInvalidGrade        = newError("record", "SetGrade", ErrValidation, "invalid letter grade")
	ErrGPAOutOfRange       = newError("record", "SetSemesterGPA", ErrValidation, "GPA must be between 0.0 and 4.0")
	ErrInvalidLimit        = newError("record", "Validate", ErrValidation, "max enrollments must be positive")
)

// Course errors
var (
	ErrCourseFull      = newError("course", "Enroll", ErrCapacity, "course is full")
	ErrInvalidCode     = newError("course", "Validate", ErrValidation, "course code must be a non-empty string")
	ErrInvalidCapacity = newError("course", "Validate", ErrValidation, "capacity must be positive")
)

// Registry errors
var (
	ErrUnknownCourse        = newError("department", "Lookup", ErrNotFound, "course not registered")
	ErrUnknownStudent       = newError("department", "Lookup", ErrNotFound, "student not registered")
	ErrUnknownFaculty       = newError("department", "Lookup", ErrNotFound, "faculty not in department")
	ErrUnsupportedOperation = newError("department", "Register", ErrUnsupported, "student does not support managed enrollment")
)

// PrerequisitesError lists the prerequisite codes a student has not completed.
type PrerequisitesError struct {
	CourseCode string
	Missing    []string
}

func (e *PrerequisitesError) Error() string {
	return fmt.Sprintf("missing prerequisites [%s] for %s", strings.Join(e.Missing, ", "), e.CourseCode)
}

func (e *PrerequisitesError) Unwrap() error {
	return ErrPrerequisitesNotMet
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound reports whether err is a lookup failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsCapacity reports whether err was caused by a full course or an enrollment limit.
func IsCapacity(err error) bool {
	return errors.Is(err, ErrCapacity)
}
