package importer

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DepartmentFile is the top-level structure of a department import file.
// JSON files parse too, as a subset of YAML.
type DepartmentFile struct {
	Department  DepartmentImport   `yaml:"department"`
	Faculty     []FacultyImport    `yaml:"faculty" validate:"dive"`
	Staff       []StaffImport      `yaml:"staff,omitempty" validate:"dive"`
	Courses     []CourseImport     `yaml:"courses" validate:"dive"`
	Students    []StudentImport    `yaml:"students" validate:"dive"`
	Enrollments []EnrollmentImport `yaml:"enrollments,omitempty" validate:"dive"`
}

type DepartmentImport struct {
	Name string `yaml:"name" validate:"required"`
	Code string `yaml:"code,omitempty"`
}

type FacultyImport struct {
	ID    string `yaml:"id" validate:"required"`
	Name  string `yaml:"name" validate:"required"`
	Email string `yaml:"email" validate:"required,contains=@"`
	Rank  string `yaml:"rank" validate:"required,oneof=professor lecturer ta"`
}

type StaffImport struct {
	ID    string `yaml:"id" validate:"required"`
	Name  string `yaml:"name" validate:"required"`
	Email string `yaml:"email" validate:"required,contains=@"`
}

type CourseImport struct {
	Code          string   `yaml:"code" validate:"required"`
	Title         string   `yaml:"title" validate:"required"`
	Capacity      *int     `yaml:"capacity,omitempty" validate:"omitempty,gt=0"`
	Prerequisites []string `yaml:"prerequisites,omitempty" validate:"dive,required"`
	Instructor    string   `yaml:"instructor,omitempty"`
}

// StudentImport describes one student. A missing id is generated on import,
// which leaves the student unreachable from enrollments.
type StudentImport struct {
	ID             string             `yaml:"id,omitempty"`
	Name           string             `yaml:"name" validate:"required"`
	Email          string             `yaml:"email" validate:"required,contains=@"`
	Level          string             `yaml:"level,omitempty" validate:"omitempty,oneof=undergraduate graduate"`
	Managed        *bool              `yaml:"managed,omitempty"`
	MaxEnrollments *int               `yaml:"max_enrollments,omitempty" validate:"omitempty,gt=0"`
	GPAHistory     map[string]float64 `yaml:"gpa_history,omitempty" validate:"omitempty,dive,gte=0,lte=4"`
}

// IsManaged reports whether the student gets an academic record. Students
// are managed unless the file says otherwise.
func (s StudentImport) IsManaged() bool {
	return s.Managed == nil || *s.Managed
}

type EnrollmentImport struct {
	Student string `yaml:"student" validate:"required"`
	Course  string `yaml:"course" validate:"required"`
	Grade   string `yaml:"grade,omitempty" validate:"omitempty,oneof=A A- B+ B B- C+ C D F"`
}

//go:embed demo.yaml
var demoYAML []byte

// Demo returns the built-in Computer Science department.
func Demo() (*DepartmentFile, error) {
	return Parse(demoYAML)
}

// LoadFile reads and parses a department file.
func LoadFile(path string) (*DepartmentFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a department file. Unknown keys are rejected.
func Parse(data []byte) (*DepartmentFile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f DepartmentFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing department file: %w", err)
	}
	return &f, nil
}
