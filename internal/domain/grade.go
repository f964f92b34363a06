package domain

import (
	"fmt"
	"math"
)

// Grade is a letter grade from the fixed vocabulary.
type Grade string

const (
	GradeA      Grade = "A"
	GradeAMinus Grade = "A-"
	GradeBPlus  Grade = "B+"
	GradeB      Grade = "B"
	GradeBMinus Grade = "B-"
	GradeCPlus  Grade = "C+"
	GradeC      Grade = "C"
	GradeD      Grade = "D"
	GradeF      Grade = "F"
)

// Grades returns the vocabulary from highest to lowest.
func Grades() []Grade {
	return []Grade{GradeA, GradeAMinus, GradeBPlus, GradeB, GradeBMinus, GradeCPlus, GradeC, GradeD, GradeF}
}

// Points returns the 4.0-scale weight of g. ok is false outside the vocabulary.
func (g Grade) Points() (points float64, ok bool) {
	switch g {
	case GradeA:
		return 4.0, true
	case GradeAMinus:
		return 3.7, true
	case GradeBPlus:
		return 3.3, true
	case GradeB:
		return 3.0, true
	case GradeBMinus:
		return 2.7, true
	case GradeCPlus:
		return 2.3, true
	case GradeC:
		return 2.0, true
	case GradeD:
		return 1.0, true
	case GradeF:
		return 0.0, true
	default:
		return 0, false
	}
}

func (g Grade) IsValid() bool {
	_, ok := g.Points()
	return ok
}

// ParseGrade accepts exactly one of the vocabulary letters.
func ParseGrade(letter string) (Grade, error) {
	g := Grade(letter)
	if !g.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidGrade, letter)
	}
	return g, nil
}

// AcademicStatus is derived from GPA.
type AcademicStatus string

const (
	StatusDeansList    AcademicStatus = "Dean's List"
	StatusGoodStanding AcademicStatus = "Good Standing"
	StatusProbation    AcademicStatus = "Probation"
)

const (
	DeansListThreshold = 3.7
	ProbationThreshold = 2.0
)

// StatusForGPA applies the inclusive thresholds: 3.7 is Dean's List and
// 2.0 is Good Standing.
func StatusForGPA(gpa float64) AcademicStatus {
	switch {
	case gpa >= DeansListThreshold:
		return StatusDeansList
	case gpa < ProbationThreshold:
		return StatusProbation
	default:
		return StatusGoodStanding
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
