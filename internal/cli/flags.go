package cli

import (
	"github.com/spf13/pflag"

	"github.com/alexanderramin/registrar/internal/domain"
)

// gradeFlag rejects unknown letters while flags are parsed, before any
// department is loaded.
type gradeFlag struct {
	grade domain.Grade
}

var _ pflag.Value = (*gradeFlag)(nil)

func (g *gradeFlag) String() string { return string(g.grade) }

func (g *gradeFlag) Set(s string) error {
	parsed, err := domain.ParseGrade(s)
	if err != nil {
		return err
	}
	g.grade = parsed
	return nil
}

func (g *gradeFlag) Type() string { return "grade" }
