package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/registrar/internal/importer"
	"github.com/alexanderramin/registrar/internal/logger"
	"github.com/alexanderramin/registrar/internal/service"
)

// Department is what commands need from a loaded department.
type Department interface {
	service.EnrollmentService
	service.RecordsService
}

// App holds the settings shared by every command. Each command loads its
// own department; nothing is written back.
type App struct {
	// DefaultFile is used when --file is not given. Empty means the
	// built-in demo department.
	DefaultFile string
	Options     importer.Options
	Observer    service.UseCaseObserver

	IsInteractive func() bool
	// RunForm runs an interactive form. Defaults to (*huh.Form).Run.
	RunForm func(*huh.Form) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runForm(f *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(f)
	}
	return f.Run()
}

// load builds the department described by path, or the demo when path is empty.
func (a *App) load(ctx context.Context, path string) (Department, error) {
	log := logger.WithFields(map[string]any{"file": path})
	var (
		f   *importer.DepartmentFile
		err error
	)
	if path == "" {
		f, err = importer.Demo()
	} else {
		f, err = importer.LoadFile(path)
	}
	if err != nil {
		log.Warn().Err(err).Msg("department file unreadable")
		return nil, err
	}

	svc, res, err := importer.Build(ctx, f, a.Options, a.Observer)
	if err != nil {
		log.Warn().Err(err).Msg("department file rejected")
		return nil, fmt.Errorf("loading department: %w", err)
	}
	log.Debug().
		Str("department", f.Department.Name).
		Int("registered", res.Registered).
		Int("graded", res.Graded).
		Int("generated_ids", len(res.GeneratedIDs)).
		Msg("department loaded")
	return svc, nil
}

// NewRootCmd creates the top-level "registrar" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var file string

	root := &cobra.Command{
		Use:           "registrar",
		Short:         "Academic records and course enrollment for a department",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&file, "file", app.DefaultFile, "Department file (YAML or JSON); empty for the built-in demo")

	open := func(cmd *cobra.Command) (Department, error) {
		return app.load(cmd.Context(), file)
	}

	root.AddCommand(
		newDemoCmd(app),
		newSummaryCmd(open),
		newRolesCmd(open),
		newTranscriptCmd(open),
		newRosterCmd(open),
		newRegisterCmd(app, open),
	)

	return root
}
