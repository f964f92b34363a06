package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/registrar/internal/cli/formatter"
)

var errRegistrationArgs = errors.New("student id and course code are required when not running interactively")

func newRegisterCmd(app *App, open openFunc) *cobra.Command {
	var grade gradeFlag

	cmd := &cobra.Command{
		Use:   "register [student-id] [course-code]",
		Short: "Try a registration against the loaded department",
		Long: `Registers a student for a course and reports the outcome. The department
is loaded fresh for every run, so nothing is saved. Missing arguments are
prompted for when the terminal is interactive.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var studentID, courseCode string
			if len(args) > 0 {
				studentID = args[0]
			}
			if len(args) > 1 {
				courseCode = args[1]
			}

			dept, err := open(cmd)
			if err != nil {
				return err
			}

			if studentID == "" || courseCode == "" {
				if !app.interactive() {
					return errRegistrationArgs
				}
				dir, err := dept.Directory(ctx)
				if err != nil {
					return err
				}
				if err := app.runForm(registrationForm(dir, &studentID, &courseCode)); err != nil {
					return err
				}
			}

			if err := dept.Register(ctx, studentID, courseCode); err != nil {
				return fmt.Errorf("registering %s for %s: %w", studentID, courseCode, err)
			}
			if grade.grade != "" {
				if err := dept.RecordGrade(ctx, studentID, courseCode, grade.String()); err != nil {
					return err
				}
			}

			roster, err := dept.Roster(ctx, courseCode)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s registered for %s\n\n",
				formatter.StyleGreen.Render("✔"), studentID, courseCode)
			fmt.Fprint(out, formatter.FormatRoster(roster))
			return nil
		},
	}

	cmd.Flags().Var(&grade, "grade", "Record this letter grade right after registering")

	return cmd
}
