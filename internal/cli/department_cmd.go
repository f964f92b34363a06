package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/registrar/internal/cli/formatter"
)

type openFunc func(cmd *cobra.Command) (Department, error)

func newSummaryCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show courses, seats, instructors and students",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dept, err := open(cmd)
			if err != nil {
				return err
			}
			dir, err := dept.Directory(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDirectory(dir))
			return nil
		},
	}
}

func newRolesCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List the responsibilities of everyone in the department",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dept, err := open(cmd)
			if err != nil {
				return err
			}
			dir, err := dept.Directory(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoles(dir.People()))
			return nil
		},
	}
}

func newTranscriptCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "transcript <student-id>",
		Short: "Show a student's courses, GPA and academic status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dept, err := open(cmd)
			if err != nil {
				return err
			}
			t, err := dept.Transcript(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTranscript(t))
			return nil
		},
	}
}

func newRosterCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "roster <course-code>",
		Short: "Show the students enrolled in a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dept, err := open(cmd)
			if err != nil {
				return err
			}
			r, err := dept.Roster(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoster(r))
			return nil
		},
	}
}
