package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/registrar/internal/cli/formatter"
	"github.com/alexanderramin/registrar/internal/service"
)

func newDemoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in Computer Science scenario",
		Long: `Loads the built-in department: three faculty, CS101 (3 seats) and
CS201 (2 seats, requires CS101). Three students take CS101 and two of them
continue to CS201. The command then shows that a third CS201 registration
is refused and prints every student's GPA and status.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			dept, err := app.load(ctx, "")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, formatter.Header("Registration"))
			if err := dept.Register(ctx, "S003", "CS201"); err != nil {
				fmt.Fprintf(out, "S003 -> CS201: %s\n", formatter.StyleRed.Render(err.Error()))
			} else {
				fmt.Fprintf(out, "S003 -> CS201: %s\n", formatter.StyleGreen.Render("registered"))
			}
			fmt.Fprintln(out)

			dir, err := dept.Directory(ctx)
			if err != nil {
				return err
			}
			if err := writeStandings(ctx, out, dept, dir); err != nil {
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.Header("Polymorphism"))
			fmt.Fprint(out, formatter.FormatPolymorphism(dir.People()))
			return nil
		},
	}
}

func writeStandings(ctx context.Context, out io.Writer, dept Department, dir *service.Directory) error {
	transcripts := make([]*service.Transcript, 0, len(dir.Students))
	for _, s := range dir.Students {
		if !s.Managed {
			continue
		}
		t, err := dept.Transcript(ctx, s.ID)
		if err != nil {
			return err
		}
		transcripts = append(transcripts, t)
	}
	fmt.Fprintln(out, formatter.Header("GPA & Status"))
	fmt.Fprint(out, formatter.FormatStandings(transcripts))
	return nil
}
