package cli

import (
	"fmt"

	"github.com/alexanderramin/koyomi/internal/cli/formatter"
	"github.com/alexanderramin/koyomi/internal/importer"
	"github.com/spf13/cobra"
)

func newTaskImportCmd(app *App) *cobra.Command {
	var (
		dryRun bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Create tasks from a JSON task file",
		Long: `Create tasks from a JSON task file. The whole file is validated first and
either every task is created or none is.

  {"version": 1,
   "defaults": {"due_date": "2025-06-16", "priority": "high"},
   "tasks": [{"title": "Standup", "start_time": "09:00", "end_time": "09:15"}]}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadImportSchema(args[0])
			if err != nil {
				return err
			}
			res, err := app.Import.ImportTasks(cmd.Context(), app.Owner, schema, dryRun)
			if err != nil {
				return err
			}
			return render(cmd, asJSON, res, func() string {
				verb := "✔ Imported"
				if res.DryRun {
					verb = "✔ Valid"
				}
				out := fmt.Sprintf("%s %s", formatter.StyleGreen.Render(verb),
					formatter.Bold(fmt.Sprintf("%d tasks", res.Created)))
				if res.Created > 0 {
					out += " " + formatter.Dim(fmt.Sprintf("due %s to %s", res.First, res.Last))
				}
				return out + "\n"
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the file without creating tasks")
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newTaskExportCmd(app *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print tasks as an importable JSON task file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if from != "" {
				if from, err = resolveDateArg(from, app.today()); err != nil {
					return fmt.Errorf("--from: %w", err)
				}
			}
			if to != "" {
				if to, err = resolveDateArg(to, app.today()); err != nil {
					return fmt.Errorf("--to: %w", err)
				}
			}
			schema, err := app.Import.ExportTasks(cmd.Context(), app.Owner, from, to)
			if err != nil {
				return err
			}
			return importer.Write(cmd.OutOrStdout(), schema)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First due date to include (default unbounded)")
	cmd.Flags().StringVar(&to, "to", "", "Last due date to include (default unbounded)")

	return cmd
}
