package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/koyomi/internal/cli/formatter"
	"github.com/alexanderramin/koyomi/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskEditCmd(app),
		newTaskShowCmd(app),
		newTaskDoneCmd(app, true),
		newTaskDoneCmd(app, false),
		newTaskRemoveCmd(app),
		newTaskImportCmd(app),
		newTaskExportCmd(app),
	)

	return cmd
}

func printTaskResult(w io.Writer, verb string, t *domain.Task) {
	fmt.Fprintf(w, "%s %s %s %s %s\n",
		formatter.StyleGreen.Render("✔ "+verb),
		formatter.Bold(t.Title),
		formatter.TruncID(t.ID),
		formatter.Dim("on"),
		formatter.LongDate(t.DueDate))
}

func newTaskAddCmd(app *App) *cobra.Command {
	var (
		due, start, end, desc string
		priority              domain.TaskPriority
		status                domain.TaskStatus
		interactive           bool
	)

	cmd := &cobra.Command{
		Use:   "add [TITLE...]",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			today := app.today()
			if due == "" {
				due = today
			} else {
				var err error
				if due, err = resolveDateArg(due, today); err != nil {
					return err
				}
			}

			data := domain.CreateTaskData{
				Title:       strings.TrimSpace(strings.Join(args, " ")),
				Description: desc,
				DueDate:     due,
				StartTime:   start,
				EndTime:     end,
				Status:      status,
				Priority:    priority,
			}

			if interactive {
				if !app.interactive() {
					return fmt.Errorf("--interactive needs a terminal")
				}
				fields := newTaskFormFields(due)
				fields.title, fields.desc, fields.start, fields.end = data.Title, desc, start, end
				if priority != "" {
					fields.priority = priority
				}
				if err := taskForm(fields, false).Run(); err != nil {
					return err
				}
				data = fields.createData()
			}

			task, err := app.Tasks.Create(cmd.Context(), app.Owner, data)
			if err != nil {
				return err
			}
			printTaskResult(cmd.OutOrStdout(), "Created", task)
			return nil
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD, today, tomorrow; default today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().Var(&priorityValue{priority: &priority}, "priority", "Priority (low, medium, high; default medium)")
	cmd.Flags().Var(&statusValue{status: &status}, "status", "Status (todo, in_progress, done; default todo)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill the task in a form")

	return cmd
}

func newTaskEditCmd(app *App) *cobra.Command {
	var (
		title, due, start, end, desc string
		priority                     domain.TaskPriority
		status                       domain.TaskStatus
	)

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change fields of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := app.Tasks.Resolve(ctx, app.Owner, args[0])
			if err != nil {
				return err
			}

			patch := domain.UpdateTaskData{ID: id}
			flags := cmd.Flags()
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("desc") {
				patch.Description = &desc
			}
			if flags.Changed("due") {
				resolved, err := resolveDateArg(due, app.today())
				if err != nil {
					return err
				}
				patch.DueDate = &resolved
			}
			if flags.Changed("start") {
				patch.StartTime = &start
			}
			if flags.Changed("end") {
				patch.EndTime = &end
			}
			if flags.Changed("priority") {
				patch.Priority = &priority
			}
			if flags.Changed("status") {
				patch.Status = &status
			}
			if patch.IsEmpty() {
				return fmt.Errorf("nothing to change (use --title, --due, --start, --end, --desc, --priority or --status)")
			}

			task, err := app.Tasks.Update(ctx, app.Owner, patch)
			if err != nil {
				return err
			}
			printTaskResult(cmd.OutOrStdout(), "Updated", task)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&due, "due", "", "New due date")
	cmd.Flags().StringVar(&start, "start", "", "New start time (empty clears)")
	cmd.Flags().StringVar(&end, "end", "", "New end time (empty clears)")
	cmd.Flags().StringVar(&desc, "desc", "", "New description (empty clears)")
	cmd.Flags().Var(&priorityValue{priority: &priority}, "priority", "New priority")
	cmd.Flags().Var(&statusValue{status: &status}, "status", "New status")

	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := app.Tasks.Resolve(ctx, app.Owner, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.Get(ctx, app.Owner, id)
			if err != nil {
				return err
			}
			return render(cmd, asJSON, task, func() string {
				return formatter.FormatTask(task) + "\n"
			})
		},
	}

	addJSONFlag(cmd, &asJSON)

	return cmd
}

// newTaskDoneCmd builds "task done" (done=true) and "task undo".
func newTaskDoneCmd(app *App, done bool) *cobra.Command {
	use, short, verb := "done ID", "Mark a task done", "Completed"
	if !done {
		use, short, verb = "undo ID", "Reopen a completed task", "Reopened"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := app.Tasks.Resolve(ctx, app.Owner, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.SetDone(ctx, app.Owner, id, done)
			if err != nil {
				return err
			}
			printTaskResult(cmd.OutOrStdout(), verb, task)
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := app.Tasks.Resolve(ctx, app.Owner, args[0])
			if err != nil {
				return err
			}
			task, err := app.Tasks.Get(ctx, app.Owner, id)
			if err != nil {
				return err
			}

			if !yes {
				if !app.interactive() {
					return fmt.Errorf("refusing to delete %q without --yes", task.Title)
				}
				var confirmed bool
				if err := wizardConfirm(fmt.Sprintf("Delete %q?", task.Title), &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			if err := app.Tasks.Delete(ctx, app.Owner, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.StyleGreen.Render("✔ Deleted"), formatter.Bold(task.Title))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}
