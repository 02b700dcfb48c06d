package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/koyomi/internal/cli/formatter"
	"github.com/alexanderramin/koyomi/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

func successLine(verb, title string) string {
	return fmt.Sprintf("%s %s", formatter.StyleGreen.Render("✔ "+verb), formatter.Bold(title))
}

func errorLine(err error) string {
	return formatter.StyleRed.Render("Error: " + err.Error())
}

// execAddTask pushes the task form prefilled with due and creates the task
// on submit.
func execAddTask(state *SharedState, due string) tea.Cmd {
	fields := newTaskFormFields(due)
	form := taskForm(fields, false)
	return pushView(newWizardView(state, "New Task", form, func() tea.Cmd {
		return func() tea.Msg {
			app := state.App
			task, err := app.Tasks.Create(context.Background(), app.Owner, fields.createData())
			if err != nil {
				return flashMsg{text: errorLine(err)}
			}
			return flashMsg{text: successLine("Created", task.Title)}
		}
	}))
}

// execEditTask pushes the task form filled from t and applies the changed
// fields on submit.
func execEditTask(state *SharedState, t domain.Task) tea.Cmd {
	orig := t
	fields := taskFormFieldsFrom(&orig)
	form := taskForm(fields, true)
	return pushView(newWizardView(state, "Edit Task", form, func() tea.Cmd {
		return func() tea.Msg {
			patch := fields.patchFrom(&orig)
			if patch.IsEmpty() {
				return flashMsg{text: formatter.Dim("No changes.")}
			}
			app := state.App
			task, err := app.Tasks.Update(context.Background(), app.Owner, patch)
			if err != nil {
				return flashMsg{text: errorLine(err)}
			}
			return flashMsg{text: successLine("Updated", task.Title)}
		}
	}))
}

// execToggleDone flips a task between done and todo, then refreshes.
func execToggleDone(state *SharedState, t domain.Task) tea.Cmd {
	app := state.App
	id, done := t.ID, !t.IsDone()
	return func() tea.Msg {
		task, err := app.Tasks.SetDone(context.Background(), app.Owner, id, done)
		if err != nil {
			return flashMsg{text: errorLine(err)}
		}
		verb := "Completed"
		if !done {
			verb = "Reopened"
		}
		return tea.BatchMsg{
			flash(successLine(verb, task.Title)),
			func() tea.Msg { return refreshViewMsg{} },
		}
	}
}

// execConfirmDelete pushes a confirmation wizard and deletes the task if
// confirmed.
func execConfirmDelete(state *SharedState, t domain.Task) tea.Cmd {
	var confirmed bool
	form := wizardConfirm(fmt.Sprintf("Delete %q?", t.Title), &confirmed)
	id, title := t.ID, t.Title
	return pushView(newWizardView(state, "Confirm Delete", form, func() tea.Cmd {
		if !confirmed {
			return flash(formatter.Dim("Cancelled."))
		}
		return func() tea.Msg {
			app := state.App
			if err := app.Tasks.Delete(context.Background(), app.Owner, id); err != nil {
				return flashMsg{text: errorLine(err)}
			}
			return flashMsg{text: successLine("Deleted", title)}
		}
	}))
}
