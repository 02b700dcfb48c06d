package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/koyomi/internal/cli/formatter"
	"github.com/alexanderramin/koyomi/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// koyomiHuhTheme returns a custom huh theme using the Gruvbox palette.
func koyomiHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateRequiredDate accepts a YYYY-MM-DD date.
func validateRequiredDate(s string) error {
	if !domain.IsValidDate(strings.TrimSpace(s)) {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateOptionalClock accepts empty or a zero-padded HH:MM time.
func validateOptionalClock(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || domain.IsValidClock(s) {
		return nil
	}
	return fmt.Errorf("use HH:MM (24h), e.g. 09:30")
}

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("title is required")
	}
	if len([]rune(s)) > domain.MaxTitleLen {
		return fmt.Errorf("title must be at most %d characters", domain.MaxTitleLen)
	}
	return nil
}

// taskFormFields holds form-bound values for the task add/edit forms.
type taskFormFields struct {
	title    string
	desc     string
	due      string
	start    string
	end      string
	priority domain.TaskPriority
	status   domain.TaskStatus
}

func newTaskFormFields(due string) *taskFormFields {
	return &taskFormFields{
		due:      due,
		priority: domain.PriorityMedium,
		status:   domain.StatusTodo,
	}
}

func taskFormFieldsFrom(t *domain.Task) *taskFormFields {
	return &taskFormFields{
		title:    t.Title,
		desc:     t.Description,
		due:      t.DueDate,
		start:    t.StartTime,
		end:      t.EndTime,
		priority: t.Priority,
		status:   t.Status,
	}
}

// createData converts the form values into create input.
func (f *taskFormFields) createData() domain.CreateTaskData {
	return domain.CreateTaskData{
		Title:       strings.TrimSpace(f.title),
		Description: strings.TrimSpace(f.desc),
		DueDate:     strings.TrimSpace(f.due),
		StartTime:   strings.TrimSpace(f.start),
		EndTime:     strings.TrimSpace(f.end),
		Status:      f.status,
		Priority:    f.priority,
	}
}

// patchFrom returns a patch holding only the values that differ from orig.
func (f *taskFormFields) patchFrom(orig *domain.Task) domain.UpdateTaskData {
	patch := domain.UpdateTaskData{ID: orig.ID}
	d := f.createData()
	if d.Title != orig.Title {
		patch.Title = &d.Title
	}
	if d.Description != orig.Description {
		patch.Description = &d.Description
	}
	if d.DueDate != orig.DueDate {
		patch.DueDate = &d.DueDate
	}
	if d.StartTime != orig.StartTime {
		patch.StartTime = &d.StartTime
	}
	if d.EndTime != orig.EndTime {
		patch.EndTime = &d.EndTime
	}
	if d.Priority != orig.Priority {
		patch.Priority = &d.Priority
	}
	if d.Status != orig.Status {
		patch.Status = &d.Status
	}
	return patch
}

func priorityOptions() []huh.Option[domain.TaskPriority] {
	return []huh.Option[domain.TaskPriority]{
		huh.NewOption("High", domain.PriorityHigh),
		huh.NewOption("Medium", domain.PriorityMedium),
		huh.NewOption("Low", domain.PriorityLow),
	}
}

func statusOptions() []huh.Option[domain.TaskStatus] {
	opts := make([]huh.Option[domain.TaskStatus], 0, len(domain.ValidTaskStatuses))
	for _, s := range domain.ValidTaskStatuses {
		opts = append(opts, huh.NewOption(formatter.StatusLabel(s), s))
	}
	return opts
}

// taskForm builds the add/edit form. withStatus adds the status selector,
// which only matters when editing.
func taskForm(f *taskFormFields, withStatus bool) *huh.Form {
	details := []huh.Field{
		huh.NewInput().
			Title("Title").
			Value(&f.title).
			Validate(validateTitle),
		huh.NewText().
			Title("Description (optional)").
			CharLimit(domain.MaxDescriptionLen).
			Value(&f.desc),
	}

	schedule := []huh.Field{
		huh.NewInput().
			Title("Due Date (YYYY-MM-DD)").
			Placeholder(f.due).
			Value(&f.due).
			Validate(validateRequiredDate),
		huh.NewInput().
			Title("Start (HH:MM, blank for none)").
			Placeholder("09:00").
			Value(&f.start).
			Validate(validateOptionalClock),
		huh.NewInput().
			Title("End (HH:MM, blank for none)").
			Placeholder("10:00").
			Value(&f.end).
			Validate(func(s string) error {
				if err := validateOptionalClock(s); err != nil {
					return err
				}
				start, end := strings.TrimSpace(f.start), strings.TrimSpace(s)
				if start != "" && end != "" && end < start {
					return fmt.Errorf("end must not be before start")
				}
				return nil
			}),
	}

	meta := []huh.Field{
		huh.NewSelect[domain.TaskPriority]().
			Title("Priority").
			Options(priorityOptions()...).
			Value(&f.priority),
	}
	if withStatus {
		meta = append(meta, huh.NewSelect[domain.TaskStatus]().
			Title("Status").
			Options(statusOptions()...).
			Value(&f.status))
	}

	return huh.NewForm(
		huh.NewGroup(details...),
		huh.NewGroup(schedule...),
		huh.NewGroup(meta...),
	).WithTheme(koyomiHuhTheme()).WithShowHelp(false)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(koyomiHuhTheme()).WithShowHelp(false)
}
