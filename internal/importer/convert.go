package importer

import (
	"strings"

	"github.com/alexanderramin/koyomi/internal/domain"
)

// Convert returns create input for every task in the file with defaults
// applied. Call ValidateImportSchema first; Convert assumes the schema is
// valid.
func Convert(schema *ImportSchema) []domain.CreateTaskData {
	out := make([]domain.CreateTaskData, 0, len(schema.Tasks))
	for _, t := range schema.Tasks {
		out = append(out, createData(schema.Defaults, t).WithDefaults())
	}
	return out
}

func createData(defaults *DefaultsImport, t TaskImport) domain.CreateTaskData {
	d := domain.CreateTaskData{
		Title:       strings.TrimSpace(t.Title),
		Description: strings.TrimSpace(t.Description),
		DueDate:     strings.TrimSpace(t.DueDate),
		StartTime:   strings.TrimSpace(t.StartTime),
		EndTime:     strings.TrimSpace(t.EndTime),
		Status:      domain.TaskStatus(t.Status),
		Priority:    domain.TaskPriority(t.Priority),
	}
	if defaults == nil {
		return d
	}
	if d.DueDate == "" {
		d.DueDate = defaults.DueDate
	}
	if d.Status == "" {
		d.Status = domain.TaskStatus(defaults.Status)
	}
	if d.Priority == "" {
		d.Priority = domain.TaskPriority(defaults.Priority)
	}
	return d
}

// FromTasks builds a file holding tasks, in the given order. The result
// imports back into equivalent tasks with fresh ids.
func FromTasks(tasks []domain.Task) *ImportSchema {
	schema := &ImportSchema{Version: SchemaVersion, Tasks: make([]TaskImport, 0, len(tasks))}
	for _, t := range tasks {
		schema.Tasks = append(schema.Tasks, TaskImport{
			Title:       t.Title,
			Description: t.Description,
			DueDate:     t.DueDate,
			StartTime:   t.StartTime,
			EndTime:     t.EndTime,
			Status:      string(t.Status),
			Priority:    string(t.Priority),
		})
	}
	return schema
}
