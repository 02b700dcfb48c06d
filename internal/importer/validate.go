package importer

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/koyomi/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	defaults, errs := validateDefaults(schema.Defaults)

	if len(schema.Tasks) == 0 {
		errs = append(errs, fmt.Errorf("tasks: at least one task is required"))
	}

	seen := make(map[taskKey]int, len(schema.Tasks))
	for i, t := range schema.Tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)
		data := createData(defaults, t)
		if err := domain.ValidateCreate(data); err != nil {
			errs = append(errs, prefixFieldErrors(prefix, err)...)
			continue
		}

		key := taskKey{title: data.Title, due: data.DueDate, start: data.StartTime}
		if first, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicates tasks[%d] (same title, due_date and start_time)", prefix, first))
			continue
		}
		seen[key] = i
	}

	return errs
}

type taskKey struct {
	title, due, start string
}

// validateDefaults reports invalid defaults and returns a copy holding only
// the valid ones, so one bad default is not repeated for every task.
func validateDefaults(d *DefaultsImport) (*DefaultsImport, []error) {
	if d == nil {
		return nil, nil
	}
	var errs []error
	valid := *d

	if d.DueDate != "" && !domain.IsValidDate(d.DueDate) {
		errs = append(errs, fmt.Errorf("defaults.due_date: invalid date format %q (expected YYYY-MM-DD)", d.DueDate))
		valid.DueDate = ""
	}
	if d.Status != "" && !domain.TaskStatus(d.Status).Valid() {
		errs = append(errs, fmt.Errorf("defaults.status: invalid value %q", d.Status))
		valid.Status = ""
	}
	if d.Priority != "" && !domain.TaskPriority(d.Priority).Valid() {
		errs = append(errs, fmt.Errorf("defaults.priority: invalid value %q", d.Priority))
		valid.Priority = ""
	}

	return &valid, errs
}

// prefixFieldErrors splits a domain.ValidationError into one error per
// field, each addressed by its path in the file.
func prefixFieldErrors(prefix string, err error) []error {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return []error{fmt.Errorf("%s: %w", prefix, err)}
	}
	out := make([]error, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		out = append(out, fmt.Errorf("%s.%s: %s", prefix, f.Field, f.Message))
	}
	return out
}
