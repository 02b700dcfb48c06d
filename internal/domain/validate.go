package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxTitleLen       = 120
	MaxDescriptionLen = 2000
)

// Field names used in validation errors. They match the JSON field names.
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDueDate     = "due_date"
	FieldStartTime   = "start_time"
	FieldEndTime     = "end_time"
	FieldStatus      = "status"
	FieldPriority    = "priority"
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// FieldError is a validation failure scoped to one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationError collects every field error found in one input.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Error()
	}
	return "invalid task: " + strings.Join(parts, "; ")
}

// Field returns the first error recorded for the named field.
func (e *ValidationError) Field(name string) (FieldError, bool) {
	for _, f := range e.Fields {
		if f.Field == name {
			return f, true
		}
	}
	return FieldError{}, false
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// IsValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func IsValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsValidClock reports whether s is a zero-padded 24h HH:MM time.
func IsValidClock(s string) bool {
	if !timePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

// ValidateCreate checks a create request. Unset status and priority are
// accepted since they take defaults.
func ValidateCreate(d CreateTaskData) error {
	errs := &ValidationError{}

	validateTitle(errs, d.Title)
	validateDescription(errs, d.Description)
	if !IsValidDate(d.DueDate) {
		errs.add(FieldDueDate, "invalid date format %q (expected YYYY-MM-DD)", d.DueDate)
	}
	validateTimes(errs, d.StartTime, d.EndTime)
	if d.Status != "" && !d.Status.Valid() {
		errs.add(FieldStatus, "invalid value %q", d.Status)
	}
	if d.Priority != "" && !d.Priority.Valid() {
		errs.add(FieldPriority, "invalid value %q", d.Priority)
	}

	return errs.orNil()
}

// ValidateUpdate checks a partial update. Only the fields present in the
// patch are validated; the start/end ordering rule applies when both are
// present. Cross-checking against the stored task is the caller's job.
func ValidateUpdate(u UpdateTaskData) error {
	errs := &ValidationError{}

	if _, err := uuid.Parse(u.ID); err != nil {
		errs.add(FieldID, "invalid id %q", u.ID)
	}
	if u.Title != nil {
		validateTitle(errs, *u.Title)
	}
	if u.Description != nil {
		validateDescription(errs, *u.Description)
	}
	if u.DueDate != nil && !IsValidDate(*u.DueDate) {
		errs.add(FieldDueDate, "invalid date format %q (expected YYYY-MM-DD)", *u.DueDate)
	}
	validateTimes(errs,
		StringFromPtrWithDefault("", u.StartTime),
		StringFromPtrWithDefault("", u.EndTime))
	if u.Status != nil && !u.Status.Valid() {
		errs.add(FieldStatus, "invalid value %q", *u.Status)
	}
	if u.Priority != nil && !u.Priority.Valid() {
		errs.add(FieldPriority, "invalid value %q", *u.Priority)
	}

	return errs.orNil()
}

// ValidateTask checks a fully merged task, e.g. after applying a patch.
func ValidateTask(t *Task) error {
	errs := &ValidationError{}

	validateTitle(errs, t.Title)
	validateDescription(errs, t.Description)
	if !IsValidDate(t.DueDate) {
		errs.add(FieldDueDate, "invalid date format %q (expected YYYY-MM-DD)", t.DueDate)
	}
	validateTimes(errs, t.StartTime, t.EndTime)
	if !t.Status.Valid() {
		errs.add(FieldStatus, "invalid value %q", t.Status)
	}
	if !t.Priority.Valid() {
		errs.add(FieldPriority, "invalid value %q", t.Priority)
	}

	return errs.orNil()
}

func validateTitle(errs *ValidationError, title string) {
	n := utf8.RuneCountInString(title)
	if n == 0 {
		errs.add(FieldTitle, "is required")
	} else if n > MaxTitleLen {
		errs.add(FieldTitle, "must be at most %d characters (got %d)", MaxTitleLen, n)
	}
}

func validateDescription(errs *ValidationError, desc string) {
	if n := utf8.RuneCountInString(desc); n > MaxDescriptionLen {
		errs.add(FieldDescription, "must be at most %d characters (got %d)", MaxDescriptionLen, n)
	}
}

// validateTimes checks each time's format and, when both are well formed,
// that start <= end. Zero-padded HH:MM strings order chronologically.
func validateTimes(errs *ValidationError, start, end string) {
	startOK := start == "" || IsValidClock(start)
	endOK := end == "" || IsValidClock(end)
	if !startOK {
		errs.add(FieldStartTime, "invalid time format %q (expected HH:MM)", start)
	}
	if !endOK {
		errs.add(FieldEndTime, "invalid time format %q (expected HH:MM)", end)
	}
	if startOK && endOK && start != "" && end != "" && start > end {
		errs.add(FieldEndTime, "must not be before start_time (%s < %s)", end, start)
	}
}
