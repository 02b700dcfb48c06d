package domain

import "time"

// Task is a single dated to-do owned by one profile.
//
// DueDate is a calendar date (YYYY-MM-DD) in the reference timezone.
// StartTime and EndTime are optional zero-padded HH:MM strings; the empty
// string means unset.
type Task struct {
	ID          string       `json:"id"`
	OwnerID     string       `json:"owner_id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	DueDate     string       `json:"due_date"`
	StartTime   string       `json:"start_time,omitempty"`
	EndTime     string       `json:"end_time,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// HasStartTime reports whether the task is scheduled at a time of day.
func (t *Task) HasStartTime() bool {
	return t.StartTime != ""
}

// IsDone reports whether the task is completed.
func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}

// CreateTaskData is the input accepted when creating a task.
// Zero Status and Priority take their defaults (todo, medium).
type CreateTaskData struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	DueDate     string       `json:"due_date"`
	StartTime   string       `json:"start_time,omitempty"`
	EndTime     string       `json:"end_time,omitempty"`
	Status      TaskStatus   `json:"status,omitempty"`
	Priority    TaskPriority `json:"priority,omitempty"`
}

// WithDefaults returns a copy with unset status and priority filled in.
func (d CreateTaskData) WithDefaults() CreateTaskData {
	if d.Status == "" {
		d.Status = StatusTodo
	}
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}
	return d
}

// UpdateTaskData is a partial update. Nil fields are left unchanged; a
// pointer to "" clears an optional text field (description, times).
type UpdateTaskData struct {
	ID          string        `json:"id"`
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	DueDate     *string       `json:"due_date,omitempty"`
	StartTime   *string       `json:"start_time,omitempty"`
	EndTime     *string       `json:"end_time,omitempty"`
	Status      *TaskStatus   `json:"status,omitempty"`
	Priority    *TaskPriority `json:"priority,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (u UpdateTaskData) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.DueDate == nil &&
		u.StartTime == nil && u.EndTime == nil && u.Status == nil && u.Priority == nil
}

// ApplyTo copies the set fields of the patch onto t and stamps UpdatedAt.
func (u UpdateTaskData) ApplyTo(t *Task, now time.Time) {
	t.Title = StringFromPtrWithDefault(t.Title, u.Title)
	t.Description = StringFromPtrWithDefault(t.Description, u.Description)
	t.DueDate = StringFromPtrWithDefault(t.DueDate, u.DueDate)
	t.StartTime = StringFromPtrWithDefault(t.StartTime, u.StartTime)
	t.EndTime = StringFromPtrWithDefault(t.EndTime, u.EndTime)
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	t.UpdatedAt = now
}
