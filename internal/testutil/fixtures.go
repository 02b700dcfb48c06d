package testutil

import (
	"time"

	"github.com/alexanderramin/koyomi/internal/domain"
	"github.com/google/uuid"
)

// FixedNow is the reference instant used by fixtures: 2025-06-15 10:00 in
// Asia/Tokyo.
var FixedNow = time.Date(2025, 6, 15, 1, 0, 0, 0, time.UTC)

// Task options
type TaskOption func(*domain.Task)

func WithDueDate(d string) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = d
	}
}

func WithTimes(start, end string) TaskOption {
	return func(t *domain.Task) {
		t.StartTime = start
		t.EndTime = end
	}
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithPriority(p domain.TaskPriority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithDescription(d string) TaskOption {
	return func(t *domain.Task) {
		t.Description = d
	}
}

// WithCreatedAt sets both timestamps.
func WithCreatedAt(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = at
		t.UpdatedAt = at
	}
}

func NewTestTask(ownerID, title string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Title:     title,
		DueDate:   "2025-06-15",
		Status:    domain.StatusTodo,
		Priority:  domain.PriorityMedium,
		CreatedAt: FixedNow,
		UpdatedAt: FixedNow,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
