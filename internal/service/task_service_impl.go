package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/koyomi/internal/agenda"
	"github.com/alexanderramin/koyomi/internal/domain"
	"github.com/alexanderramin/koyomi/internal/repository"
	"github.com/google/uuid"
)

// ErrAmbiguousID is returned by Resolve when a prefix matches several tasks.
var ErrAmbiguousID = errors.New("ambiguous task id")

// minPrefixLen is the shortest prefix Resolve accepts.
const minPrefixLen = 4

type taskService struct {
	tasks    repository.TaskRepo
	now      func() time.Time
	observer UseCaseObserver
}

func NewTaskService(tasks repository.TaskRepo, observers ...UseCaseObserver) TaskService {
	return &taskService{
		tasks:    tasks,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *taskService) Create(ctx context.Context, ownerID string, data domain.CreateTaskData) (task *domain.Task, err error) {
	done := observe(ctx, s.observer, "create-task", map[string]any{"due_date": data.DueDate})
	defer func() { done(err) }()

	if err = domain.ValidateCreate(data); err != nil {
		return nil, err
	}
	task = newTask(ownerID, data, s.now())
	if err = s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// newTask builds a task with a fresh id from validated create input.
func newTask(ownerID string, data domain.CreateTaskData, now time.Time) *domain.Task {
	data = data.WithDefaults()
	now = now.UTC()
	return &domain.Task{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Title:       data.Title,
		Description: data.Description,
		DueDate:     data.DueDate,
		StartTime:   data.StartTime,
		EndTime:     data.EndTime,
		Status:      data.Status,
		Priority:    data.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Update validates the patch on its own and again merged with the stored
// task, so a patch that sets only start_time is still checked against the
// stored end_time.
func (s *taskService) Update(ctx context.Context, ownerID string, patch domain.UpdateTaskData) (task *domain.Task, err error) {
	done := observe(ctx, s.observer, "update-task", map[string]any{"task_id": patch.ID})
	defer func() { done(err) }()

	if err = domain.ValidateUpdate(patch); err != nil {
		return nil, err
	}
	task, err = s.tasks.GetByID(ctx, patch.ID, ownerID)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return task, nil
	}

	now := s.now().UTC()
	patch.ApplyTo(task, now)
	if err = domain.ValidateTask(task); err != nil {
		return nil, err
	}
	if err = s.tasks.Update(ctx, ownerID, patch, now); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, ownerID, id string) (err error) {
	done := observe(ctx, s.observer, "delete-task", map[string]any{"task_id": id})
	defer func() { done(err) }()

	return s.tasks.Delete(ctx, id, ownerID)
}

// SetDone toggles completion: done marks the task done, !done reopens it as
// todo.
func (s *taskService) SetDone(ctx context.Context, ownerID, id string, done bool) (*domain.Task, error) {
	status := domain.StatusTodo
	if done {
		status = domain.StatusDone
	}
	return s.Update(ctx, ownerID, domain.UpdateTaskData{ID: id, Status: &status})
}

func (s *taskService) Get(ctx context.Context, ownerID, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id, ownerID)
}

func (s *taskService) Resolve(ctx context.Context, ownerID, ref string) (string, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return "", fmt.Errorf("task ID is required")
	}
	if len(ref) < minPrefixLen {
		return "", fmt.Errorf("task ID prefix %q is too short (need at least %d characters)", ref, minPrefixLen)
	}

	ids, err := s.tasks.ListIDsByPrefix(ctx, ownerID, ref, 2)
	if err != nil {
		return "", err
	}
	switch len(ids) {
	case 0:
		return "", fmt.Errorf("task %q: %w", ref, repository.ErrNotFound)
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q: %w", ref, ErrAmbiguousID)
	}
}

// ListDay returns the tasks due on date in day order.
func (s *taskService) ListDay(ctx context.Context, ownerID, date string) ([]domain.Task, error) {
	if !domain.IsValidDate(date) {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{{
			Field:   domain.FieldDueDate,
			Message: fmt.Sprintf("invalid date format %q (expected YYYY-MM-DD)", date),
		}}}
	}
	tasks, err := s.tasks.ListByOwnerAndDate(ctx, ownerID, date)
	if err != nil {
		return nil, err
	}
	return agenda.SelectDayTasks(tasks, date), nil
}
