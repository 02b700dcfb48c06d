package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/koyomi/internal/domain"
)

// TaskRepo is the task store. Every method is scoped to one owner; a task
// that exists under another owner is reported as ErrNotFound.
type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id, ownerID string) (*domain.Task, error)
	ListByOwnerAndDate(ctx context.Context, ownerID, date string) ([]domain.Task, error)
	// ListByOwnerInDateRange returns tasks due in [start, end]. An empty
	// excludeStatus excludes nothing.
	ListByOwnerInDateRange(ctx context.Context, ownerID, start, end string, excludeStatus domain.TaskStatus) ([]domain.Task, error)
	Update(ctx context.Context, ownerID string, patch domain.UpdateTaskData, updatedAt time.Time) error
	Delete(ctx context.Context, id, ownerID string) error
	// ListIDsByPrefix returns up to limit ids starting with prefix.
	ListIDsByPrefix(ctx context.Context, ownerID, prefix string, limit int) ([]string, error)
}

type ProfileRepo interface {
	Get(ctx context.Context, id string) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}

type HolidayRepo interface {
	ListRange(ctx context.Context, from, to string) ([]domain.Holiday, error)
	ListAll(ctx context.Context) ([]domain.Holiday, error)
	Upsert(ctx context.Context, h domain.Holiday, source string) error
	DeleteRange(ctx context.Context, from, to string) (int64, error)
}
