package service

import (
	"context"

	"github.com/alexanderramin/koyomi/internal/contract"
	"github.com/alexanderramin/koyomi/internal/domain"
	"github.com/alexanderramin/koyomi/internal/holiday"
	"github.com/alexanderramin/koyomi/internal/importer"
)

type TaskService interface {
	Create(ctx context.Context, ownerID string, data domain.CreateTaskData) (*domain.Task, error)
	Update(ctx context.Context, ownerID string, patch domain.UpdateTaskData) (*domain.Task, error)
	Delete(ctx context.Context, ownerID, id string) error
	SetDone(ctx context.Context, ownerID, id string, done bool) (*domain.Task, error)
	Get(ctx context.Context, ownerID, id string) (*domain.Task, error)
	// Resolve expands a full id or a unique id prefix to the full id.
	Resolve(ctx context.Context, ownerID, ref string) (string, error)
	ListDay(ctx context.Context, ownerID, date string) ([]domain.Task, error)
}

// ImportService moves tasks between the store and task files.
type ImportService interface {
	// ImportTasks validates the whole file and creates every task in one
	// transaction. With dryRun nothing is written.
	ImportTasks(ctx context.Context, ownerID string, schema *importer.ImportSchema, dryRun bool) (*contract.ImportResult, error)
	// ExportTasks returns the owner's tasks due in [from, to]; empty bounds
	// are open.
	ExportTasks(ctx context.Context, ownerID, from, to string) (*importer.ImportSchema, error)
}

type CalendarService interface {
	MonthView(ctx context.Context, req contract.MonthViewRequest) (*contract.MonthViewResponse, error)
	DayView(ctx context.Context, req contract.DayViewRequest) (*contract.DayViewResponse, error)
	Upcoming(ctx context.Context, req contract.UpcomingRequest) (*contract.UpcomingResponse, error)
}

// HolidaySource fetches holidays dated in [from, to] from outside the app.
type HolidaySource interface {
	Fetch(ctx context.Context, from, to string) (*holiday.Table, error)
}

type HolidayService interface {
	// Lookup returns the effective table: fallback entries overlaid with
	// the stored ones.
	Lookup(ctx context.Context) (*holiday.Table, error)
	// List returns the effective holidays of one year, or all of them when
	// year is 0.
	List(ctx context.Context, year int) ([]domain.Holiday, error)
	Import(ctx context.Context, t *holiday.Table, source string) (int, error)
	Sync(ctx context.Context, src HolidaySource, from, to string) (*contract.HolidaySyncResult, error)
}

type ProfileService interface {
	Ensure(ctx context.Context, id string) (*domain.Profile, error)
	Get(ctx context.Context, id string) (*domain.Profile, error)
	SetDisplayName(ctx context.Context, id, name string) (*domain.Profile, error)
}
