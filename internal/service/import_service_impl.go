package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/koyomi/internal/calendar"
	"github.com/alexanderramin/koyomi/internal/contract"
	"github.com/alexanderramin/koyomi/internal/db"
	"github.com/alexanderramin/koyomi/internal/importer"
	"github.com/alexanderramin/koyomi/internal/repository"
)

// Open export bounds. Due dates are canonical, so string order is date order.
const (
	minDate = "0001-01-01"
	maxDate = "9999-12-31"
)

type importService struct {
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	now      func() time.Time
	observer UseCaseObserver
}

func NewImportService(tasks repository.TaskRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		tasks:    tasks,
		uow:      uow,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportTasks(ctx context.Context, ownerID string, schema *importer.ImportSchema, dryRun bool) (res *contract.ImportResult, err error) {
	fields := map[string]any{"owner": ownerID, "dry_run": dryRun}
	done := observe(ctx, s.observer, "import-tasks", fields)
	defer func() { done(err) }()

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	data := importer.Convert(schema)
	res = &contract.ImportResult{Created: len(data), DryRun: dryRun}
	for _, d := range data {
		if res.First == "" || d.DueDate < res.First {
			res.First = d.DueDate
		}
		if d.DueDate > res.Last {
			res.Last = d.DueDate
		}
	}
	fields["tasks"] = len(data)
	if dryRun {
		return res, nil
	}

	now := s.now()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteTaskRepo(tx)
		for i, d := range data {
			if err := repo.Create(ctx, newTask(ownerID, d, now)); err != nil {
				return fmt.Errorf("creating task %d %q: %w", i, d.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importing tasks: %w", err)
	}
	return res, nil
}

func (s *importService) ExportTasks(ctx context.Context, ownerID, from, to string) (schema *importer.ImportSchema, err error) {
	done := observe(ctx, s.observer, "export-tasks", map[string]any{"owner": ownerID, "from": from, "to": to})
	defer func() { done(err) }()

	if from == "" {
		from = minDate
	}
	if to == "" {
		to = maxDate
	}
	for _, d := range []string{from, to} {
		if _, err := calendar.ParseDate(d, time.UTC); err != nil {
			return nil, fmt.Errorf("export range: %w", err)
		}
	}
	if to < from {
		return nil, fmt.Errorf("export range end %s before start %s", to, from)
	}

	tasks, err := s.tasks.ListByOwnerInDateRange(ctx, ownerID, from, to, "")
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return importer.FromTasks(tasks), nil
}

// formatValidationErrors joins every problem into one error, one per line.
func formatValidationErrors(errs []error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		b.WriteString("\n  - " + e.Error())
	}
	return fmt.Errorf("%s", b.String())
}
