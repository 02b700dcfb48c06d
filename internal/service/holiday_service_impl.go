package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/koyomi/internal/calendar"
	"github.com/alexanderramin/koyomi/internal/contract"
	"github.com/alexanderramin/koyomi/internal/db"
	"github.com/alexanderramin/koyomi/internal/domain"
	"github.com/alexanderramin/koyomi/internal/holiday"
	"github.com/alexanderramin/koyomi/internal/repository"
)

// Holiday sources recorded alongside stored entries.
const (
	SourceFile   = "file"
	SourceGoogle = "google"
)

type holidayService struct {
	holidays repository.HolidayRepo
	uow      db.UnitOfWork
	fallback *holiday.Table
	observer UseCaseObserver
}

// NewHolidayService serves stored holidays layered over fallback, which is
// usually the bundled table optionally merged with a user file.
func NewHolidayService(
	holidays repository.HolidayRepo,
	uow db.UnitOfWork,
	fallback *holiday.Table,
	observers ...UseCaseObserver,
) HolidayService {
	return &holidayService{
		holidays: holidays,
		uow:      uow,
		fallback: fallback,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *holidayService) Lookup(ctx context.Context) (*holiday.Table, error) {
	stored, err := s.holidays.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.fallback.Merge(holiday.FromHolidays(stored)), nil
}

func (s *holidayService) List(ctx context.Context, year int) ([]domain.Holiday, error) {
	table, err := s.Lookup(ctx)
	if err != nil {
		return nil, err
	}
	all := table.Holidays()
	if year == 0 {
		return all, nil
	}
	prefix := fmt.Sprintf("%04d-", year)
	out := make([]domain.Holiday, 0)
	for _, h := range all {
		if len(h.Date) >= 5 && h.Date[:5] == prefix {
			out = append(out, h)
		}
	}
	return out, nil
}

// Import stores every entry of t in one transaction.
func (s *holidayService) Import(ctx context.Context, t *holiday.Table, source string) (n int, err error) {
	done := observe(ctx, s.observer, "import-holidays", map[string]any{"source": source, "count": t.Len()})
	defer func() { done(err) }()

	if err = t.Validate(); err != nil {
		return 0, err
	}
	entries := t.Holidays()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteHolidayRepo(tx)
		for _, h := range entries {
			if err := repo.Upsert(ctx, h, source); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("importing holidays: %w", err)
	}
	return len(entries), nil
}

// Sync replaces the stored holidays in [from, to] with what src returns.
// The fetch happens before the transaction; the delete and inserts commit
// together or not at all.
func (s *holidayService) Sync(ctx context.Context, src HolidaySource, from, to string) (res *contract.HolidaySyncResult, err error) {
	fields := map[string]any{"from": from, "to": to}
	done := observe(ctx, s.observer, "sync-holidays", fields)
	defer func() { done(err) }()

	if !domain.IsValidDate(from) || !domain.IsValidDate(to) {
		return nil, fmt.Errorf("sync range %s..%s: %w", from, to, calendar.ErrInvalidDate)
	}
	if to < from {
		return nil, fmt.Errorf("sync range end %s before start %s", to, from)
	}

	fetched, err := src.Fetch(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetching holidays: %w", err)
	}
	if err = fetched.Validate(); err != nil {
		return nil, err
	}
	entries := fetched.Holidays()
	fields["fetched"] = len(entries)

	res = &contract.HolidaySyncResult{From: from, To: to, Fetched: len(entries), Source: SourceGoogle}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteHolidayRepo(tx)
		removed, err := repo.DeleteRange(ctx, from, to)
		if err != nil {
			return err
		}
		res.Removed = removed
		for _, h := range entries {
			if h.Date < from || h.Date > to {
				continue
			}
			if err := repo.Upsert(ctx, h, SourceGoogle); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storing synced holidays: %w", err)
	}
	return res, nil
}
