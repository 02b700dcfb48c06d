package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/koyomi/internal/db"
	"github.com/alexanderramin/koyomi/internal/domain"
)

// SQLiteHolidayRepo implements HolidayRepo using a SQLite database.
type SQLiteHolidayRepo struct {
	db db.DBTX
}

// NewSQLiteHolidayRepo creates a new SQLiteHolidayRepo.
func NewSQLiteHolidayRepo(conn db.DBTX) *SQLiteHolidayRepo {
	return &SQLiteHolidayRepo{db: conn}
}

func (r *SQLiteHolidayRepo) ListRange(ctx context.Context, from, to string) ([]domain.Holiday, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, name FROM holidays WHERE date >= ? AND date <= ? ORDER BY date`, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing holidays in range: %w", err)
	}
	defer rows.Close()
	return scanHolidays(rows)
}

func (r *SQLiteHolidayRepo) ListAll(ctx context.Context) ([]domain.Holiday, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT date, name FROM holidays ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("listing holidays: %w", err)
	}
	defer rows.Close()
	return scanHolidays(rows)
}

// Upsert stores h, replacing any existing entry for the same date.
func (r *SQLiteHolidayRepo) Upsert(ctx context.Context, h domain.Holiday, source string) error {
	query := `INSERT INTO holidays (date, name, source, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			name = excluded.name,
			source = excluded.source,
			updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, h.Date, h.Name, source, nowUTC()); err != nil {
		return fmt.Errorf("upserting holiday %s: %w", h.Date, err)
	}
	return nil
}

// DeleteRange removes holidays dated in [from, to] and reports how many.
func (r *SQLiteHolidayRepo) DeleteRange(ctx context.Context, from, to string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM holidays WHERE date >= ? AND date <= ?`, from, to)
	if err != nil {
		return 0, fmt.Errorf("deleting holidays: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking rows affected: %w", err)
	}
	return n, nil
}

func scanHolidays(rows *sql.Rows) ([]domain.Holiday, error) {
	out := make([]domain.Holiday, 0)
	for rows.Next() {
		var h domain.Holiday
		if err := rows.Scan(&h.Date, &h.Name); err != nil {
			return nil, fmt.Errorf("scanning holiday row: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating holiday rows: %w", err)
	}
	return out, nil
}
