package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/koyomi/internal/db"
	"github.com/alexanderramin/koyomi/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, owner_id, title, description, due_date, start_time, end_time,
		status, priority, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.OwnerID,
		t.Title,
		t.Description,
		t.DueDate,
		nullableString(t.StartTime),
		nullableString(t.EndTime),
		string(t.Status),
		string(t.Priority),
		formatTimestamp(t.CreatedAt),
		formatTimestamp(t.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id, ownerID string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ? AND owner_id = ?`
	row := r.db.QueryRowContext(ctx, query, id, ownerID)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return &t, nil
}

func (r *SQLiteTaskRepo) ListByOwnerAndDate(ctx context.Context, ownerID, date string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE owner_id = ? AND due_date = ?
		ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, ownerID, date)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by date: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListByOwnerInDateRange(ctx context.Context, ownerID, start, end string, excludeStatus domain.TaskStatus) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE owner_id = ? AND due_date >= ? AND due_date <= ?`
	args := []any{ownerID, start, end}
	if excludeStatus != "" {
		query += ` AND status != ?`
		args = append(args, string(excludeStatus))
	}
	query += ` ORDER BY due_date, created_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks in date range: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

// Update writes only the fields set in patch.
func (r *SQLiteTaskRepo) Update(ctx context.Context, ownerID string, patch domain.UpdateTaskData, updatedAt time.Time) error {
	var sets []string
	var args []any
	set := func(col string, val any) {
		sets = append(sets, col+" = ?")
		args = append(args, val)
	}
	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.DueDate != nil {
		set("due_date", *patch.DueDate)
	}
	if patch.StartTime != nil {
		set("start_time", nullableString(*patch.StartTime))
	}
	if patch.EndTime != nil {
		set("end_time", nullableString(*patch.EndTime))
	}
	if patch.Status != nil {
		set("status", string(*patch.Status))
	}
	if patch.Priority != nil {
		set("priority", string(*patch.Priority))
	}
	set("updated_at", formatTimestamp(updatedAt))

	query := `UPDATE tasks SET ` + strings.Join(sets, ", ") + ` WHERE id = ? AND owner_id = ?`
	args = append(args, patch.ID, ownerID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireAffected(res, "task "+patch.ID)
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id, ownerID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireAffected(res, "task "+id)
}

func (r *SQLiteTaskRepo) ListIDsByPrefix(ctx context.Context, ownerID, prefix string, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM tasks WHERE owner_id = ? AND substr(id, 1, length(?)) = ? ORDER BY id LIMIT ?`,
		ownerID, prefix, prefix, limit)
	if err != nil {
		return nil, fmt.Errorf("listing task ids: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning task id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (domain.Task, error) {
	var (
		t                    domain.Task
		startTime, endTime   sql.NullString
		status, priority     string
		createdAt, updatedAt string
	)
	err := s.Scan(
		&t.ID,
		&t.OwnerID,
		&t.Title,
		&t.Description,
		&t.DueDate,
		&startTime,
		&endTime,
		&status,
		&priority,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return domain.Task{}, err
	}
	t.StartTime = stringFromNull(startTime)
	t.EndTime = stringFromNull(endTime)
	t.Status = domain.TaskStatus(status)
	t.Priority = domain.TaskPriority(priority)
	if t.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return domain.Task{}, fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return domain.Task{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	return t, nil
}

func scanTasks(rows *sql.Rows) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task rows: %w", err)
	}
	return tasks, nil
}
