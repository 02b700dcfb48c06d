package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent, so
// Migrate is safe to call on an already migrated database.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ... ADD COLUMN re-runs on every start.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id           TEXT PRIMARY KEY,
		display_name TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		owner_id    TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		due_date    TEXT NOT NULL,
		start_time  TEXT,
		end_time    TEXT,
		status      TEXT NOT NULL DEFAULT 'todo'
		            CHECK(status IN ('todo','in_progress','done')),
		priority    TEXT NOT NULL DEFAULT 'medium'
		            CHECK(priority IN ('low','medium','high')),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL,
		CHECK(start_time IS NULL OR end_time IS NULL OR start_time <= end_time)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_owner_due ON tasks(owner_id, due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_owner_status ON tasks(owner_id, status)`,

	`CREATE TABLE IF NOT EXISTS holidays (
		date       TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		source     TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL
	)`,
}
