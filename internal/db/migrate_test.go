package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"profiles", "tasks", "holidays"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_tasks_owner_due", "idx_tasks_owner_status"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func insertProfile(t *testing.T, db *sql.DB, id string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO profiles (id, created_at, updated_at) VALUES (?, '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`, id)
	require.NoError(t, err)
}

func insertTask(db *sql.DB, id, owner, status, priority, start, end string) error {
	var startArg, endArg any
	if start != "" {
		startArg = start
	}
	if end != "" {
		endArg = end
	}
	_, err := db.Exec(`INSERT INTO tasks (id, owner_id, title, due_date, start_time, end_time, status, priority, created_at, updated_at)
		VALUES (?, ?, 't', '2025-06-15', ?, ?, ?, ?, '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`,
		id, owner, startArg, endArg, status, priority)
	return err
}

func TestSchema_TaskConstraints(t *testing.T) {
	db := openTestDB(t)
	insertProfile(t, db, "p1")

	require.NoError(t, insertTask(db, "ok", "p1", "todo", "medium", "09:00", "09:00"))
	assert.Error(t, insertTask(db, "bad-status", "p1", "archived", "medium", "", ""))
	assert.Error(t, insertTask(db, "bad-priority", "p1", "todo", "urgent", "", ""))
	assert.Error(t, insertTask(db, "bad-times", "p1", "todo", "low", "10:00", "09:00"))
	assert.Error(t, insertTask(db, "no-owner", "ghost", "todo", "low", "", ""))
}

func TestSchema_DeletingProfileCascades(t *testing.T) {
	db := openTestDB(t)
	insertProfile(t, db, "p1")
	require.NoError(t, insertTask(db, "t1", "p1", "todo", "low", "", ""))

	_, err := db.Exec(`DELETE FROM profiles WHERE id = 'p1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&n))
	assert.Zero(t, n)
}
