package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/koyomi/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// SeedProfile inserts a profile row so tasks can reference ownerID.
func SeedProfile(t *testing.T, database *sql.DB, ownerID string) {
	t.Helper()
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := database.ExecContext(context.Background(),
		`INSERT OR IGNORE INTO profiles (id, created_at, updated_at) VALUES (?, ?, ?)`, ownerID, now, now)
	if err != nil {
		t.Fatalf("failed to seed profile %s: %v", ownerID, err)
	}
}
