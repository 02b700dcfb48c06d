package repository

import (
	"database/sql"
	"time"
)

// timestampLayout is fixed width so stored timestamps sort lexically. It
// keeps sub-second precision for created_at tie-breaks.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// nullableString converts an optional text value to a value suitable for
// SQLite storage: "" becomes SQL NULL.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// stringFromNull returns the value of s, or "" if it is NULL.
func stringFromNull(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

// formatTimestamp renders t in UTC for storage.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// parseTimestamp parses a stored timestamp. Both RFC3339 and RFC3339Nano
// values are accepted.
func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// nowUTC returns the current UTC time formatted for storage.
func nowUTC() string {
	return formatTimestamp(time.Now())
}
