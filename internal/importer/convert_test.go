package importer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/koyomi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_AppliesDefaults(t *testing.T) {
	schema := &ImportSchema{
		Defaults: &DefaultsImport{DueDate: "2025-06-16", Priority: "high"},
		Tasks: []TaskImport{
			{Title: "  Standup ", StartTime: "09:00"},
			{Title: "Review", DueDate: "2025-06-17", Priority: "low", Status: "done"},
		},
	}

	got := Convert(schema)
	require.Len(t, got, 2)

	assert.Equal(t, domain.CreateTaskData{
		Title:     "Standup",
		DueDate:   "2025-06-16",
		StartTime: "09:00",
		Status:    domain.StatusTodo,
		Priority:  domain.PriorityHigh,
	}, got[0])

	assert.Equal(t, "2025-06-17", got[1].DueDate)
	assert.Equal(t, domain.PriorityLow, got[1].Priority)
	assert.Equal(t, domain.StatusDone, got[1].Status)
}

func TestConvert_NoDefaultsUsesDomainDefaults(t *testing.T) {
	got := Convert(validMinimalSchema())
	require.Len(t, got, 1)
	assert.Equal(t, domain.StatusTodo, got[0].Status)
	assert.Equal(t, domain.PriorityMedium, got[0].Priority)
}

func TestFromTasks_RoundTrip(t *testing.T) {
	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tasks := []domain.Task{
		{ID: "a", Title: "Dentist", DueDate: "2025-06-15", StartTime: "10:00", EndTime: "11:00",
			Status: domain.StatusTodo, Priority: domain.PriorityHigh, CreatedAt: created},
		{ID: "b", Title: "Notes", Description: "鉛筆", DueDate: "2025-06-16",
			Status: domain.StatusDone, Priority: domain.PriorityLow, CreatedAt: created},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FromTasks(tasks)))
	assert.Contains(t, buf.String(), `"version": 1`)
	assert.Contains(t, buf.String(), "鉛筆")

	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	schema, err := LoadImportSchema(path)
	require.NoError(t, err)
	require.Empty(t, ValidateImportSchema(schema))

	got := Convert(schema)
	require.Len(t, got, 2)
	for i, task := range tasks {
		assert.Equal(t, task.Title, got[i].Title)
		assert.Equal(t, task.Description, got[i].Description)
		assert.Equal(t, task.DueDate, got[i].DueDate)
		assert.Equal(t, task.StartTime, got[i].StartTime)
		assert.Equal(t, task.EndTime, got[i].EndTime)
		assert.Equal(t, task.Status, got[i].Status)
		assert.Equal(t, task.Priority, got[i].Priority)
	}
}

func TestLoadImportSchema_MissingFile(t *testing.T) {
	_, err := LoadImportSchema(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
