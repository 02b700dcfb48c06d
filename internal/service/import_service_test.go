package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/koyomi/internal/domain"
	"github.com/alexanderramin/koyomi/internal/importer"
	"github.com/alexanderramin/koyomi/internal/repository"
	"github.com/alexanderramin/koyomi/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImportFixture(t *testing.T) (*fixture, *importService) {
	t.Helper()
	f := newFixture(t, tokyoSettings())
	svc := NewImportService(f.repo, testutil.NewTestUoW(f.db)).(*importService)
	svc.now = func() time.Time { return testutil.FixedNow }
	return f, svc
}

func sampleSchema() *importer.ImportSchema {
	return &importer.ImportSchema{
		Version:  importer.SchemaVersion,
		Defaults: &importer.DefaultsImport{DueDate: "2025-06-16", Priority: "high"},
		Tasks: []importer.TaskImport{
			{Title: "Standup", StartTime: "09:00", EndTime: "09:15"},
			{Title: "Dentist", DueDate: "2025-06-20", Priority: "low"},
			{Title: "Report", DueDate: "2025-06-14", Status: "done"},
		},
	}
}

func TestImportService_ImportTasks(t *testing.T) {
	f, svc := newImportFixture(t)
	ctx := context.Background()

	res, err := svc.ImportTasks(ctx, owner, sampleSchema(), false)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Created)
	assert.False(t, res.DryRun)
	assert.Equal(t, "2025-06-14", res.First)
	assert.Equal(t, "2025-06-20", res.Last)

	monday, err := f.tasks.ListDay(ctx, owner, "2025-06-16")
	require.NoError(t, err)
	require.Len(t, monday, 1)
	assert.Equal(t, "Standup", monday[0].Title)
	assert.Equal(t, domain.PriorityHigh, monday[0].Priority)
	assert.Equal(t, domain.StatusTodo, monday[0].Status)
	assert.True(t, testutil.FixedNow.Equal(monday[0].CreatedAt))

	friday, err := f.tasks.ListDay(ctx, owner, "2025-06-20")
	require.NoError(t, err)
	require.Len(t, friday, 1)
	assert.Equal(t, domain.PriorityLow, friday[0].Priority)

	other, err := f.tasks.ListDay(ctx, "bob", "2025-06-16")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestImportService_DryRunWritesNothing(t *testing.T) {
	f, svc := newImportFixture(t)
	ctx := context.Background()

	res, err := svc.ImportTasks(ctx, owner, sampleSchema(), true)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Created)
	assert.True(t, res.DryRun)

	tasks, err := f.repo.ListByOwnerInDateRange(ctx, owner, minDate, maxDate, "")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestImportService_ValidationFailure(t *testing.T) {
	f, svc := newImportFixture(t)
	ctx := context.Background()

	schema := &importer.ImportSchema{Tasks: []importer.TaskImport{
		{Title: "ok", DueDate: "2025-06-16"},
		{Title: "", DueDate: "2025-06-16"},
		{Title: "bad time", DueDate: "2025-06-16", StartTime: "25:00"},
	}}
	_, err := svc.ImportTasks(ctx, owner, schema, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (2 errors)")
	assert.Contains(t, err.Error(), "tasks[1].title")
	assert.Contains(t, err.Error(), "tasks[2].start_time")

	tasks, err := f.repo.ListByOwnerInDateRange(ctx, owner, minDate, maxDate, "")
	require.NoError(t, err)
	assert.Empty(t, tasks, "a file with any invalid task imports nothing")
}

func TestImportService_RollbackOnWriteFailure(t *testing.T) {
	f := newFixture(t, tokyoSettings())
	ctx := context.Background()
	boom := errors.New("disk full")

	svc := NewImportService(f.repo, &testutil.FailOnNthExecUoW{DB: f.db, FailOn: 2, Err: boom})
	_, err := svc.ImportTasks(ctx, owner, sampleSchema(), false)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `"Dentist"`)

	tasks, err := f.repo.ListByOwnerInDateRange(ctx, owner, minDate, maxDate, "")
	require.NoError(t, err)
	assert.Empty(t, tasks, "the first task must be rolled back")
}

func TestImportService_ExportTasks(t *testing.T) {
	f, svc := newImportFixture(t)
	ctx := context.Background()

	f.seed(t,
		testutil.NewTestTask(owner, "early", testutil.WithDueDate("2025-06-01")),
		testutil.NewTestTask(owner, "mid", testutil.WithDueDate("2025-06-15"), testutil.WithTimes("10:00", "11:00")),
		testutil.NewTestTask(owner, "late", testutil.WithDueDate("2025-07-01")),
		testutil.NewTestTask("bob", "hidden", testutil.WithDueDate("2025-06-15")),
	)

	all, err := svc.ExportTasks(ctx, owner, "", "")
	require.NoError(t, err)
	assert.Equal(t, importer.SchemaVersion, all.Version)
	require.Len(t, all.Tasks, 3)
	assert.Equal(t, "early", all.Tasks[0].Title)

	june, err := svc.ExportTasks(ctx, owner, "2025-06-10", "2025-06-30")
	require.NoError(t, err)
	require.Len(t, june.Tasks, 1)
	assert.Equal(t, "mid", june.Tasks[0].Title)
	assert.Equal(t, "10:00", june.Tasks[0].StartTime)

	_, err = svc.ExportTasks(ctx, owner, "2025-6-1", "")
	assert.Error(t, err)
	_, err = svc.ExportTasks(ctx, owner, "2025-06-30", "2025-06-01")
	assert.Error(t, err)
}

func TestImportService_ExportFeedsImport(t *testing.T) {
	f, svc := newImportFixture(t)
	ctx := context.Background()
	f.seed(t, testutil.NewTestTask(owner, "carry over", testutil.WithDueDate("2025-06-18")))

	exported, err := svc.ExportTasks(ctx, owner, "", "")
	require.NoError(t, err)
	require.Empty(t, importer.ValidateImportSchema(exported))

	res, err := svc.ImportTasks(ctx, "bob", exported, false)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)

	got, err := repository.NewSQLiteTaskRepo(f.db).ListByOwnerInDateRange(ctx, "bob", minDate, maxDate, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "carry over", got[0].Title)
}
