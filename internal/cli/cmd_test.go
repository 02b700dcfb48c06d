package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/koyomi/internal/calendar"
	"github.com/alexanderramin/koyomi/internal/contract"
	"github.com/alexanderramin/koyomi/internal/domain"
	"github.com/alexanderramin/koyomi/internal/holiday"
	"github.com/alexanderramin/koyomi/internal/importer"
	"github.com/alexanderramin/koyomi/internal/repository"
	"github.com/alexanderramin/koyomi/internal/service"
	"github.com/alexanderramin/koyomi/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration
// tests. The clock is pinned to testutil.FixedNow, a Sunday in Tokyo.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	taskRepo := repository.NewSQLiteTaskRepo(db)
	holidayRepo := repository.NewSQLiteHolidayRepo(db)
	profileRepo := repository.NewSQLiteProfileRepo(db)

	holidays := service.NewHolidayService(holidayRepo, testutil.NewTestUoW(db), holiday.JapanDefaults())
	return &App{
		Tasks:    service.NewTaskService(taskRepo),
		Calendar: service.NewCalendarService(taskRepo, holidays, service.CalendarSettings{Location: calendar.DefaultLocation()}),
		Holidays: holidays,
		Profiles: service.NewProfileService(profileRepo),
		Import:   service.NewImportService(taskRepo, testutil.NewTestUoW(db)),

		Owner:    "alice",
		Location: calendar.DefaultLocation(),
		Now:      func() time.Time { return testutil.FixedNow },
		// HolidaySource left nil; sync tests set their own.
	}
}

// seedTask creates a task for the test owner.
func seedTask(t *testing.T, app *App, title, due string, opts ...func(*domain.CreateTaskData)) *domain.Task {
	t.Helper()
	ctx := context.Background()
	_, err := app.Profiles.Ensure(ctx, app.Owner)
	require.NoError(t, err)

	data := domain.CreateTaskData{Title: title, DueDate: due}
	for _, opt := range opts {
		opt(&data)
	}
	task, err := app.Tasks.Create(ctx, app.Owner, data)
	require.NoError(t, err)
	return task
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func decodeJSON[T any](t *testing.T, out string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}

// --- root ---

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "koyomi")
	assert.Contains(t, output, "month")
}

func TestRootCmd_EmptyOwner(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "--owner", "", "month")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "owner")
}

func TestTUICmd_RequiresTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "tui")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

// --- month ---

func TestMonthCmd_DefaultsToCurrentMonth(t *testing.T) {
	app := testApp(t)
	seedTask(t, app, "Dentist", "2025-06-15")

	output, err := executeCmd(t, app, "month")
	require.NoError(t, err)
	assert.Contains(t, output, "JUNE 2025")
	assert.Contains(t, output, "Dentist")
}

func TestMonthCmd_HolidayLegend(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "month", "2025-05")
	require.NoError(t, err)
	assert.Contains(t, output, "MAY 2025")
	assert.Contains(t, output, "Holidays:")
	assert.Contains(t, output, "05-05")
}

func TestMonthCmd_JSON(t *testing.T) {
	app := testApp(t)
	seedTask(t, app, "Dentist", "2025-06-15")

	output, err := executeCmd(t, app, "month", "--json")
	require.NoError(t, err)

	resp := decodeJSON[contract.MonthViewResponse](t, output)
	assert.Equal(t, 2025, resp.Year)
	assert.Equal(t, time.June, resp.Month)
	assert.Equal(t, "sunday", resp.WeekStart)
	assert.Equal(t, "2025-06-15", resp.Today)
	assert.Equal(t, "2025-06-15", resp.SelectedDate)
	assert.Zero(t, len(resp.Days)%7)
	assert.Equal(t, "2025-06-01", resp.Days[0].Date)
	require.Len(t, resp.DayTasks, 1)
	assert.Equal(t, "Dentist", resp.DayTasks[0].Title)
}

func TestMonthCmd_WeekStartFlag(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "month", "--week-start", "monday", "--json")
	require.NoError(t, err)

	resp := decodeJSON[contract.MonthViewResponse](t, output)
	assert.Equal(t, "monday", resp.WeekStart)
	assert.Equal(t, "2025-05-26", resp.Days[0].Date)
}

func TestMonthCmd_Offset(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "month", "--offset", "-6", "--json")
	require.NoError(t, err)

	resp := decodeJSON[contract.MonthViewResponse](t, output)
	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, time.December, resp.Month)
	assert.Equal(t, "2024-12-01", resp.SelectedDate)
}

func TestMonthCmd_BareMonthNumber(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "month", "2", "--json")
	require.NoError(t, err)

	resp := decodeJSON[contract.MonthViewResponse](t, output)
	assert.Equal(t, 2025, resp.Year)
	assert.Equal(t, time.February, resp.Month)
}

func TestMonthCmd_Compact(t *testing.T) {
	app := testApp(t)
	seedTask(t, app, "Dentist", "2025-06-15")

	output, err := executeCmd(t, app, "month", "--compact")
	require.NoError(t, err)
	assert.Contains(t, output, "15·1")
	assert.NotContains(t, output, "Dentist")
}

func TestMonthCmd_InvalidInput(t *testing.T) {
	app := testApp(t)

	for _, args := range [][]string{
		{"month", "2025-13"},
		{"month", "13"},
		{"month", "June"},
		{"month", "--week-start", "tuesday"},
		{"month", "--select", "2025-6-1"},
	} {
		_, err := executeCmd(t, app, args...)
		assert.Error(t, err, "%v", args)
	}
}

// --- day ---

func TestDayCmd_Today(t *testing.T) {
	app := testApp(t)
	seedTask(t, app, "Write report", "2025-06-15", func(d *domain.CreateTaskData) {
		d.StartTime, d.EndTime = "09:00", "10:30"
	})
	seedTask(t, app, "Tomorrow thing", "2025-06-16")

	output, err := executeCmd(t, app, "day")
	require.NoError(t, err)
	assert.Contains(t, output, "Write report")
	assert.Contains(t, output, "09:00")
	assert.NotContains(t, output, "Tomorrow thing")
}

func TestDayCmd_RelativeDate(t *testing.T) {
	app := testApp(t)
	seedTask(t, app, "Tomorrow thing", "2025-06-16")

	output, err := executeCmd(t, app, "day", "tomorrow", "--json")
	require.NoError(t, err)

	resp := decodeJSON[contract.DayViewResponse](t, output)
	assert.Equal(t, "2025-06-16", resp.Date)
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, "Tomorrow thing", resp.Tasks[0].Title)
}

func TestDayCmd_Holiday(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "day", "2025-05-05", "--json")
	require.NoError(t, err)

	resp := decodeJSON[contract.DayViewResponse](t, output)
	assert.True(t, resp.IsHoliday)
	assert.NotEmpty(t, resp.HolidayName)
}

func TestDayCmd_Filters(t *testing.T) {
	app := testApp(t)
	seedTask(t, app, "Buy milk", "2025-06-15", func(d *domain.CreateTaskData) { d.Priority = domain.PriorityLow })
	seedTask(t, app, "Call bank", "2025-06-15", func(d *domain.CreateTaskData) { d.Priority = domain.PriorityHigh })

	output, err := executeCmd(t, app, "day", "--search", "MILK")
	require.NoError(t, err)
	assert.Contains(t, output, "Buy milk")
	assert.NotContains(t, output, "Call bank")

	output, err = executeCmd(t, app, "day", "--priority", "high")
	require.NoError(t, err)
	assert.Contains(t, output, "Call bank")
	assert.NotContains(t, output, "Buy milk")

	_, err = executeCmd(t, app, "day", "--status", "bogus")
	assert.Error(t, err)
}

func TestDayCmd_InvalidDate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "day", "2025-02-30")
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
}

// --- upcoming ---

func TestUpcomingCmd(t *testing.T) {
	app := testApp(t)
	seedTask(t, app, "Soon", "2025-06-17")
	seedTask(t, app, "Later", "2025-06-20")
	seedTask(t, app, "Past", "2025-06-14")

	output, err := executeCmd(t, app, "upcoming")
	require.NoError(t, err)
	assert.Contains(t, output, "Soon")
	assert.Contains(t, output, "Later")
	assert.NotContains(t, output, "Past")

	output, err = executeCmd(t, app, "upcoming", "--days", "3", "--json")
	require.NoError(t, err)
	resp := decodeJSON[contract.UpcomingResponse](t, output)
	assert.Equal(t, "2025-06-18", resp.Through)
	require.Len(t, resp.Groups, 1)
	assert.Equal(t, "2025-06-17", resp.Groups[0].Date)
}

func TestUpcomingCmd_Empty(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "upcoming")
	require.NoError(t, err)
	assert.Contains(t, output, "Nothing due in the next 7 days.")
}

func TestUpcomingCmd_NegativeHorizon(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "upcoming", "--days", "-1")
	assert.Error(t, err)
}

// --- task ---

func TestTaskAddCmd(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "task", "add", "Buy", "milk",
		"--start", "09:00", "--end", "09:30", "--priority", "high", "--desc", "2 litres")
	require.NoError(t, err)
	assert.Contains(t, output, "Created")
	assert.Contains(t, output, "Buy milk")

	tasks, err := app.Tasks.ListDay(context.Background(), "alice", "2025-06-15")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	got := tasks[0]
	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, "2 litres", got.Description)
	assert.Equal(t, "09:00", got.StartTime)
	assert.Equal(t, "09:30", got.EndTime)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.Equal(t, domain.StatusTodo, got.Status)
}

func TestTaskAddCmd_DueTomorrow(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "task", "add", "Gym", "--due", "tomorrow")
	require.NoError(t, err)
	assert.Contains(t, output, "Mon, Jun 16 2025")
}

func TestTaskAddCmd_Rejects(t *testing.T) {
	app := testApp(t)

	cases := map[string][]string{
		"missing title":   {"task", "add"},
		"blank title":     {"task", "add", "   "},
		"end before start": {"task", "add", "Meeting", "--start", "10:00", "--end", "09:00"},
		"bad time":        {"task", "add", "Meeting", "--start", "25:00"},
		"bad due":         {"task", "add", "Meeting", "--due", "2025-13-01"},
		"bad priority":    {"task", "add", "Meeting", "--priority", "urgent"},
	}
	for name, args := range cases {
		_, err := executeCmd(t, app, args...)
		assert.Error(t, err, name)
	}

	tasks, err := app.Tasks.ListDay(context.Background(), "alice", "2025-06-15")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskAddCmd_InteractiveNeedsTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "add", "-i")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

func TestTaskEditCmd(t *testing.T) {
	app := testApp(t)
	task := seedTask(t, app, "Draft", "2025-06-15", func(d *domain.CreateTaskData) {
		d.StartTime = "09:00"
		d.Description = "first pass"
	})

	output, err := executeCmd(t, app, "task", "edit", task.ID[:8],
		"--title", "Final draft", "--due", "2025-06-18", "--start", "", "--status", "in-progress")
	require.NoError(t, err)
	assert.Contains(t, output, "Updated")

	got, err := app.Tasks.Get(context.Background(), "alice", task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final draft", got.Title)
	assert.Equal(t, "2025-06-18", got.DueDate)
	assert.Empty(t, got.StartTime)
	assert.Equal(t, domain.StatusInProgress, got.Status)
	assert.Equal(t, "first pass", got.Description, "unchanged flags must keep their values")
}

func TestTaskEditCmd_NothingToChange(t *testing.T) {
	app := testApp(t)
	task := seedTask(t, app, "Draft", "2025-06-15")

	_, err := executeCmd(t, app, "task", "edit", task.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to change")
}

func TestTaskEditCmd_RevalidatesMergedTimes(t *testing.T) {
	app := testApp(t)
	task := seedTask(t, app, "Meeting", "2025-06-15", func(d *domain.CreateTaskData) {
		d.StartTime, d.EndTime = "09:00", "10:00"
	})

	_, err := executeCmd(t, app, "task", "edit", task.ID, "--start", "11:00")
	assert.Error(t, err)
}

func TestTaskShowCmd(t *testing.T) {
	app := testApp(t)
	task := seedTask(t, app, "Dentist", "2025-06-15", func(d *domain.CreateTaskData) {
		d.Description = "bring insurance card"
	})

	output, err := executeCmd(t, app, "task", "show", task.ID)
	require.NoError(t, err)
	assert.Contains(t, output, "Dentist")
	assert.Contains(t, output, "bring insurance card")

	output, err = executeCmd(t, app, "task", "show", task.ID[:6], "--json")
	require.NoError(t, err)
	got := decodeJSON[domain.Task](t, output)
	assert.Equal(t, task.ID, got.ID)
}

func TestTaskShowCmd_BadReference(t *testing.T) {
	app := testApp(t)
	task := seedTask(t, app, "Dentist", "2025-06-15")

	_, err := executeCmd(t, app, "task", "show", task.ID[:2])
	assert.Error(t, err, "prefix too short")

	_, err = executeCmd(t, app, "task", "show", "ffffffff")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskShowCmd_OtherOwnerInvisible(t *testing.T) {
	app := testApp(t)
	task := seedTask(t, app, "Secret", "2025-06-15")

	_, err := executeCmd(t, app, "--owner", "bob", "task", "show", task.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskDoneUndoCmd(t *testing.T) {
	app := testApp(t)
	task := seedTask(t, app, "Laundry", "2025-06-15")
	ctx := context.Background()

	output, err := executeCmd(t, app, "task", "done", task.ID)
	require.NoError(t, err)
	assert.Contains(t, output, "Completed")
	got, err := app.Tasks.Get(ctx, "alice", task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, got.Status)

	output, err = executeCmd(t, app, "task", "undo", task.ID)
	require.NoError(t, err)
	assert.Contains(t, output, "Reopened")
	got, err = app.Tasks.Get(ctx, "alice", task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTodo, got.Status)
}

func TestTaskRemoveCmd(t *testing.T) {
	app := testApp(t)
	task := seedTask(t, app, "Old", "2025-06-15")

	_, err := executeCmd(t, app, "task", "rm", task.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")

	output, err := executeCmd(t, app, "task", "remove", task.ID, "--yes")
	require.NoError(t, err)
	assert.Contains(t, output, "Deleted")

	_, err = app.Tasks.Get(context.Background(), "alice", task.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func writeTaskFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestTaskImportCmd(t *testing.T) {
	app := testApp(t)
	path := writeTaskFile(t, `{
		"version": 1,
		"defaults": {"due_date": "2025-06-16", "priority": "high"},
		"tasks": [
			{"title": "Standup", "start_time": "09:00", "end_time": "09:15"},
			{"title": "Dentist", "due_date": "2025-06-18"}
		]
	}`)

	output, err := executeCmd(t, app, "task", "import", path, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, output, "Valid")
	assert.Contains(t, output, "2 tasks")

	output, err = executeCmd(t, app, "upcoming", "--json")
	require.NoError(t, err)
	assert.NotContains(t, output, "Standup", "dry run must not create tasks")

	output, err = executeCmd(t, app, "task", "import", path, "--json")
	require.NoError(t, err)
	res := decodeJSON[contract.ImportResult](t, output)
	assert.Equal(t, 2, res.Created)
	assert.Equal(t, "2025-06-16", res.First)
	assert.Equal(t, "2025-06-18", res.Last)

	output, err = executeCmd(t, app, "day", "2025-06-16", "--json")
	require.NoError(t, err)
	day := decodeJSON[contract.DayViewResponse](t, output)
	require.Len(t, day.Tasks, 1)
	assert.Equal(t, "Standup", day.Tasks[0].Title)
	assert.Equal(t, domain.PriorityHigh, day.Tasks[0].Priority)
}

func TestTaskImportCmd_Rejects(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "import", writeTaskFile(t, `{"tasks": [
		{"title": "a", "due_date": "2025-06-16"},
		{"title": "a", "due_date": "2025-06-16"},
		{"title": "b", "due_date": "2025-02-30"}
	]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(2 errors)")
	assert.Contains(t, err.Error(), "tasks[1]: duplicates tasks[0]")
	assert.Contains(t, err.Error(), "tasks[2].due_date")

	_, err = executeCmd(t, app, "task", "import", writeTaskFile(t, `{"tasks": [], "extra": true}`))
	assert.Error(t, err)

	_, err = executeCmd(t, app, "task", "import", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestTaskExportCmd(t *testing.T) {
	app := testApp(t)
	seedTask(t, app, "Yesterday", "2025-06-14")
	seedTask(t, app, "Tomorrow", "2025-06-16", func(d *domain.CreateTaskData) {
		d.StartTime, d.EndTime = "10:00", "11:00"
	})

	output, err := executeCmd(t, app, "task", "export", "--from", "today")
	require.NoError(t, err)
	schema, err := importer.Parse(bytes.NewBufferString(output))
	require.NoError(t, err)
	require.Len(t, schema.Tasks, 1)
	assert.Equal(t, "Tomorrow", schema.Tasks[0].Title)
	assert.Equal(t, "10:00", schema.Tasks[0].StartTime)

	output, err = executeCmd(t, app, "task", "export")
	require.NoError(t, err)
	schema, err = importer.Parse(bytes.NewBufferString(output))
	require.NoError(t, err)
	assert.Len(t, schema.Tasks, 2)

	_, err = executeCmd(t, app, "task", "export", "--to", "someday")
	assert.Error(t, err)
}

// --- holiday ---

type fakeHolidaySource struct {
	entries map[string]string
	calls   int
}

func (f *fakeHolidaySource) Fetch(_ context.Context, from, to string) (*holiday.Table, error) {
	f.calls++
	return holiday.NewTable(f.entries), nil
}

func TestHolidayListCmd(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "holiday", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "2025-01-01")
	assert.NotContains(t, output, "2024-01-01")

	output, err = executeCmd(t, app, "holiday", "list", "--year", "2024", "--json")
	require.NoError(t, err)
	list := decodeJSON[[]domain.Holiday](t, output)
	require.NotEmpty(t, list)
	for _, h := range list {
		assert.Equal(t, "2024", h.Date[:4])
	}
}

func TestHolidayListCmd_EmptyYear(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "holiday", "list", "--year", "1999")
	require.NoError(t, err)
	assert.Contains(t, output, "No holidays.")
}

func TestHolidayImportCmd(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "company.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"2025-06-20": "Founders Day"}`), 0o644))

	output, err := executeCmd(t, app, "holiday", "import", path)
	require.NoError(t, err)
	assert.Contains(t, output, "1 holidays")

	output, err = executeCmd(t, app, "day", "2025-06-20", "--json")
	require.NoError(t, err)
	resp := decodeJSON[contract.DayViewResponse](t, output)
	assert.True(t, resp.IsHoliday)
	assert.Equal(t, "Founders Day", resp.HolidayName)
}

func TestHolidayImportCmd_BadFile(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"2025-6-20": "x"}`), 0o644))

	_, err := executeCmd(t, app, "holiday", "import", path)
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)

	_, err = executeCmd(t, app, "holiday", "import", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestHolidayExportCmd(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "holiday", "export", "--year", "2025")
	require.NoError(t, err)

	tbl, err := holiday.Read(bytes.NewBufferString(output))
	require.NoError(t, err)
	assert.True(t, tbl.IsHoliday("2025-01-01"))
	assert.False(t, tbl.IsHoliday("2024-01-01"))
}

func TestHolidaySyncCmd_NotConfigured(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "holiday", "sync")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestHolidaySyncCmd(t *testing.T) {
	app := testApp(t)
	src := &fakeHolidaySource{entries: map[string]string{"2025-06-20": "Synced Day"}}
	app.HolidaySource = func(context.Context) (service.HolidaySource, error) { return src, nil }

	output, err := executeCmd(t, app, "holiday", "sync", "--json")
	require.NoError(t, err)
	res := decodeJSON[contract.HolidaySyncResult](t, output)
	assert.Equal(t, "2025-01-01", res.From)
	assert.Equal(t, "2025-12-31", res.To)
	assert.Equal(t, 1, res.Fetched)
	assert.Equal(t, 1, src.calls)

	output, err = executeCmd(t, app, "day", "2025-06-20", "--json")
	require.NoError(t, err)
	resp := decodeJSON[contract.DayViewResponse](t, output)
	assert.Equal(t, "Synced Day", resp.HolidayName)
}

func TestHolidaySyncCmd_RangeFlags(t *testing.T) {
	app := testApp(t)
	src := &fakeHolidaySource{}
	app.HolidaySource = func(context.Context) (service.HolidaySource, error) { return src, nil }

	_, err := executeCmd(t, app, "holiday", "sync", "--from", "2025-01-01")
	assert.Error(t, err)

	_, err = executeCmd(t, app, "holiday", "sync", "--year", "2025", "--from", "2025-01-01")
	assert.Error(t, err)

	_, err = executeCmd(t, app, "holiday", "sync", "--from", "2025-12-31", "--to", "2025-01-01")
	assert.Error(t, err)
	assert.Zero(t, src.calls)
}

// --- profile ---

func TestWhoamiCmd(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "whoami")
	require.NoError(t, err)
	assert.Contains(t, output, "alice")
	assert.Contains(t, output, "no display name")
}

func TestProfileSetNameCmd(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "profile", "set-name", "Alice", "Tanaka")
	require.NoError(t, err)
	assert.Contains(t, output, "Alice Tanaka")

	output, err = executeCmd(t, app, "whoami", "--json")
	require.NoError(t, err)
	p := decodeJSON[domain.Profile](t, output)
	assert.Equal(t, "alice", p.ID)
	assert.Equal(t, "Alice Tanaka", p.DisplayName)
}
