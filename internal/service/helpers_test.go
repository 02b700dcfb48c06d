package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/koyomi/internal/calendar"
	"github.com/alexanderramin/koyomi/internal/domain"
	"github.com/alexanderramin/koyomi/internal/holiday"
	"github.com/alexanderramin/koyomi/internal/repository"
	"github.com/alexanderramin/koyomi/internal/testutil"
	"github.com/stretchr/testify/require"
)

const owner = "alice"

type fixture struct {
	db       *sql.DB
	tasks    *taskService
	calendar *calendarService
	holidays HolidayService
	repo     *repository.SQLiteTaskRepo
}

func newFixture(t *testing.T, settings CalendarSettings, observers ...UseCaseObserver) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	testutil.SeedProfile(t, database, owner)
	testutil.SeedProfile(t, database, "bob")

	repo := repository.NewSQLiteTaskRepo(database)
	holidays := NewHolidayService(
		repository.NewSQLiteHolidayRepo(database),
		testutil.NewTestUoW(database),
		holiday.JapanDefaults(),
		observers...,
	)

	tasks := NewTaskService(repo, observers...).(*taskService)
	tasks.now = func() time.Time { return testutil.FixedNow }
	cal := NewCalendarService(repo, holidays, settings, observers...).(*calendarService)
	cal.now = func() time.Time { return testutil.FixedNow }

	return &fixture{db: database, tasks: tasks, calendar: cal, holidays: holidays, repo: repo}
}

func tokyoSettings() CalendarSettings {
	return CalendarSettings{Location: calendar.DefaultLocation(), WeekStart: calendar.Sunday, HorizonDays: 7}
}

// seed stores tasks directly, bypassing the service clock.
func (f *fixture) seed(t *testing.T, tasks ...*domain.Task) {
	t.Helper()
	for _, tk := range tasks {
		require.NoError(t, f.repo.Create(context.Background(), tk))
	}
}

func taskTitles(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, tk := range tasks {
		out[i] = tk.Title
	}
	return out
}

func strPtr(s string) *string { return &s }
