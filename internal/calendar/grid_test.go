package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapLookup map[string]string

func (m mapLookup) Name(date string) (string, bool) {
	n, ok := m[date]
	return n, ok
}

func dates(t *testing.T, g Grid, year int, month time.Month, today string) []string {
	t.Helper()
	days, err := g.Build(year, month, today)
	require.NoError(t, err)
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.Date
	}
	return out
}

func TestBuild_Completeness(t *testing.T) {
	for _, ws := range []WeekStart{Sunday, Monday} {
		g := Grid{WeekStart: ws}
		for year := 2020; year <= 2030; year++ {
			for month := time.January; month <= time.December; month++ {
				days, err := g.Build(year, month, "2025-06-15")
				require.NoError(t, err)

				require.Zero(t, len(days)%7, "%d-%02d %s: length %d", year, month, ws, len(days))
				assert.LessOrEqual(t, len(days), 42)

				first, err := WeekdayOf(days[0].Date)
				require.NoError(t, err)
				assert.Equal(t, time.Weekday(ws), first, "%d-%02d %s starts on wrong weekday", year, month, ws)
				assert.Equal(t, days[0].Weekday, first)

				seen := map[string]bool{}
				inMonth := 0
				for i, d := range days {
					require.False(t, seen[d.Date], "duplicate %s", d.Date)
					seen[d.Date] = true
					if i > 0 {
						next, err := AddDays(days[i-1].Date, 1)
						require.NoError(t, err)
						require.Equal(t, next, d.Date, "gap after %s", days[i-1].Date)
					}
					if d.IsCurrentMonth {
						inMonth++
					}
				}

				lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
				assert.Equal(t, lastDay, inMonth)
				for day := 1; day <= lastDay; day++ {
					date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
					assert.True(t, seen[date], "missing %s", date)
				}
			}
		}
	}
}

func TestBuild_LeapFebruarySundayStart(t *testing.T) {
	g := Grid{WeekStart: Sunday}
	days, err := g.Build(2024, time.February, "2024-02-10")
	require.NoError(t, err)
	require.Len(t, days, 35)

	assert.Equal(t, "2024-01-28", days[0].Date)
	for _, d := range days[:4] {
		assert.False(t, d.IsCurrentMonth, d.Date)
	}
	assert.Equal(t, "2024-02-01", days[4].Date)
	assert.True(t, days[4].IsCurrentMonth)
	assert.Equal(t, "2024-02-29", days[32].Date)
	assert.True(t, days[32].IsCurrentMonth)
	assert.Equal(t, "2024-03-01", days[33].Date)
	assert.Equal(t, "2024-03-02", days[34].Date)
	assert.False(t, days[33].IsCurrentMonth)
	assert.False(t, days[34].IsCurrentMonth)
}

func TestBuild_LeapFebruaryMondayStart(t *testing.T) {
	g := Grid{WeekStart: Monday}
	got := dates(t, g, 2024, time.February, "2024-02-10")
	require.Len(t, got, 35)
	assert.Equal(t, "2024-01-29", got[0])
	assert.Equal(t, "2024-03-03", got[34])
}

func TestBuild_NoExtraLeadingWeek(t *testing.T) {
	cases := []struct {
		name  string
		ws    WeekStart
		year  int
		month time.Month
		first string
		last  string
	}{
		{"sunday/2024-09 starts on Sunday", Sunday, 2024, time.September, "2024-09-01", "2024-10-05"},
		{"sunday/2025-06 starts on Sunday", Sunday, 2025, time.June, "2025-06-01", "2025-07-05"},
		{"monday/2024-07 starts on Monday", Monday, 2024, time.July, "2024-07-01", "2024-08-04"},
		{"monday/2025-09 starts on Monday", Monday, 2025, time.September, "2025-09-01", "2025-10-05"},
		{"sunday/2015-02 is exactly four weeks", Sunday, 2015, time.February, "2015-02-01", "2015-02-28"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := dates(t, Grid{WeekStart: tc.ws}, tc.year, tc.month, "2025-01-01")
			assert.Equal(t, tc.first, got[0])
			assert.Equal(t, tc.last, got[len(got)-1])
		})
	}
}

func TestBuild_TodayTagging(t *testing.T) {
	days, err := Grid{}.Build(2025, time.June, "2025-06-15")
	require.NoError(t, err)

	var todays []string
	for _, d := range days {
		if d.IsToday {
			todays = append(todays, d.Date)
		}
	}
	assert.Equal(t, []string{"2025-06-15"}, todays)
}

func TestBuild_TodayOutsideGrid(t *testing.T) {
	days, err := Grid{}.Build(2025, time.March, "2025-06-15")
	require.NoError(t, err)
	for _, d := range days {
		assert.False(t, d.IsToday, d.Date)
	}
}

func TestBuildAt_SameLocalDayAnyInstant(t *testing.T) {
	tokyo := DefaultLocation()
	g := Grid{Location: tokyo}

	early := time.Date(2025, 6, 15, 0, 30, 0, 0, tokyo)
	late := time.Date(2025, 6, 15, 23, 59, 0, 0, tokyo)
	// The same instants seen from New York fall on the 14th and 15th.
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	for _, now := range []time.Time{early, late, early.In(ny), late.In(time.UTC)} {
		days, err := g.BuildAt(2025, time.June, now)
		require.NoError(t, err)
		for _, d := range days {
			assert.Equal(t, d.Date == "2025-06-15", d.IsToday, "now=%s date=%s", now, d.Date)
		}
	}
}

func TestBuild_Holidays(t *testing.T) {
	g := Grid{Holidays: mapLookup{"2025-05-05": "こどもの日", "2025-04-29": "昭和の日"}}
	days, err := g.Build(2025, time.May, "2025-05-01")
	require.NoError(t, err)

	var holidays []string
	for _, d := range days {
		if d.IsHoliday {
			holidays = append(holidays, d.Date+" "+d.HolidayName)
		} else {
			assert.Empty(t, d.HolidayName)
		}
	}
	// April 29 sits in the leading week of the May grid.
	assert.Equal(t, []string{"2025-04-29 昭和の日", "2025-05-05 こどもの日"}, holidays)
}

func TestBuild_EmptyHolidaysMatchNil(t *testing.T) {
	withEmpty, err := Grid{Holidays: mapLookup{}}.Build(2025, time.May, "2025-05-01")
	require.NoError(t, err)
	withNil, err := Grid{}.Build(2025, time.May, "2025-05-01")
	require.NoError(t, err)
	assert.Equal(t, withNil, withEmpty)
}

func TestBuild_Deterministic(t *testing.T) {
	g := Grid{WeekStart: Monday}
	a, err := g.Build(2025, time.December, "2025-12-24")
	require.NoError(t, err)
	b, err := g.Build(2025, time.December, "2025-12-24")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	for _, d := range a {
		assert.NotNil(t, d.Tasks)
		assert.Empty(t, d.Tasks)
	}
}

func TestBuild_InvalidInput(t *testing.T) {
	_, err := Grid{}.Build(2025, 13, "2025-06-15")
	assert.Error(t, err)

	_, err = Grid{}.Build(2025, time.June, "2025-6-15")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestRange(t *testing.T) {
	first, last, err := Grid{WeekStart: Sunday}.Range(2024, time.February)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-28", first)
	assert.Equal(t, "2024-03-02", last)
}

func TestBuildMonthGrid(t *testing.T) {
	days, err := BuildMonthGrid(2025, time.June, Monday, "2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, "2025-05-26", days[0].Date)
}

func TestParseWeekStart(t *testing.T) {
	cases := map[string]WeekStart{"": Sunday, "Sunday": Sunday, "sun": Sunday, "0": Sunday, "MONDAY": Monday, "mon": Monday, "1": Monday}
	for in, want := range cases {
		got, err := ParseWeekStart(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseWeekStart("tuesday")
	assert.Error(t, err)
}

func TestWeekdays(t *testing.T) {
	assert.Equal(t, time.Sunday, Sunday.Weekdays()[0])
	assert.Equal(t, time.Saturday, Sunday.Weekdays()[6])
	assert.Equal(t, time.Monday, Monday.Weekdays()[0])
	assert.Equal(t, time.Sunday, Monday.Weekdays()[6])
}
