package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/koyomi/internal/domain"
)

// WeekStart selects the first column of a calendar week.
type WeekStart int

const (
	Sunday WeekStart = WeekStart(time.Sunday)
	Monday WeekStart = WeekStart(time.Monday)
)

// ParseWeekStart accepts "sunday"/"monday" (any case, or "sun"/"mon", "0"/"1").
func ParseWeekStart(s string) (WeekStart, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sunday", "sun", "0":
		return Sunday, nil
	case "monday", "mon", "1":
		return Monday, nil
	}
	return Sunday, fmt.Errorf("invalid week start %q (expected sunday or monday)", s)
}

func (w WeekStart) String() string {
	if w == Monday {
		return "monday"
	}
	return "sunday"
}

// Weekdays returns the seven weekdays in column order.
func (w WeekStart) Weekdays() []time.Weekday {
	days := make([]time.Weekday, 7)
	for i := range days {
		days[i] = time.Weekday((int(w) + i) % 7)
	}
	return days
}

// HolidayLookup resolves a date to a holiday name.
type HolidayLookup interface {
	Name(date string) (string, bool)
}

// Grid builds month grids. The zero value uses Asia/Tokyo, Sunday-first
// weeks and no holidays.
type Grid struct {
	Location  *time.Location
	WeekStart WeekStart
	Holidays  HolidayLookup
}

func (g Grid) location() *time.Location {
	if g.Location == nil {
		return defaultLocation
	}
	return g.Location
}

// Build returns one CalendarDay per date from the start of the week holding
// the 1st of the month to the end of the week holding its last day. today
// must be a canonical date already resolved in the grid's location.
func (g Grid) Build(year int, month time.Month, today string) ([]domain.CalendarDay, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("month %d out of range 1-12", month)
	}
	if _, err := ParseDate(today, g.location()); err != nil {
		return nil, fmt.Errorf("today: %w", err)
	}

	start, end := g.span(year, month)
	days := make([]domain.CalendarDay, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format(DateLayout)
		day := domain.CalendarDay{
			Date:           date,
			Weekday:        d.Weekday(),
			IsCurrentMonth: d.Year() == year && d.Month() == month,
			IsToday:        date == today,
			Tasks:          []domain.Task{},
		}
		if g.Holidays != nil {
			if name, ok := g.Holidays.Name(date); ok {
				day.IsHoliday = true
				day.HolidayName = name
			}
		}
		days = append(days, day)
	}
	return days, nil
}

// BuildAt is Build with "today" taken as the local date of instant now.
func (g Grid) BuildAt(year int, month time.Month, now time.Time) ([]domain.CalendarDay, error) {
	return g.Build(year, month, Today(now, g.location()))
}

// Range returns the first and last dates a month's grid covers.
func (g Grid) Range(year int, month time.Month) (first, last string, err error) {
	if month < time.January || month > time.December {
		return "", "", fmt.Errorf("month %d out of range 1-12", month)
	}
	start, end := g.span(year, month)
	return start.Format(DateLayout), end.Format(DateLayout), nil
}

// span computes the grid's closed date range. Calendar-date arithmetic is
// zone independent, so it runs in UTC where every day is 24h long.
func (g Grid) span(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)

	lead := (int(first.Weekday()) - int(g.WeekStart) + 7) % 7
	trail := (int(g.WeekStart) + 6 - int(last.Weekday()) + 7) % 7

	return first.AddDate(0, 0, -lead), last.AddDate(0, 0, trail)
}

// BuildMonthGrid builds a grid in the default timezone without holidays.
func BuildMonthGrid(year int, month time.Month, weekStart WeekStart, today string) ([]domain.CalendarDay, error) {
	return Grid{WeekStart: weekStart}.Build(year, month, today)
}
