// Package calendar builds week-aligned month grids and does calendar-date
// arithmetic pinned to an explicit reference timezone.
//
// Dates cross package boundaries as YYYY-MM-DD strings. Nothing in this
// package reads the wall clock; callers pass "today" in.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	// Embedded zone database so Asia/Tokyo resolves on hosts without tzdata.
	_ "time/tzdata"
)

// DateLayout is the canonical calendar-date format.
const DateLayout = "2006-01-02"

// DefaultTimezone is the reference timezone for due dates and "today".
const DefaultTimezone = "Asia/Tokyo"

// ErrInvalidDate is returned when a date string is not a real YYYY-MM-DD date.
var ErrInvalidDate = errors.New("invalid date")

var defaultLocation = mustLoadLocation(DefaultTimezone)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("loading %s: %v", name, err))
	}
	return loc
}

// DefaultLocation returns the Asia/Tokyo location.
func DefaultLocation() *time.Location {
	return defaultLocation
}

// LoadLocation resolves an IANA zone name. An empty name yields the default.
func LoadLocation(name string) (*time.Location, error) {
	if strings.TrimSpace(name) == "" {
		return defaultLocation, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", name, err)
	}
	return loc, nil
}

// ParseDate parses a YYYY-MM-DD string as midnight in loc. Non-canonical
// spellings such as "2025-6-1" are rejected.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = defaultLocation
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil || t.Format(DateLayout) != s {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate renders t's calendar date as seen in loc.
func FormatDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = defaultLocation
	}
	return t.In(loc).Format(DateLayout)
}

// Today returns the calendar date of instant now in loc. Two instants on the
// same local day yield the same string regardless of the host's zone.
func Today(now time.Time, loc *time.Location) string {
	return FormatDate(now, loc)
}

// AddDays shifts a calendar date by n days. The arithmetic is on dates, not
// durations, so DST transitions never skip or repeat a day.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date, time.UTC)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(DateLayout), nil
}

// DaysBetween returns the number of calendar days from a to b (b - a).
func DaysBetween(a, b string) (int, error) {
	ta, err := ParseDate(a, time.UTC)
	if err != nil {
		return 0, err
	}
	tb, err := ParseDate(b, time.UTC)
	if err != nil {
		return 0, err
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}

// IsPast reports whether date lies strictly before today.
// Both are canonical YYYY-MM-DD strings, which order lexically.
func IsPast(date, today string) bool {
	return date < today
}

// IsFuture reports whether date lies strictly after today.
func IsFuture(date, today string) bool {
	return date > today
}

// MonthBounds returns the first and last calendar dates of year/month.
func MonthBounds(year int, month time.Month) (first, last string, err error) {
	if month < time.January || month > time.December {
		return "", "", fmt.Errorf("month %d out of range 1-12", month)
	}
	f := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	l := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return f.Format(DateLayout), l.Format(DateLayout), nil
}

// ShiftMonth moves year/month by delta months, wrapping across years.
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

// MonthOf returns the year and month a canonical date belongs to.
func MonthOf(date string) (int, time.Month, error) {
	t, err := ParseDate(date, time.UTC)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), t.Month(), nil
}

// WeekdayOf returns the day of the week of a canonical date.
func WeekdayOf(date string) (time.Weekday, error) {
	t, err := ParseDate(date, time.UTC)
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}
