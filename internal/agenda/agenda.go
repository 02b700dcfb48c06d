// Package agenda merges a flat task collection onto days: the ordered list
// for one day, the upcoming digest and the month grid. Every function is
// pure; inputs are never modified and dates are treated as canonical
// YYYY-MM-DD strings validated upstream.
package agenda

import (
	"fmt"

	"github.com/alexanderramin/koyomi/internal/calendar"
	"github.com/alexanderramin/koyomi/internal/domain"
)

const (
	// DefaultHorizonDays is how far past today the upcoming digest reaches.
	DefaultHorizonDays = 7

	// DefaultPreviewLimit is the number of tasks TopTasks keeps by default.
	DefaultPreviewLimit = 3

	// DisplayPreviewLimit is the number of task titles drawn in a grid cell.
	DisplayPreviewLimit = 2
)

// SelectDayTasks returns the tasks due on date in day order (see SortDay).
func SelectDayTasks(tasks []domain.Task, date string) []domain.Task {
	out := make([]domain.Task, 0)
	for _, t := range tasks {
		if t.DueDate == date {
			out = append(out, t)
		}
	}
	SortDay(out)
	return out
}

// GroupUpcoming groups unfinished tasks due in [today, today+horizonDays]
// by due date. Groups are ascending by date and never empty; inside a group
// tasks are ordered by priority, then creation time.
func GroupUpcoming(tasks []domain.Task, today string, horizonDays int) ([]domain.UpcomingGroup, error) {
	if horizonDays < 0 {
		return nil, fmt.Errorf("horizon %d must not be negative", horizonDays)
	}
	end, err := calendar.AddDays(today, horizonDays)
	if err != nil {
		return nil, fmt.Errorf("today: %w", err)
	}

	window := make([]domain.Task, 0)
	for _, t := range tasks {
		if t.IsDone() || t.DueDate < today || t.DueDate > end {
			continue
		}
		window = append(window, t)
	}
	sortHorizon(window)

	groups := make([]domain.UpcomingGroup, 0)
	for _, t := range window {
		n := len(groups)
		if n == 0 || groups[n-1].Date != t.DueDate {
			groups = append(groups, domain.UpcomingGroup{Date: t.DueDate})
			n++
		}
		groups[n-1].Tasks = append(groups[n-1].Tasks, t)
	}
	return groups, nil
}

// Annotate returns a copy of grid where each day carries the tasks due on
// its date, in day order. Neither grid nor tasks is modified.
func Annotate(grid []domain.CalendarDay, tasks []domain.Task) []domain.CalendarDay {
	byDate := make(map[string][]domain.Task, len(grid))
	for _, t := range tasks {
		byDate[t.DueDate] = append(byDate[t.DueDate], t)
	}

	out := make([]domain.CalendarDay, len(grid))
	for i, day := range grid {
		matched := byDate[day.Date]
		day.Tasks = make([]domain.Task, len(matched))
		copy(day.Tasks, matched)
		SortDay(day.Tasks)
		out[i] = day
	}
	return out
}

// TopTasks returns at most n tasks by descending priority, keeping input
// order among equal priorities. It is a compact preview for grid cells and
// deliberately ignores start time; use SelectDayTasks for the full day order.
// n <= 0 means DefaultPreviewLimit.
func TopTasks(tasks []domain.Task, n int) []domain.Task {
	if n <= 0 {
		n = DefaultPreviewLimit
	}
	ranked := make([]domain.Task, len(tasks))
	copy(ranked, tasks)
	sortByPriority(ranked)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Overflow is the number of tasks hidden by a preview of size shown.
func Overflow(total, shown int) int {
	if total <= shown {
		return 0
	}
	return total - shown
}
