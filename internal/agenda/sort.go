package agenda

import (
	"sort"

	"github.com/alexanderramin/koyomi/internal/domain"
)

// SortDay orders tasks for a single day, in place:
// 1. Timed tasks before untimed, earlier start first
// 2. Priority: high > medium > low
// 3. Created at: oldest first
// 4. ID: lexical ascending
func SortDay(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := &tasks[i], &tasks[j]

		// 1. Start time (set before unset)
		if a.HasStartTime() != b.HasStartTime() {
			return a.HasStartTime()
		}
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}

		// 2. Priority (higher first)
		if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
			return ra > rb
		}

		// 3. Created at (oldest first)
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}

		// 4. ID (lexical)
		return a.ID < b.ID
	})
}

// sortHorizon orders tasks by due date, then priority, created at and ID.
// Within one due date this is the priority-first order used for upcoming
// groups.
func sortHorizon(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := &tasks[i], &tasks[j]
		if a.DueDate != b.DueDate {
			return a.DueDate < b.DueDate
		}
		if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
			return ra > rb
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

func sortByPriority(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Priority.Rank() > tasks[j].Priority.Rank()
	})
}
