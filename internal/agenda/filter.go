package agenda

import (
	"strings"

	"github.com/alexanderramin/koyomi/internal/domain"
)

// Filter narrows a task list by free text, status and priority. Zero fields
// match everything.
type Filter struct {
	Query    string              `json:"query,omitempty"`
	Status   domain.TaskStatus   `json:"status,omitempty"`
	Priority domain.TaskPriority `json:"priority,omitempty"`
}

// IsZero reports whether the filter matches every task.
func (f Filter) IsZero() bool {
	return strings.TrimSpace(f.Query) == "" && f.Status == "" && f.Priority == ""
}

// Match reports whether t passes the filter. Query is a case-insensitive
// substring match on title or description.
func (f Filter) Match(t domain.Task) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q)
}

// Apply returns the matching tasks in their original order.
func (f Filter) Apply(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
