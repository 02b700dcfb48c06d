// Package holiday provides date-keyed holiday reference data. Tables are
// plain lookups over literal dates; no recurrence rules are evaluated.
package holiday

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/koyomi/internal/calendar"
	"github.com/alexanderramin/koyomi/internal/domain"
)

// Table is an immutable date→name lookup. A nil *Table has no holidays.
type Table struct {
	names map[string]string
}

// NewTable copies entries into a new Table.
func NewTable(entries map[string]string) *Table {
	names := make(map[string]string, len(entries))
	for date, name := range entries {
		names[date] = name
	}
	return &Table{names: names}
}

// FromHolidays builds a Table from a slice; later entries win on duplicate dates.
func FromHolidays(hs []domain.Holiday) *Table {
	names := make(map[string]string, len(hs))
	for _, h := range hs {
		names[h.Date] = h.Name
	}
	return &Table{names: names}
}

// Name returns the holiday name for date.
func (t *Table) Name(date string) (string, bool) {
	if t == nil {
		return "", false
	}
	name, ok := t.names[date]
	return name, ok
}

// IsHoliday reports whether date is in the table.
func (t *Table) IsHoliday(date string) bool {
	_, ok := t.Name(date)
	return ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// Holidays returns all entries sorted by date.
func (t *Table) Holidays() []domain.Holiday {
	if t == nil {
		return nil
	}
	out := make([]domain.Holiday, 0, len(t.names))
	for date, name := range t.names {
		out = append(out, domain.Holiday{Date: date, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Merge returns a new Table with other's entries layered over t's.
func (t *Table) Merge(other *Table) *Table {
	merged := NewTable(nil)
	if t != nil {
		for d, n := range t.names {
			merged.names[d] = n
		}
	}
	if other != nil {
		for d, n := range other.names {
			merged.names[d] = n
		}
	}
	return merged
}

// Validate checks every key is a canonical date and every name non-empty.
func (t *Table) Validate() error {
	for _, h := range t.Holidays() {
		if !domain.IsValidDate(h.Date) {
			return fmt.Errorf("holiday %q: %w", h.Date, calendar.ErrInvalidDate)
		}
		if h.Name == "" {
			return fmt.Errorf("holiday %s: name is required", h.Date)
		}
	}
	return nil
}

var _ calendar.HolidayLookup = (*Table)(nil)
