package domain

import "time"

// CalendarDay is one cell of a month grid. It is derived data and is rebuilt
// on every grid computation.
type CalendarDay struct {
	Date           string       `json:"date"`
	Weekday        time.Weekday `json:"weekday"`
	IsCurrentMonth bool         `json:"is_current_month"`
	IsToday        bool         `json:"is_today"`
	IsHoliday      bool         `json:"is_holiday"`
	HolidayName    string       `json:"holiday_name,omitempty"`
	Tasks          []Task       `json:"tasks"`
}

// TaskCount returns the number of tasks attached to the day.
func (d CalendarDay) TaskCount() int {
	return len(d.Tasks)
}

// UpcomingGroup holds the unfinished tasks due on a single date.
type UpcomingGroup struct {
	Date  string `json:"date"`
	Tasks []Task `json:"tasks"`
}
