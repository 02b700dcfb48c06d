package contract

import (
	"time"

	"github.com/alexanderramin/koyomi/internal/agenda"
	"github.com/alexanderramin/koyomi/internal/calendar"
	"github.com/alexanderramin/koyomi/internal/domain"
)

// MonthViewRequest asks for one month grid plus the selected day's list and
// the upcoming digest. A zero Year or Month is taken from today; an
// empty SelectedDate means today when it is in the month, else the 1st.
// A nil WeekStart uses the configured one.
type MonthViewRequest struct {
	OwnerID      string
	Year         int
	Month        time.Month
	SelectedDate string
	Filter       agenda.Filter
	WeekStart    *calendar.WeekStart
	Now          *time.Time
}

func NewMonthViewRequest(ownerID string) MonthViewRequest {
	return MonthViewRequest{OwnerID: ownerID}
}

type MonthViewResponse struct {
	Year         int                    `json:"year"`
	Month        time.Month             `json:"month"`
	WeekStart    string                 `json:"week_start"`
	Today        string                 `json:"today"`
	SelectedDate string                 `json:"selected_date"`
	Days         []domain.CalendarDay   `json:"days"`
	DayTasks     []domain.Task          `json:"day_tasks"`
	Upcoming     []domain.UpcomingGroup `json:"upcoming"`
}

// Day returns the grid cell for date.
func (r *MonthViewResponse) Day(date string) (domain.CalendarDay, bool) {
	for _, d := range r.Days {
		if d.Date == date {
			return d, true
		}
	}
	return domain.CalendarDay{}, false
}

// DayViewRequest asks for the ordered task list of one date. An empty Date
// means today.
type DayViewRequest struct {
	OwnerID string
	Date    string
	Filter  agenda.Filter
	Now     *time.Time
}

type DayViewResponse struct {
	Date        string        `json:"date"`
	Today       string        `json:"today"`
	IsHoliday   bool          `json:"is_holiday"`
	HolidayName string        `json:"holiday_name,omitempty"`
	Tasks       []domain.Task `json:"tasks"`
}

// UpcomingRequest asks for the digest of unfinished tasks from today through
// today+HorizonDays. Zero HorizonDays means the configured horizon.
type UpcomingRequest struct {
	OwnerID     string
	HorizonDays int
	Now         *time.Time
}

type UpcomingResponse struct {
	Today       string                 `json:"today"`
	Through     string                 `json:"through"`
	HorizonDays int                    `json:"horizon_days"`
	Groups      []domain.UpcomingGroup `json:"groups"`
}

type ViewErrorCode string

const (
	ErrInvalidMonth   ViewErrorCode = "INVALID_MONTH"
	ErrInvalidDate    ViewErrorCode = "INVALID_DATE"
	ErrInvalidHorizon ViewErrorCode = "INVALID_HORIZON"
)

// ViewError reports a malformed view request.
type ViewError struct {
	Code    ViewErrorCode
	Message string
	Err     error
}

func (e *ViewError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *ViewError) Unwrap() error {
	return e.Err
}
