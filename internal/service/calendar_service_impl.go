package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/koyomi/internal/agenda"
	"github.com/alexanderramin/koyomi/internal/calendar"
	"github.com/alexanderramin/koyomi/internal/contract"
	"github.com/alexanderramin/koyomi/internal/domain"
	"github.com/alexanderramin/koyomi/internal/repository"
)

// CalendarSettings are the presentation rules shared by every view.
type CalendarSettings struct {
	Location    *time.Location
	WeekStart   calendar.WeekStart
	HorizonDays int
}

type calendarService struct {
	tasks    repository.TaskRepo
	holidays HolidayService
	settings CalendarSettings
	now      func() time.Time
	observer UseCaseObserver
}

func NewCalendarService(
	tasks repository.TaskRepo,
	holidays HolidayService,
	settings CalendarSettings,
	observers ...UseCaseObserver,
) CalendarService {
	if settings.Location == nil {
		settings.Location = calendar.DefaultLocation()
	}
	if settings.HorizonDays <= 0 {
		settings.HorizonDays = agenda.DefaultHorizonDays
	}
	return &calendarService{
		tasks:    tasks,
		holidays: holidays,
		settings: settings,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *calendarService) today(now *time.Time) string {
	if now != nil {
		return calendar.Today(*now, s.settings.Location)
	}
	return calendar.Today(s.now(), s.settings.Location)
}

// MonthView builds the grid for one month, annotated with the owner's tasks,
// together with the selected day's list and the upcoming digest. Each task
// set is read once and fully materialised before any aggregation runs.
func (s *calendarService) MonthView(ctx context.Context, req contract.MonthViewRequest) (resp *contract.MonthViewResponse, err error) {
	fields := map[string]any{"owner": req.OwnerID}
	done := observe(ctx, s.observer, "month-view", fields)
	defer func() { done(err) }()

	today := s.today(req.Now)
	year, month := req.Year, req.Month
	todayYear, todayMonth, _ := calendar.MonthOf(today)
	if year == 0 {
		year = todayYear
	}
	if month == 0 {
		month = todayMonth
	}
	if month < time.January || month > time.December {
		return nil, &contract.ViewError{Code: contract.ErrInvalidMonth, Message: fmt.Sprintf("month %d out of range 1-12", month)}
	}
	fields["month"] = fmt.Sprintf("%04d-%02d", year, int(month))

	selected := req.SelectedDate
	if selected == "" {
		selected, err = defaultSelection(year, month, today)
		if err != nil {
			return nil, err
		}
	} else if !domain.IsValidDate(selected) {
		return nil, &contract.ViewError{Code: contract.ErrInvalidDate, Message: fmt.Sprintf("selected date %q", selected), Err: calendar.ErrInvalidDate}
	}

	table, err := s.holidays.Lookup(ctx)
	if err != nil {
		return nil, err
	}
	weekStart := s.settings.WeekStart
	if req.WeekStart != nil {
		weekStart = *req.WeekStart
	}
	grid := calendar.Grid{Location: s.settings.Location, WeekStart: weekStart, Holidays: table}

	days, err := grid.Build(year, month, today)
	if err != nil {
		return nil, err
	}
	first, last := days[0].Date, days[len(days)-1].Date

	monthTasks, err := s.tasks.ListByOwnerInDateRange(ctx, req.OwnerID, first, last, "")
	if err != nil {
		return nil, err
	}
	fields["task_count"] = len(monthTasks)

	var dayTasks []domain.Task
	if selected >= first && selected <= last {
		dayTasks = agenda.SelectDayTasks(monthTasks, selected)
	} else {
		var raw []domain.Task
		raw, err = s.tasks.ListByOwnerAndDate(ctx, req.OwnerID, selected)
		if err != nil {
			return nil, err
		}
		dayTasks = agenda.SelectDayTasks(raw, selected)
	}

	upcoming, err := s.upcoming(ctx, req.OwnerID, today, s.settings.HorizonDays)
	if err != nil {
		return nil, err
	}

	return &contract.MonthViewResponse{
		Year:         year,
		Month:        month,
		WeekStart:    weekStart.String(),
		Today:        today,
		SelectedDate: selected,
		Days:         agenda.Annotate(days, monthTasks),
		DayTasks:     req.Filter.Apply(dayTasks),
		Upcoming:     upcoming,
	}, nil
}

func (s *calendarService) DayView(ctx context.Context, req contract.DayViewRequest) (resp *contract.DayViewResponse, err error) {
	done := observe(ctx, s.observer, "day-view", map[string]any{"owner": req.OwnerID, "date": req.Date})
	defer func() { done(err) }()

	today := s.today(req.Now)
	date := domain.CoalesceStr(req.Date, today)
	if !domain.IsValidDate(date) {
		return nil, &contract.ViewError{Code: contract.ErrInvalidDate, Message: fmt.Sprintf("date %q", date), Err: calendar.ErrInvalidDate}
	}

	tasks, err := s.tasks.ListByOwnerAndDate(ctx, req.OwnerID, date)
	if err != nil {
		return nil, err
	}
	table, err := s.holidays.Lookup(ctx)
	if err != nil {
		return nil, err
	}
	name, isHoliday := table.Name(date)

	return &contract.DayViewResponse{
		Date:        date,
		Today:       today,
		IsHoliday:   isHoliday,
		HolidayName: name,
		Tasks:       req.Filter.Apply(agenda.SelectDayTasks(tasks, date)),
	}, nil
}

func (s *calendarService) Upcoming(ctx context.Context, req contract.UpcomingRequest) (resp *contract.UpcomingResponse, err error) {
	done := observe(ctx, s.observer, "upcoming", map[string]any{"owner": req.OwnerID})
	defer func() { done(err) }()

	horizon := req.HorizonDays
	if horizon < 0 {
		return nil, &contract.ViewError{Code: contract.ErrInvalidHorizon, Message: fmt.Sprintf("horizon %d must not be negative", horizon)}
	}
	if horizon == 0 {
		horizon = s.settings.HorizonDays
	}

	today := s.today(req.Now)
	through, err := calendar.AddDays(today, horizon)
	if err != nil {
		return nil, err
	}
	groups, err := s.upcoming(ctx, req.OwnerID, today, horizon)
	if err != nil {
		return nil, err
	}
	return &contract.UpcomingResponse{
		Today:       today,
		Through:     through,
		HorizonDays: horizon,
		Groups:      groups,
	}, nil
}

func (s *calendarService) upcoming(ctx context.Context, ownerID, today string, horizon int) ([]domain.UpcomingGroup, error) {
	through, err := calendar.AddDays(today, horizon)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListByOwnerInDateRange(ctx, ownerID, today, through, domain.StatusDone)
	if err != nil {
		return nil, err
	}
	return agenda.GroupUpcoming(tasks, today, horizon)
}

// defaultSelection picks today when it falls inside the month, else the 1st.
func defaultSelection(year int, month time.Month, today string) (string, error) {
	first, last, err := calendar.MonthBounds(year, month)
	if err != nil {
		return "", err
	}
	if today >= first && today <= last {
		return today, nil
	}
	return first, nil
}
