package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/koyomi/internal/agenda"
	"github.com/alexanderramin/koyomi/internal/calendar"
	"github.com/alexanderramin/koyomi/internal/cli/formatter"
	"github.com/alexanderramin/koyomi/internal/contract"
	"github.com/spf13/cobra"
)

// parseMonthArg accepts YYYY-MM, or a bare month number in the current year.
func parseMonthArg(s, today string) (int, time.Month, error) {
	s = strings.TrimSpace(s)
	if y, m, ok := strings.Cut(s, "-"); ok {
		year, err := strconv.Atoi(y)
		if err != nil || len(y) != 4 {
			return 0, 0, fmt.Errorf("invalid month %q (expected YYYY-MM)", s)
		}
		month, err := strconv.Atoi(m)
		if err != nil || month < 1 || month > 12 {
			return 0, 0, fmt.Errorf("invalid month %q (expected YYYY-MM)", s)
		}
		return year, time.Month(month), nil
	}
	month, err := strconv.Atoi(s)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month %q (expected YYYY-MM)", s)
	}
	year, _, err := calendar.MonthOf(today)
	if err != nil {
		return 0, 0, err
	}
	return year, time.Month(month), nil
}

func newMonthCmd(app *App) *cobra.Command {
	var (
		asJSON   bool
		compact  bool
		selected string
		offset   int
	)
	weekStart := app.WeekStart
	wsFlag := newWeekStartValue(&weekStart)

	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show a month grid with tasks and holidays",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewMonthViewRequest(app.Owner)
			req.Now = app.nowPtr()
			req.SelectedDate = selected
			if wsFlag.set {
				req.WeekStart = &weekStart
			}

			year, month, err := calendar.MonthOf(app.today())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if year, month, err = parseMonthArg(args[0], app.today()); err != nil {
					return err
				}
			}
			req.Year, req.Month = calendar.ShiftMonth(year, month, offset)

			resp, err := app.Calendar.MonthView(cmd.Context(), req)
			if err != nil {
				return err
			}
			return render(cmd, asJSON, resp, func() string {
				return formatter.FormatMonth(resp.Year, resp.Month, resp.Days, formatter.MonthOptions{
					Selected: resp.SelectedDate,
					Compact:  compact,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&compact, "compact", "c", false, "One line per week with task counts")
	cmd.Flags().StringVar(&selected, "select", "", "Date to highlight (YYYY-MM-DD)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Shift by this many months (e.g. -1 for the previous month)")
	cmd.Flags().Var(wsFlag, "week-start", "First column of the week")
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newDayCmd(app *App) *cobra.Command {
	var (
		asJSON bool
		filter agenda.Filter
	)

	cmd := &cobra.Command{
		Use:   "day [DATE]",
		Short: "List a day's tasks (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.DayViewRequest{OwnerID: app.Owner, Filter: filter, Now: app.nowPtr()}
			if len(args) == 1 {
				date, err := resolveDateArg(args[0], app.today())
				if err != nil {
					return err
				}
				req.Date = date
			}

			resp, err := app.Calendar.DayView(cmd.Context(), req)
			if err != nil {
				return err
			}
			return render(cmd, asJSON, resp, func() string {
				return formatter.FormatDay(resp)
			})
		},
	}

	addFilterFlags(cmd.Flags(), &filter.Query, &filter.Status, &filter.Priority)
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newUpcomingCmd(app *App) *cobra.Command {
	var (
		asJSON bool
		days   int
	)

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Show unfinished tasks due soon, grouped by date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Calendar.Upcoming(cmd.Context(), contract.UpcomingRequest{
				OwnerID:     app.Owner,
				HorizonDays: days,
				Now:         app.nowPtr(),
			})
			if err != nil {
				return err
			}
			return render(cmd, asJSON, resp, func() string {
				return formatter.FormatUpcoming(resp)
			})
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 0, "Horizon in days (default from KOYOMI_HORIZON_DAYS)")
	addJSONFlag(cmd, &asJSON)

	return cmd
}

// resolveDateArg accepts YYYY-MM-DD or the words today, tomorrow and
// yesterday.
func resolveDateArg(s, today string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return today, nil
	case "tomorrow":
		return calendar.AddDays(today, 1)
	case "yesterday":
		return calendar.AddDays(today, -1)
	}
	if _, err := calendar.ParseDate(s, nil); err != nil {
		return "", err
	}
	return s, nil
}
