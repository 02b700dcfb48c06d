package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/koyomi/internal/agenda"
	"github.com/alexanderramin/koyomi/internal/calendar"
	"github.com/alexanderramin/koyomi/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks    service.TaskService
	Calendar service.CalendarService
	Holidays service.HolidayService
	Profiles service.ProfileService
	Import   service.ImportService

	// Owner is the profile every command acts on.
	Owner       string
	Location    *time.Location
	WeekStart   calendar.WeekStart
	HorizonDays int

	// HolidaySource opens the remote feed used by "holiday sync". Nil
	// disables syncing.
	HolidaySource func(ctx context.Context) (service.HolidaySource, error)

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool

	// Now is the clock used for "today". Nil means time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// today is the current date in the configured location.
func (a *App) today() string {
	loc := a.Location
	if loc == nil {
		loc = calendar.DefaultLocation()
	}
	return calendar.Today(a.now(), loc)
}

// nowPtr returns the clock reading for view requests.
func (a *App) nowPtr() *time.Time {
	if a.Now == nil {
		return nil
	}
	now := a.Now()
	return &now
}

func (a *App) horizonDays() int {
	if a.HorizonDays <= 0 {
		return agenda.DefaultHorizonDays
	}
	return a.HorizonDays
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "koyomi" command and registers all
// subcommands against the provided App. Without a subcommand it opens the
// TUI on a terminal and prints help otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "koyomi",
		Short:         "Calendar-first personal task manager",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Owner == "" {
				return fmt.Errorf("owner must not be empty")
			}
			return ensureOwner(cmd.Context(), app)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runTUI(app)
		},
	}

	root.PersistentFlags().StringVar(&app.Owner, "owner", app.Owner, "Profile to act as")

	root.AddCommand(
		newMonthCmd(app),
		newDayCmd(app),
		newUpcomingCmd(app),
		newTaskCmd(app),
		newHolidayCmd(app),
		newWhoamiCmd(app),
		newProfileCmd(app),
		newTUICmd(app),
	)

	return root
}
