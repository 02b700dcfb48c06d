package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/koyomi/internal/cli"
	"github.com/alexanderramin/koyomi/internal/config"
	"github.com/alexanderramin/koyomi/internal/db"
	"github.com/alexanderramin/koyomi/internal/holiday"
	"github.com/alexanderramin/koyomi/internal/repository"
	"github.com/alexanderramin/koyomi/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Bundled holidays, optionally extended by a user file.
	fallback := holiday.JapanDefaults()
	if cfg.HolidayFile != "" {
		extra, err := holiday.LoadFile(cfg.HolidayFile)
		if err != nil {
			return fmt.Errorf("KOYOMI_HOLIDAYS: %w", err)
		}
		fallback = fallback.Merge(extra)
	}

	var observer service.UseCaseObserver
	if cfg.LogCalls {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	holidayRepo := repository.NewSQLiteHolidayRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	holidaySvc := service.NewHolidayService(holidayRepo, uow, fallback, observer)
	app := &cli.App{
		Tasks: service.NewTaskService(taskRepo, observer),
		Calendar: service.NewCalendarService(taskRepo, holidaySvc, service.CalendarSettings{
			Location:    cfg.Location,
			WeekStart:   cfg.WeekStart,
			HorizonDays: cfg.HorizonDays,
		}, observer),
		Holidays: holidaySvc,
		Profiles: service.NewProfileService(profileRepo),
		Import:   service.NewImportService(taskRepo, uow, observer),

		Owner:       cfg.Owner,
		Location:    cfg.Location,
		WeekStart:   cfg.WeekStart,
		HorizonDays: cfg.HorizonDays,
	}

	if cfg.GoogleAPIKey != "" {
		app.HolidaySource = func(ctx context.Context) (service.HolidaySource, error) {
			return holiday.NewGoogleSource(ctx, cfg.GoogleAPIKey, cfg.HolidayCalendar)
		}
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	return cli.NewRootCmd(app).Execute()
}
