// Package config loads runtime settings from KOYOMI_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/koyomi/internal/agenda"
	"github.com/alexanderramin/koyomi/internal/calendar"
	"github.com/alexanderramin/koyomi/internal/holiday"
	"github.com/caarlos0/env"
)

// DefaultOwner is the owner id used when KOYOMI_OWNER is unset.
const DefaultOwner = "default"

// Env mirrors the raw environment.
type Env struct {
	DBPath          string `env:"KOYOMI_DB"`
	Timezone        string `env:"KOYOMI_TZ" envDefault:"Asia/Tokyo"`
	WeekStart       string `env:"KOYOMI_WEEK_START" envDefault:"sunday"`
	HorizonDays     int    `env:"KOYOMI_HORIZON_DAYS" envDefault:"7"`
	Owner           string `env:"KOYOMI_OWNER" envDefault:"default"`
	HolidayFile     string `env:"KOYOMI_HOLIDAYS"`
	LogCalls        bool   `env:"KOYOMI_LOG_CALLS"`
	GoogleAPIKey    string `env:"KOYOMI_GOOGLE_API_KEY"`
	HolidayCalendar string `env:"KOYOMI_HOLIDAY_CALENDAR"`
}

// Config is the resolved configuration.
type Config struct {
	DBPath          string
	Location        *time.Location
	WeekStart       calendar.WeekStart
	HorizonDays     int
	Owner           string
	HolidayFile     string
	LogCalls        bool
	GoogleAPIKey    string
	HolidayCalendar string
}

// Load parses the environment and resolves it.
func Load() (*Config, error) {
	var raw Env
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return raw.Resolve()
}

// Resolve validates raw values and fills derived defaults.
func (e Env) Resolve() (*Config, error) {
	loc, err := calendar.LoadLocation(e.Timezone)
	if err != nil {
		return nil, fmt.Errorf("KOYOMI_TZ: %w", err)
	}
	ws, err := calendar.ParseWeekStart(e.WeekStart)
	if err != nil {
		return nil, fmt.Errorf("KOYOMI_WEEK_START: %w", err)
	}
	if e.HorizonDays < 0 {
		return nil, fmt.Errorf("KOYOMI_HORIZON_DAYS: %d must not be negative", e.HorizonDays)
	}
	if e.HorizonDays == 0 {
		e.HorizonDays = agenda.DefaultHorizonDays
	}
	if e.Owner == "" {
		e.Owner = DefaultOwner
	}

	dbPath := e.DBPath
	if dbPath == "" {
		dbPath, err = DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}

	cal := e.HolidayCalendar
	if cal == "" {
		cal = holiday.DefaultGoogleCalendarID
	}

	return &Config{
		DBPath:          dbPath,
		Location:        loc,
		WeekStart:       ws,
		HorizonDays:     e.HorizonDays,
		Owner:           e.Owner,
		HolidayFile:     e.HolidayFile,
		LogCalls:        e.LogCalls,
		GoogleAPIKey:    e.GoogleAPIKey,
		HolidayCalendar: cal,
	}, nil
}

// DefaultDBPath returns ~/.koyomi/koyomi.db.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".koyomi", "koyomi.db"), nil
}
