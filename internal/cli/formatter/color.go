package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/koyomi/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
	ColorBg     = lipgloss.Color("#3c3836")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)

	StyleToday    = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true).Underline(true)
	StyleSelected = lipgloss.NewStyle().Background(ColorBg).Bold(true)
)

// PriorityColor returns the style for a task priority.
func PriorityColor(p domain.TaskPriority) lipgloss.Style {
	switch p {
	case domain.PriorityHigh:
		return StyleRed
	case domain.PriorityMedium:
		return StyleYellow
	case domain.PriorityLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// PriorityLabel returns the human label for a priority.
func PriorityLabel(p domain.TaskPriority) string {
	switch p {
	case domain.PriorityHigh:
		return "High"
	case domain.PriorityMedium:
		return "Medium"
	case domain.PriorityLow:
		return "Low"
	default:
		return string(p)
	}
}

// PriorityBadge returns a colored priority indicator such as "● High".
func PriorityBadge(p domain.TaskPriority) string {
	return PriorityColor(p).Render("● " + PriorityLabel(p))
}

// StatusLabel returns the human label for a status.
func StatusLabel(s domain.TaskStatus) string {
	switch s {
	case domain.StatusTodo:
		return "Todo"
	case domain.StatusInProgress:
		return "In Progress"
	case domain.StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

// StatusPill returns a colored status indicator for a task status.
func StatusPill(s domain.TaskStatus) string {
	switch s {
	case domain.StatusTodo:
		return StyleBlue.Render("○ " + StatusLabel(s))
	case domain.StatusInProgress:
		return StyleGreen.Render("● " + StatusLabel(s))
	case domain.StatusDone:
		return StyleDim.Render("✔ " + StatusLabel(s))
	default:
		return StyleDim.Render(string(s))
	}
}

// DayColor returns the style of a day number: holidays and Sundays red,
// Saturdays blue, days outside the month dim.
func DayColor(day domain.CalendarDay) lipgloss.Style {
	switch {
	case !day.IsCurrentMonth:
		return StyleDim
	case day.IsHoliday || day.Weekday == time.Sunday:
		return StyleRed
	case day.Weekday == time.Saturday:
		return StyleBlue
	default:
		return StyleFg
	}
}

// WeekdayColor returns the style of a weekday column heading.
func WeekdayColor(d time.Weekday) lipgloss.Style {
	switch d {
	case time.Sunday:
		return StyleRed
	case time.Saturday:
		return StyleBlue
	default:
		return StyleDim
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
