package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/koyomi/internal/calendar"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
// The title is user text and is rendered as written.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(title)
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// HorizonLabel describes date relative to today: "Today", "Tomorrow",
// "In 3d", "Yesterday" or "2d ago". Malformed dates are returned as is.
func HorizonLabel(date, today string) string {
	days, err := calendar.DaysBetween(today, date)
	if err != nil {
		return date
	}
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0:
		return fmt.Sprintf("In %dd", days)
	default:
		return fmt.Sprintf("%dd ago", -days)
	}
}

// HorizonLabelStyled returns HorizonLabel with urgency coloring applied.
func HorizonLabelStyled(date, today string) string {
	text := HorizonLabel(date, today)
	days, err := calendar.DaysBetween(today, date)
	switch {
	case err != nil:
		return StyleDim.Render(text)
	case days <= 1:
		return StyleRed.Render(text)
	case days <= 3:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// LongDate renders a date as "Sun, Jun 15 2025".
func LongDate(date string) string {
	t, err := calendar.ParseDate(date, nil)
	if err != nil {
		return date
	}
	return t.Format("Mon, Jan 2 2006")
}

// TimeRange renders a task's start and end times: "09:00–10:30",
// "09:00" or "" when unset.
func TimeRange(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == "":
		return "–" + end
	default:
		return start + "–" + end
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Truncate shortens s to at most width terminal cells, ending with "…"
// when cut. Wide (CJK) characters count as two cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if used+w > width-1 {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + "…"
}

// PadRight pads s with spaces to width terminal cells.
func PadRight(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
