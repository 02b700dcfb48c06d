package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/koyomi/internal/agenda"
	"github.com/alexanderramin/koyomi/internal/domain"
)

const (
	// DefaultCellWidth is the width of a day cell in the full month grid.
	DefaultCellWidth = 14
	compactCellWidth = 6
	previewLines     = agenda.DisplayPreviewLimit
)

// MonthOptions controls FormatMonth.
type MonthOptions struct {
	// Selected is the date drawn as the cursor; "" draws none.
	Selected string
	// CellWidth overrides DefaultCellWidth in the full layout.
	CellWidth int
	// Compact draws one line per week with task counts instead of previews.
	Compact bool
}

// FormatMonth renders an annotated month grid. Full cells show the day
// number, holiday name and the top tasks by priority with a "+N" overflow
// line; compact cells show the day number and task count only.
func FormatMonth(year int, month time.Month, days []domain.CalendarDay, opts MonthOptions) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s %d", month, year)))
	b.WriteString("\n")

	width := opts.CellWidth
	if width <= 0 {
		width = DefaultCellWidth
	}
	if opts.Compact {
		width = compactCellWidth
	}

	if len(days) >= 7 {
		heads := make([]string, 7)
		for i, d := range days[:7] {
			heads[i] = PadRight(WeekdayColor(d.Weekday).Render(d.Weekday.String()[:3]), width)
		}
		b.WriteString(strings.Join(heads, " "))
		b.WriteString("\n")
	}

	for start := 0; start+7 <= len(days); start += 7 {
		week := days[start : start+7]
		if opts.Compact {
			cells := make([]string, 7)
			for i, d := range week {
				cells[i] = compactCell(d, opts.Selected, width)
			}
			b.WriteString(strings.Join(cells, " "))
			b.WriteString("\n")
			continue
		}

		lines := make([][]string, previewLines+2)
		for i := range lines {
			lines[i] = make([]string, 7)
		}
		for col, d := range week {
			for row, text := range fullCell(d, opts.Selected, width) {
				lines[row][col] = text
			}
		}
		for _, line := range lines {
			b.WriteString(strings.TrimRight(strings.Join(line, " "), " "))
			b.WriteString("\n")
		}
		if start+7 < len(days) {
			b.WriteString("\n")
		}
	}

	if legend := holidayLegend(days); legend != "" {
		b.WriteString("\n")
		b.WriteString(legend)
	}
	return b.String()
}

func dayNumber(d domain.CalendarDay) string {
	num := fmt.Sprintf("%2s", strings.TrimLeft(d.Date[8:], "0"))
	if d.IsToday {
		return StyleToday.Render(num)
	}
	return DayColor(d).Render(num)
}

func compactCell(d domain.CalendarDay, selected string, width int) string {
	text := dayNumber(d)
	if n := d.TaskCount(); n > 0 {
		label := fmt.Sprintf("·%d", n)
		if n > 9 {
			label = "·+"
		}
		text += StylePurple.Render(label)
	}
	return cursor(PadRight(text, width), d.Date == selected)
}

func fullCell(d domain.CalendarDay, selected string, width int) []string {
	out := make([]string, 0, previewLines+2)

	head := dayNumber(d)
	if d.IsHoliday && d.IsCurrentMonth {
		head += " " + StyleRed.Render(Truncate(d.HolidayName, width-3))
	}
	out = append(out, head)

	top := agenda.TopTasks(d.Tasks, agenda.DisplayPreviewLimit)
	for _, t := range top {
		out = append(out, previewLine(t, width))
	}
	for len(out) < previewLines+1 {
		out = append(out, "")
	}
	if more := agenda.Overflow(d.TaskCount(), len(top)); more > 0 {
		out = append(out, Dim(fmt.Sprintf("+%d more", more)))
	} else {
		out = append(out, "")
	}

	isSelected := d.Date == selected
	for i := range out {
		out[i] = cursor(PadRight(out[i], width), isSelected)
	}
	return out
}

func previewLine(t domain.Task, width int) string {
	title := Truncate(t.Title, width-2)
	if t.IsDone() {
		return Dim("✔ " + title)
	}
	return PriorityColor(t.Priority).Render("•") + " " + StyleFg.Render(title)
}

func cursor(cell string, selected bool) string {
	if !selected {
		return cell
	}
	return StyleSelected.Render(cell)
}

func holidayLegend(days []domain.CalendarDay) string {
	var parts []string
	for _, d := range days {
		if d.IsHoliday && d.IsCurrentMonth {
			parts = append(parts, StyleRed.Render(d.Date[5:])+" "+d.HolidayName)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return Dim("Holidays: ") + strings.Join(parts, Dim(" · ")) + "\n"
}
