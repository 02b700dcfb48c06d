package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/koyomi/internal/contract"
	"github.com/alexanderramin/koyomi/internal/domain"
)

const timeColumnWidth = 11

// FormatDay renders the ordered task list of one day with a completion bar.
func FormatDay(resp *contract.DayViewResponse) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s · %s", LongDate(resp.Date), HorizonLabel(resp.Date, resp.Today))))
	b.WriteString("\n")
	if resp.IsHoliday {
		b.WriteString(StyleRed.Render("祝 " + resp.HolidayName))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(FormatTaskLines(resp.Tasks, -1))

	if len(resp.Tasks) > 0 {
		done := 0
		for _, t := range resp.Tasks {
			if t.IsDone() {
				done++
			}
		}
		b.WriteString("\n")
		b.WriteString(RenderCompletion(done, len(resp.Tasks), 10))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatTaskLines renders one line per task. cursor is the index drawn as
// selected, or -1 for none.
func FormatTaskLines(tasks []domain.Task, cursor int) string {
	if len(tasks) == 0 {
		return Dim("No tasks.") + "\n"
	}
	var b strings.Builder
	for i, t := range tasks {
		b.WriteString(taskLine(t, i == cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func taskLine(t domain.Task, selected bool) string {
	box := "[ ]"
	title := StyleFg.Render(t.Title)
	if t.IsDone() {
		box = "[x]"
		title = Dim(t.Title)
	} else if t.Status == domain.StatusInProgress {
		box = StyleGreen.Render("[~]")
	}

	pointer := "  "
	if selected {
		pointer = StylePurple.Render("▸ ")
	}
	line := fmt.Sprintf("%s%s %s %s  %s  %s",
		pointer,
		PadRight(StyleBlue.Render(TimeRange(t.StartTime, t.EndTime)), timeColumnWidth),
		box,
		title,
		PriorityBadge(t.Priority),
		TruncID(t.ID),
	)
	if selected {
		return StyleSelected.Render(line)
	}
	return line
}

// FormatTask renders a single task's details in a box.
func FormatTask(t *domain.Task) string {
	rows := [][2]string{
		{"ID", t.ID},
		{"Due", LongDate(t.DueDate)},
		{"Time", CoalesceDash(TimeRange(t.StartTime, t.EndTime))},
		{"Status", StatusPill(t.Status)},
		{"Priority", PriorityBadge(t.Priority)},
		{"Created", t.CreatedAt.Format("2006-01-02 15:04")},
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(PadRight(r[0]+":", 10)), r[1]))
	}
	if t.Description != "" {
		b.WriteString("\n")
		b.WriteString(t.Description)
		b.WriteString("\n")
	}
	return RenderBox(t.Title, strings.TrimRight(b.String(), "\n"))
}

// CoalesceDash returns s, or a dimmed "--" when s is empty.
func CoalesceDash(s string) string {
	if s == "" {
		return Dim("--")
	}
	return s
}

// FormatUpcoming renders the upcoming digest grouped by date.
func FormatUpcoming(resp *contract.UpcomingResponse) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Upcoming · through %s", LongDate(resp.Through))))
	b.WriteString("\n\n")
	b.WriteString(FormatUpcomingGroups(resp.Groups, resp.Today, resp.HorizonDays))
	return b.String()
}

// FormatUpcomingGroups renders groups under relative date labels.
func FormatUpcomingGroups(groups []domain.UpcomingGroup, today string, horizonDays int) string {
	if len(groups) == 0 {
		return Dim(fmt.Sprintf("Nothing due in the next %d days.", horizonDays)) + "\n"
	}
	var b strings.Builder
	for i, g := range groups {
		b.WriteString(fmt.Sprintf("%s  %s\n", HorizonLabelStyled(g.Date, today), Dim(LongDate(g.Date))))
		for _, t := range g.Tasks {
			when := ""
			if tr := TimeRange(t.StartTime, t.EndTime); tr != "" {
				when = "  " + StyleBlue.Render(tr)
			}
			b.WriteString(fmt.Sprintf("  %s %s%s\n", PriorityColor(t.Priority).Render("•"), t.Title, when))
		}
		if i < len(groups)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
