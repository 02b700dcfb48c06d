package formatter

import (
	"fmt"

	"github.com/alexanderramin/koyomi/internal/calendar"
	"github.com/alexanderramin/koyomi/internal/contract"
	"github.com/alexanderramin/koyomi/internal/domain"
)

// FormatHolidays renders holidays as a table.
func FormatHolidays(list []domain.Holiday) string {
	if len(list) == 0 {
		return Dim("No holidays.") + "\n"
	}
	rows := make([][]string, 0, len(list))
	for _, h := range list {
		day := ""
		if wd, err := calendar.WeekdayOf(h.Date); err == nil {
			day = WeekdayColor(wd).Render(wd.String()[:3])
		}
		rows = append(rows, []string{h.Date, day, h.Name})
	}
	return RenderTable([]string{"DATE", "DAY", "NAME"}, rows)
}

// FormatHolidaySync summarises a sync run.
func FormatHolidaySync(res *contract.HolidaySyncResult) string {
	return fmt.Sprintf("%s %s\n",
		StyleGreen.Render("✔ Synced"),
		Dim(fmt.Sprintf("%d holidays from %s for %s..%s (%d replaced)", res.Fetched, res.Source, res.From, res.To, res.Removed)))
}

// FormatProfile renders the current owner.
func FormatProfile(p *domain.Profile) string {
	if p.DisplayName == "" {
		return fmt.Sprintf("%s %s\n", Bold(p.ID), Dim("(no display name)"))
	}
	return fmt.Sprintf("%s %s\n", Bold(p.DisplayName), Dim("("+p.ID+")"))
}
