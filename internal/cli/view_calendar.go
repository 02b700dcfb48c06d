package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/koyomi/internal/agenda"
	"github.com/alexanderramin/koyomi/internal/calendar"
	"github.com/alexanderramin/koyomi/internal/cli/formatter"
	"github.com/alexanderramin/koyomi/internal/contract"
	"github.com/alexanderramin/koyomi/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// fullGridWidth is the width of the full month grid (7 cells + gaps).
	fullGridWidth  = 7*formatter.DefaultCellWidth + 6
	sidePanelWidth = 44
	panelGap       = 4
)

// monthLoadedMsg carries a month view. gen identifies the request; only
// the newest one is applied.
type monthLoadedMsg struct {
	gen  int
	resp *contract.MonthViewResponse
	err  error
}

type calendarKeyMap struct {
	PrevDay   key.Binding
	NextDay   key.Binding
	PrevWeek  key.Binding
	NextWeek  key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	NextTask  key.Binding
	PrevTask  key.Binding
	Add       key.Binding
	Edit      key.Binding
	Toggle    key.Binding
	Delete    key.Binding
	Search    key.Binding
	Compact   key.Binding
	Refresh   key.Binding
}

func defaultCalendarKeys() calendarKeyMap {
	return calendarKeyMap{
		PrevDay:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/l", "day")),
		NextDay:   key.NewBinding(key.WithKeys("l", "right")),
		PrevWeek:  key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("j/k", "week")),
		NextWeek:  key.NewBinding(key.WithKeys("j", "down")),
		PrevMonth: key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "month")),
		NextMonth: key.NewBinding(key.WithKeys("]")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		NextTask:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "task")),
		PrevTask:  key.NewBinding(key.WithKeys("shift+tab")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Toggle:    key.NewBinding(key.WithKeys("x", " "), key.WithHelp("x", "done")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Compact:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compact")),
		Refresh:   key.NewBinding(key.WithKeys("r")),
	}
}

// calendarView is the month grid with the selected day's tasks and the
// upcoming digest beside it.
type calendarView struct {
	state *SharedState
	keys  calendarKeyMap

	year     int
	month    time.Month
	selected string
	resp     *contract.MonthViewResponse
	dayTasks []domain.Task
	cursor   int

	// gen is bumped per request; stale responses are dropped.
	gen     int
	loading bool
	err     error

	compact   bool
	filter    agenda.Filter
	search    textinput.Model
	searching bool

	panel viewport.Model
}

func newCalendarView(state *SharedState) *calendarView {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search titles and descriptions"
	ti.CharLimit = 80

	return &calendarView{
		state:   state,
		keys:    defaultCalendarKeys(),
		loading: true,
		search:  ti,
		panel:   viewport.New(sidePanelWidth, 10),
	}
}

func (v *calendarView) ID() ViewID { return ViewCalendar }

func (v *calendarView) Title() string {
	if v.resp == nil {
		return "Calendar"
	}
	return fmt.Sprintf("%s %d", v.resp.Month, v.resp.Year)
}

func (v *calendarView) ShortHelp() []key.Binding {
	return []key.Binding{
		v.keys.PrevDay, v.keys.PrevWeek, v.keys.PrevMonth, v.keys.Today,
		v.keys.NextTask, v.keys.Add, v.keys.Edit, v.keys.Toggle, v.keys.Delete,
		v.keys.Search, v.keys.Compact,
	}
}

// CapturesInput is true while the search box is focused.
func (v *calendarView) CapturesInput() bool { return v.searching }

func (v *calendarView) Init() tea.Cmd {
	return v.load()
}

// load requests the view for the current year, month and selection.
func (v *calendarView) load() tea.Cmd {
	return v.loadMonth(v.year, v.month, v.selected)
}

// loadMonth requests a month without touching the displayed one. The view's
// month and selection change only when the response is applied, so a
// failed load leaves navigation where the user can see it.
func (v *calendarView) loadMonth(year int, month time.Month, selected string) tea.Cmd {
	v.gen++
	v.loading = true
	gen := v.gen
	app := v.state.App
	req := contract.NewMonthViewRequest(app.Owner)
	req.Year, req.Month = year, month
	req.SelectedDate = selected
	req.Filter = v.filter
	req.Now = app.nowPtr()

	return func() tea.Msg {
		resp, err := app.Calendar.MonthView(context.Background(), req)
		return monthLoadedMsg{gen: gen, resp: resp, err: err}
	}
}

func (v *calendarView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case monthLoadedMsg:
		if msg.gen != v.gen {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			// Keep showing the last good month.
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.apply(msg.resp)
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.WindowSizeMsg:
		v.resizePanel()
		return v, nil

	case tea.KeyMsg:
		if v.searching {
			return v.updateSearch(msg)
		}
		return v.handleKey(msg)
	}

	if v.searching {
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *calendarView) apply(resp *contract.MonthViewResponse) {
	if resp.SelectedDate != v.selected {
		v.cursor = 0
	}
	v.resp = resp
	v.year, v.month = resp.Year, resp.Month
	v.selected = resp.SelectedDate
	v.dayTasks = resp.DayTasks
	v.clampCursor()
}

func (v *calendarView) clampCursor() {
	if v.cursor >= len(v.dayTasks) {
		v.cursor = len(v.dayTasks) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *calendarView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.PrevDay):
		return v, v.moveDays(-1)
	case key.Matches(msg, v.keys.NextDay):
		return v, v.moveDays(1)
	case key.Matches(msg, v.keys.PrevWeek):
		return v, v.moveDays(-7)
	case key.Matches(msg, v.keys.NextWeek):
		return v, v.moveDays(7)
	case key.Matches(msg, v.keys.PrevMonth):
		return v, v.moveMonths(-1)
	case key.Matches(msg, v.keys.NextMonth):
		return v, v.moveMonths(1)
	case key.Matches(msg, v.keys.Today):
		v.cursor = 0
		return v, v.loadMonth(0, 0, "")
	case key.Matches(msg, v.keys.NextTask):
		if len(v.dayTasks) > 0 {
			v.cursor = (v.cursor + 1) % len(v.dayTasks)
		}
	case key.Matches(msg, v.keys.PrevTask):
		if len(v.dayTasks) > 0 {
			v.cursor = (v.cursor - 1 + len(v.dayTasks)) % len(v.dayTasks)
		}
	case key.Matches(msg, v.keys.Add):
		if v.selected != "" {
			return v, execAddTask(v.state, v.selected)
		}
	case key.Matches(msg, v.keys.Edit):
		if t, ok := v.cursorTask(); ok {
			return v, execEditTask(v.state, t)
		}
	case key.Matches(msg, v.keys.Toggle):
		if t, ok := v.cursorTask(); ok {
			return v, execToggleDone(v.state, t)
		}
	case key.Matches(msg, v.keys.Delete):
		if t, ok := v.cursorTask(); ok {
			return v, execConfirmDelete(v.state, t)
		}
	case key.Matches(msg, v.keys.Search):
		v.searching = true
		v.search.SetValue(v.filter.Query)
		v.search.CursorEnd()
		return v, v.search.Focus()
	case key.Matches(msg, v.keys.Compact):
		v.compact = !v.compact
	case key.Matches(msg, v.keys.Refresh):
		return v, v.load()
	}
	return v, nil
}

func (v *calendarView) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		v.searching = false
		v.search.Blur()
		v.filter.Query = strings.TrimSpace(v.search.Value())
		v.cursor = 0
		return v, v.load()
	case tea.KeyEsc:
		v.searching = false
		v.search.Blur()
		if v.filter.Query == "" {
			return v, nil
		}
		v.filter.Query = ""
		v.cursor = 0
		return v, v.load()
	}
	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	return v, cmd
}

func (v *calendarView) cursorTask() (domain.Task, bool) {
	if v.cursor < 0 || v.cursor >= len(v.dayTasks) {
		return domain.Task{}, false
	}
	return v.dayTasks[v.cursor], true
}

// moveDays moves the selection by n days. Inside the loaded month the day
// list is taken from the grid; crossing into another month reloads.
func (v *calendarView) moveDays(n int) tea.Cmd {
	if v.selected == "" {
		return nil
	}
	next, err := calendar.AddDays(v.selected, n)
	if err != nil {
		return nil
	}
	year, month, err := calendar.MonthOf(next)
	if err != nil {
		return nil
	}
	if v.resp != nil && year == v.resp.Year && month == v.resp.Month {
		if day, ok := v.resp.Day(next); ok {
			v.selected = next
			v.cursor = 0
			v.resp.SelectedDate = next
			v.dayTasks = v.filter.Apply(day.Tasks)
			return nil
		}
	}
	return v.loadMonth(year, month, next)
}

// moveMonths steps from the month on screen and selects the 1st.
func (v *calendarView) moveMonths(n int) tea.Cmd {
	if v.year == 0 {
		return nil
	}
	year, month := calendar.ShiftMonth(v.year, v.month, n)
	return v.loadMonth(year, month, "")
}

func (v *calendarView) useCompactGrid() bool {
	return v.compact || (v.state.Width > 0 && v.state.Width < fullGridWidth)
}

func (v *calendarView) sideBySide() bool {
	grid := fullGridWidth
	if v.useCompactGrid() {
		grid = 7*6 + 6
	}
	return v.state.Width >= grid+panelGap+sidePanelWidth
}

func (v *calendarView) resizePanel() {
	v.panel.Width = sidePanelWidth
	if !v.sideBySide() && v.state.Width > 0 {
		v.panel.Width = v.state.Width
	}
	v.panel.Height = v.state.ContentHeight()
}

func (v *calendarView) View() string {
	if v.resp == nil {
		if v.err != nil {
			return "\n  " + errorLine(v.err)
		}
		return "\n  " + formatter.Dim("Loading calendar...")
	}

	grid := formatter.FormatMonth(v.resp.Year, v.resp.Month, v.resp.Days, formatter.MonthOptions{
		Selected: v.selected,
		Compact:  v.useCompactGrid(),
	})

	panel, cursorLine := v.renderPanel()
	v.resizePanel()
	if !v.sideBySide() {
		if h := v.state.ContentHeight() - lipgloss.Height(grid); h > 3 {
			v.panel.Height = h
		} else {
			v.panel.Height = 3
		}
	}
	v.panel.SetContent(panel)
	v.scrollTo(cursorLine)

	var body string
	if v.sideBySide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, grid, strings.Repeat(" ", panelGap), v.panel.View())
	} else {
		body = grid + "\n" + v.panel.View()
	}

	var footer []string
	if v.searching {
		footer = append(footer, v.search.View())
	} else if v.filter.Query != "" {
		footer = append(footer, formatter.Dim(fmt.Sprintf("filter: %q (/ to change, esc in filter to clear)", v.filter.Query)))
	}
	if v.err != nil {
		footer = append(footer, errorLine(v.err))
	}
	if len(footer) > 0 {
		body += "\n" + strings.Join(footer, "\n")
	}
	return body
}

// renderPanel returns the day list and upcoming digest, and the line index
// of the task cursor.
func (v *calendarView) renderPanel() (string, int) {
	var b strings.Builder
	date := v.selected
	b.WriteString(formatter.StyleHeader.Render(formatter.LongDate(date)))
	b.WriteString(" " + formatter.Dim(formatter.HorizonLabel(date, v.resp.Today)))
	b.WriteString("\n")
	lines := 1
	if day, ok := v.resp.Day(date); ok && day.IsHoliday {
		b.WriteString(formatter.StyleRed.Render("祝 "+day.HolidayName) + "\n")
		lines++
	}
	b.WriteString("\n")
	lines++
	cursorLine := lines + v.cursor

	cursor := -1
	if len(v.dayTasks) > 0 {
		cursor = v.cursor
	}
	b.WriteString(formatter.FormatTaskLines(v.dayTasks, cursor))

	b.WriteString("\n")
	b.WriteString(formatter.StyleHeader.Render("UPCOMING"))
	b.WriteString("\n")
	b.WriteString(formatter.FormatUpcomingGroups(v.resp.Upcoming, v.resp.Today, v.state.App.horizonDays()))
	return b.String(), cursorLine
}

func (v *calendarView) scrollTo(line int) {
	switch {
	case line < v.panel.YOffset:
		v.panel.SetYOffset(line)
	case line >= v.panel.YOffset+v.panel.Height:
		v.panel.SetYOffset(line - v.panel.Height + 1)
	}
}
