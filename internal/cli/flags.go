package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/koyomi/internal/calendar"
	"github.com/alexanderramin/koyomi/internal/domain"
	"github.com/spf13/pflag"
)

// weekStartValue is a pflag.Value for --week-start.
type weekStartValue struct {
	ws  *calendar.WeekStart
	set bool
}

var _ pflag.Value = (*weekStartValue)(nil)

func newWeekStartValue(ws *calendar.WeekStart) *weekStartValue {
	return &weekStartValue{ws: ws}
}

func (v *weekStartValue) String() string {
	if v.ws == nil {
		return calendar.Sunday.String()
	}
	return v.ws.String()
}

func (v *weekStartValue) Set(s string) error {
	ws, err := calendar.ParseWeekStart(s)
	if err != nil {
		return err
	}
	*v.ws = ws
	v.set = true
	return nil
}

func (v *weekStartValue) Type() string { return "sunday|monday" }

// statusValue is a pflag.Value holding an optional task status.
type statusValue struct {
	status *domain.TaskStatus
}

var _ pflag.Value = (*statusValue)(nil)

func (v *statusValue) String() string {
	if v.status == nil {
		return ""
	}
	return string(*v.status)
}

func (v *statusValue) Set(s string) error {
	st := domain.TaskStatus(strings.ToLower(strings.TrimSpace(s)))
	if st == "in-progress" || st == "inprogress" {
		st = domain.StatusInProgress
	}
	if !st.Valid() {
		return fmt.Errorf("must be one of todo, in_progress, done")
	}
	*v.status = st
	return nil
}

func (v *statusValue) Type() string { return "status" }

// priorityValue is a pflag.Value holding an optional task priority.
type priorityValue struct {
	priority *domain.TaskPriority
}

var _ pflag.Value = (*priorityValue)(nil)

func (v *priorityValue) String() string {
	if v.priority == nil {
		return ""
	}
	return string(*v.priority)
}

func (v *priorityValue) Set(s string) error {
	p := domain.TaskPriority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return fmt.Errorf("must be one of low, medium, high")
	}
	*v.priority = p
	return nil
}

func (v *priorityValue) Type() string { return "priority" }

// addFilterFlags registers --search, --status and --priority on fs.
func addFilterFlags(fs *pflag.FlagSet, query *string, status *domain.TaskStatus, priority *domain.TaskPriority) {
	fs.StringVarP(query, "search", "s", "", "Only tasks whose title or description contains this text")
	fs.Var(&statusValue{status: status}, "status", "Only tasks with this status (todo, in_progress, done)")
	fs.Var(&priorityValue{priority: priority}, "priority", "Only tasks with this priority (low, medium, high)")
}
