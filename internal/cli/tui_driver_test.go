package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/koyomi/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals
// (view stack, flash line, calendar state) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver prepares the owner like runTUI, builds the appModel for app,
// sizes the terminal and drains Init, which loads the current month
// synchronously from in-memory SQLite.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	if err := ensureOwner(context.Background(), app); err != nil {
		t.Fatalf("ensuring owner: %v", err)
	}

	d := teatest.New(t, newAppModel(app), teatest.WithSize(160, 50))
	d.Start()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// Flash returns the current flash line.
func (d *TestDriver) Flash() string {
	return d.appModel().flash
}

// Calendar returns the calendar view at the bottom of the stack.
func (d *TestDriver) Calendar() *calendarView {
	d.T.Helper()
	m := d.appModel()
	cv, ok := m.viewStack[0].(*calendarView)
	if !ok {
		d.T.Fatalf("bottom view is %T, want *calendarView", m.viewStack[0])
	}
	return cv
}

// Selected returns the calendar's selected date.
func (d *TestDriver) Selected() string {
	return d.Calendar().selected
}
