package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewCalendar ViewID = iota
	ViewForm
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// inputCapturer is implemented by views that sometimes own the keyboard,
// such as while a text input is focused.
type inputCapturer interface {
	CapturesInput() bool
}

// viewCapturesInput reports whether v wants every key, bypassing global
// bindings like q.
func viewCapturesInput(v View) bool {
	if c, ok := v.(inputCapturer); ok {
		return c.CapturesInput()
	}
	return false
}
