// Package teatest drives bubbletea models synchronously in tests.
//
// A Driver calls Update directly and runs every returned Cmd inline, so a
// test can press keys and assert on the rendered view without a tea.Program
// or terminal. Batches run in order and sequences run step by step. Cmds
// that block (cursor blink timers) are abandoned after a short timeout.
package teatest

import (
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDepth bounds how many chained Cmds one Send may run.
const MaxDepth = 100

// cmdTimeout separates message factories and store calls (microseconds)
// from timer Cmds such as cursor blink (hundreds of milliseconds).
const cmdTimeout = 10 * time.Millisecond

// Driver feeds messages to a tea.Model and drains the resulting Cmds.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg has been produced. Later sends are
	// ignored, matching a program that has exited.
	Quitting bool

	// Msgs records every message delivered to the model, oldest first.
	Msgs []tea.Msg
}

// Option configures a Driver.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.deliver(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// New returns a Driver for model. Call Start to run the model's Init Cmd.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start runs Init and everything it produces.
func (d *Driver) Start() {
	d.T.Helper()
	d.run(d.Model.Init(), 0)
}

// Send delivers msg and drains the Cmds it produces.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	d.run(d.deliver(msg), 0)
}

// Press sends one key. Named keys ("enter", "esc", "tab", "shift+tab",
// "up", "down", "left", "right", "space", "ctrl+c") map to their key type;
// anything else is sent as runes.
func (d *Driver) Press(k string) {
	d.T.Helper()
	d.Send(keyMsg(k))
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// View renders the model.
func (d *Driver) View() string {
	return d.Model.View()
}

// Contains reports whether the rendered view contains s.
func (d *Driver) Contains(s string) bool {
	return strings.Contains(d.View(), s)
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"space":     tea.KeySpace,
	"backspace": tea.KeyBackspace,
	"ctrl+c":    tea.KeyCtrlC,
}

func keyMsg(k string) tea.KeyMsg {
	if t, ok := namedKeys[k]; ok {
		if t == tea.KeySpace {
			return tea.KeyMsg{Type: t, Runes: []rune{' '}}
		}
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func (d *Driver) deliver(msg tea.Msg) tea.Cmd {
	d.Msgs = append(d.Msgs, msg)
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	return cmd
}

func (d *Driver) run(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDepth {
		d.T.Logf("teatest: gave up after %d chained commands", MaxDepth)
		return
	}

	msg := execWithTimeout(cmd)
	if msg == nil || isBlink(msg) {
		return
	}

	switch m := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range m {
			d.run(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		d.deliver(m)
		return
	}

	if steps, ok := sequence(msg); ok {
		for _, step := range steps {
			d.run(step, depth+1)
		}
		return
	}

	d.run(d.deliver(msg), depth+1)
}

// sequence unpacks the message produced by tea.Sequence. Its type is
// unexported, so it is recognised by shape.
func sequence(msg tea.Msg) ([]tea.Cmd, bool) {
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice || !strings.HasSuffix(v.Type().String(), "sequenceMsg") {
		return nil, false
	}
	steps := make([]tea.Cmd, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if c, ok := v.Index(i).Interface().(tea.Cmd); ok {
			steps = append(steps, c)
		}
	}
	return steps, true
}

func execWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isBlink matches the cursor package's unexported blink messages.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(reflect.TypeOf(msg).String()), "blink")
}
