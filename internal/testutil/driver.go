package testutil

import (
	"testing"

	"github.com/atomicstack/viewloop/internal/event"
	"github.com/atomicstack/viewloop/internal/widget"
	"github.com/gdamore/tcell/v2"
)

// Driver feeds a scripted sequence of events to the runtime and draws onto a
// simulation screen. Once the script is exhausted it reports Exit, the same
// way a session does when its input stream closes.
type Driver struct {
	Screen tcell.SimulationScreen
	// Draws counts completed draws.
	Draws int
	// Delivered records every event handed out, Exit included.
	Delivered []event.Event

	script []event.Event
	hooks  map[int]func()
}

// NewDriver returns a driver drawing to a width×height simulation screen.
func NewDriver(t *testing.T, width, height int) *Driver {
	t.Helper()
	screen := NewScreen(t, width, height)
	t.Cleanup(screen.Fini)
	return &Driver{Screen: screen, hooks: map[int]func(){}}
}

// Push appends events to the script.
func (d *Driver) Push(evs ...event.Event) *Driver {
	d.script = append(d.script, evs...)
	return d
}

// PushKeys appends key presses to the script.
func (d *Driver) PushKeys(keys ...*tcell.EventKey) *Driver {
	for _, k := range keys {
		d.script = append(d.script, event.Input(k))
	}
	return d
}

// Before registers fn to run just before the n-th event (zero based) is
// delivered. It lets tests look at the screen or view state mid-run.
func (d *Driver) Before(n int, fn func()) *Driver {
	d.hooks[n] = fn
	return d
}

// Remaining returns the number of scripted events not yet delivered.
func (d *Driver) Remaining() int {
	return len(d.script)
}

// NextEvent implements runtime.Driver.
func (d *Driver) NextEvent() event.Event {
	if fn, ok := d.hooks[len(d.Delivered)]; ok {
		fn()
	}
	ev := event.Exit
	if len(d.script) > 0 {
		ev = d.script[0]
		d.script = d.script[1:]
	}
	d.Delivered = append(d.Delivered, ev)
	return ev
}

// Draw implements runtime.Driver.
func (d *Driver) Draw(render func(*widget.Frame)) {
	d.Screen.Clear()
	render(widget.NewFrame(d.Screen))
	d.Screen.Show()
	d.Draws++
}

// Capture returns the current screen content.
func (d *Driver) Capture() string {
	return Capture(d.Screen)
}

// Row returns one screen row.
func (d *Driver) Row(y int) string {
	return Row(d.Screen, y)
}
