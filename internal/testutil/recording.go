package testutil

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Calls recorded by RecordingScreen.
const (
	CallClear      = "clear"
	CallShowCursor = "show-cursor"
	CallHideCursor = "hide-cursor"
	CallFini       = "fini"
)

// RecordingScreen wraps a simulation screen and logs the calls that take
// over and hand back the terminal.
type RecordingScreen struct {
	tcell.SimulationScreen

	mu    sync.Mutex
	calls []string
}

// NewRecordingScreen returns an uninitialised recording screen.
func NewRecordingScreen() *RecordingScreen {
	return &RecordingScreen{SimulationScreen: tcell.NewSimulationScreen("")}
}

func (r *RecordingScreen) record(call string) {
	r.mu.Lock()
	r.calls = append(r.calls, call)
	r.mu.Unlock()
}

func (r *RecordingScreen) Clear() {
	r.record(CallClear)
	r.SimulationScreen.Clear()
}

func (r *RecordingScreen) ShowCursor(x, y int) {
	r.record(CallShowCursor)
	r.SimulationScreen.ShowCursor(x, y)
}

func (r *RecordingScreen) HideCursor() {
	r.record(CallHideCursor)
	r.SimulationScreen.HideCursor()
}

func (r *RecordingScreen) Fini() {
	r.record(CallFini)
	r.SimulationScreen.Fini()
}

// Calls returns the recorded calls in order.
func (r *RecordingScreen) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// Restored reports whether the last recorded calls are the clear, cursor
// show and finalise that return the terminal to the shell.
func (r *RecordingScreen) Restored() bool {
	calls := r.Calls()
	want := []string{CallClear, CallShowCursor, CallFini}
	if len(calls) < len(want) {
		return false
	}
	tail := calls[len(calls)-len(want):]
	for i := range want {
		if tail[i] != want[i] {
			return false
		}
	}
	return true
}
