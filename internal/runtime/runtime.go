// Package runtime drives views against the merged event stream.
//
// Run pulls one event at a time, hands it to the active view's Update, and
// redraws the view when Update does not complete it. A view may call Run on
// another view from inside Update; the caller's loop is suspended until the
// nested run returns.
//
// An Exit event ends the whole stack cooperatively: the run that receives it
// returns ErrExit, and the exit is remembered on the Runtime so that every
// enclosing run also returns ErrExit as soon as control comes back to it.
// Callers are expected to release the terminal afterwards.
package runtime

import (
	"errors"
	"fmt"

	"github.com/atomicstack/viewloop/internal/event"
	"github.com/atomicstack/viewloop/internal/logging"
	"github.com/atomicstack/viewloop/internal/logging/events"
	"github.com/atomicstack/viewloop/internal/widget"
)

// ErrExit is returned by Run once the event pipeline has closed.
var ErrExit = errors.New("event stream closed")

// Driver is the terminal side of the loop.
type Driver interface {
	// NextEvent blocks for the next event and returns event.Exit once the
	// stream is closed.
	NextEvent() event.Event
	// Draw invokes render against a fresh frame. Failures are absorbed.
	Draw(render func(*widget.Frame))
}

// View is a unit of interaction producing a result of type R.
type View[R any] interface {
	// Update consumes one event. Returning true completes the view with the
	// given result.
	Update(ev event.Event, rt *Runtime) (R, bool)
	// Render paints the current state into the frame.
	Render(f *widget.Frame)
}

// Runtime owns the driver for a stack of nested runs. It must only be used
// from the goroutine that owns the views.
type Runtime struct {
	driver Driver
	exited bool
	depth  int
}

// New returns a runtime pulling events from d.
func New(d Driver) *Runtime {
	return &Runtime{driver: d}
}

// Exited reports whether an Exit event has been observed.
func (rt *Runtime) Exited() bool {
	return rt.exited
}

// Depth returns the number of runs currently on the stack.
func (rt *Runtime) Depth() int {
	return rt.depth
}

// Run drives v until it completes or the event stream closes.
func Run[R any](rt *Runtime, v View[R]) (R, error) {
	var zero R
	if rt == nil || rt.driver == nil {
		return zero, errors.New("runtime has no driver")
	}
	if rt.exited {
		return zero, ErrExit
	}

	var name string
	if logging.TraceEnabled() {
		name = fmt.Sprintf("%T", v)
	}
	rt.depth++
	depth := rt.depth
	events.Runtime.Enter(name, depth)
	defer func() {
		rt.depth--
		events.Runtime.Leave(name, depth)
	}()

	for {
		ev := rt.driver.NextEvent()
		if ev.IsExit() {
			rt.exited = true
			events.Runtime.Exit(name, depth)
			return zero, ErrExit
		}
		result, done := v.Update(ev, rt)
		// A nested run inside Update saw Exit.
		if rt.exited {
			return zero, ErrExit
		}
		if done {
			return result, nil
		}
		rt.driver.Draw(v.Render)
	}
}
