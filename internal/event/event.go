// Package event defines the single value type that flows from the input and
// tick producers to the view runtime.
package event

import "github.com/gdamore/tcell/v2"

// Kind identifies which variant an Event carries.
type Kind int

const (
	// KindInput wraps a decoded terminal event (key press, resize, mouse).
	KindInput Kind = iota
	// KindTick is the periodic frame timer.
	KindTick
	// KindExit means the event pipeline is closed for good.
	KindExit
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindTick:
		return "tick"
	case KindExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Event is one of Input, Tick or Exit. It is passed by value and never
// shared between goroutines after it has been sent.
type Event struct {
	Kind Kind
	Raw  tcell.Event
}

var (
	// Tick is the timer event.
	Tick = Event{Kind: KindTick}
	// Exit is the terminal event; no further events follow it.
	Exit = Event{Kind: KindExit}
)

// Input wraps a raw terminal event.
func Input(raw tcell.Event) Event {
	return Event{Kind: KindInput, Raw: raw}
}

// IsExit reports whether the event ends the session.
func (e Event) IsExit() bool {
	return e.Kind == KindExit
}

// Key returns the key press carried by an input event, if any.
func (e Event) Key() (*tcell.EventKey, bool) {
	if e.Kind != KindInput || e.Raw == nil {
		return nil, false
	}
	key, ok := e.Raw.(*tcell.EventKey)
	return key, ok
}

// String renders the event for trace output.
func (e Event) String() string {
	if key, ok := e.Key(); ok {
		return "input:" + key.Name()
	}
	return e.Kind.String()
}
