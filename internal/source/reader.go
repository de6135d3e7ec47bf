package source

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
)

// ErrInterrupted is returned by ScreenReader when an OS signal was relayed
// into the screen's event queue.
var ErrInterrupted = errors.New("input interrupted")

// Poller is the part of tcell.Screen the reader needs.
type Poller interface {
	PollEvent() tcell.Event
}

// ScreenReader reads decoded events from a tcell screen.
type ScreenReader struct {
	Screen Poller
}

// ReadEvent blocks on the screen. A nil event means the screen has been
// finalised and is reported as io.EOF; a terminal read error ends input too.
func (r ScreenReader) ReadEvent() (tcell.Event, error) {
	if r.Screen == nil {
		return nil, io.EOF
	}
	for {
		ev := r.Screen.PollEvent()
		if ev == nil {
			return nil, io.EOF
		}
		// The terminal stops reading after it posts an error, so nothing
		// else will arrive.
		if e, ok := ev.(*tcell.EventError); ok {
			return nil, fmt.Errorf("read terminal: %w", e)
		}
		if intr, ok := ev.(*tcell.EventInterrupt); ok {
			if sig, ok := intr.Data().(os.Signal); ok {
				return nil, fmt.Errorf("%w: %v", ErrInterrupted, sig)
			}
			continue
		}
		return ev, nil
	}
}
