// Package session owns the terminal for the lifetime of a run: raw mode, the
// merged event stream, drawing, and restoring the terminal on the way out.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/atomicstack/viewloop/internal/event"
	"github.com/atomicstack/viewloop/internal/logging"
	"github.com/atomicstack/viewloop/internal/logging/events"
	"github.com/atomicstack/viewloop/internal/source"
	"github.com/atomicstack/viewloop/internal/widget"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
)

// Options configures a session.
type Options struct {
	TickInterval time.Duration
	Capacity     int
	// Input overrides the reader feeding the input producer. By default the
	// session reads from its own screen.
	Input source.InputReader
}

// Session is a terminal in raw mode plus the event stream feeding it.
type Session struct {
	screen tcell.Screen
	source *source.Source
	relay  *signalRelay
	id     string

	mu     sync.Mutex
	closed bool
	once   sync.Once
}

// Open takes over the controlling terminal. The screen talks to /dev/tty, so
// redirected stdin is fine; a process without a terminal fails in Init.
func Open(opts Options) (*Session, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return OpenScreen(screen, opts)
}

// OpenScreen initialises screen and starts the producers. On failure the
// screen is left untouched and no session exists.
func OpenScreen(screen tcell.Screen, opts Options) (*Session, error) {
	if screen == nil {
		return nil, errors.New("nil screen")
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.Clear()
	screen.HideCursor()
	screen.Show()

	s := &Session{
		screen: screen,
		id:     uuid.NewString(),
	}
	logging.SetSessionID(s.id)

	input := opts.Input
	if input == nil {
		input = source.ScreenReader{Screen: screen}
	}
	s.source = source.Start(input, source.Options{
		TickInterval: opts.TickInterval,
		Capacity:     opts.Capacity,
	})
	s.relay = startSignalRelay(screen)

	w, h := screen.Size()
	events.Session.Open(w, h)
	return s, nil
}

// ID identifies the session in trace output.
func (s *Session) ID() string {
	return s.id
}

// Size returns the terminal dimensions in cells.
func (s *Session) Size() (int, int) {
	return s.screen.Size()
}

// NextEvent blocks for the next event. A closed stream, or a closed session,
// yields event.Exit.
func (s *Session) NextEvent() event.Event {
	if s.isClosed() {
		return event.Exit
	}
	ev, ok := <-s.source.Events()
	if !ok {
		return event.Exit
	}
	return ev
}

// Draw paints one frame. A render that panics is dropped and the previous
// frame stays on screen.
func (s *Session) Draw(render func(*widget.Frame)) {
	if render == nil || s.isClosed() {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			events.Session.DrawFailed(fmt.Sprint(r))
		}
	}()
	s.screen.Clear()
	render(widget.NewFrame(s.screen))
	s.screen.Show()
}

// Close restores the terminal. It is safe to call more than once and from a
// deferred call while a panic is unwinding.
func (s *Session) Close() {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()

		s.relay.stop()
		s.source.Stop()

		s.screen.Clear()
		s.screen.ShowCursor(0, 0)
		s.screen.Show()
		s.screen.Fini()

		events.Session.Close()
		logging.SetSessionID("")
	})
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
