package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/viewloop/internal/logging/events"
	"github.com/atomicstack/viewloop/internal/runtime"
	"github.com/atomicstack/viewloop/internal/session"
	"github.com/atomicstack/viewloop/internal/source"
	"github.com/atomicstack/viewloop/internal/ui"
	"github.com/gdamore/tcell/v2"
)

// Config describes user-provided application options.
type Config struct {
	TickInterval time.Duration
	Capacity     int
	Title        string
	Items        []string
}

// DefaultItems is the list shown when none is configured.
func DefaultItems() []string {
	items := make([]string, 8)
	for i := range items {
		items[i] = fmt.Sprintf("Entry %d", i+1)
	}
	return items
}

func (c Config) sessionOptions(input source.InputReader) session.Options {
	return session.Options{
		TickInterval: c.TickInterval,
		Capacity:     c.Capacity,
		Input:        input,
	}
}

// Run takes over the terminal and runs the selector until it completes or
// the event stream closes.
func Run(cfg Config) error {
	s, err := session.Open(cfg.sessionOptions(nil))
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	return run(cfg, s)
}

// RunWithScreen is Run against a caller-supplied screen. A nil input reads
// from the screen.
func RunWithScreen(cfg Config, screen tcell.Screen, input source.InputReader) error {
	s, err := session.OpenScreen(screen, cfg.sessionOptions(input))
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	return run(cfg, s)
}

func run(cfg Config, s *session.Session) error {
	defer s.Close()

	_, err := runtime.Run[struct{}](runtime.New(s), ui.NewSelector(cfg.Title, cfg.Items))
	if errors.Is(err, runtime.ErrExit) {
		events.App.Exit("input closed")
		return nil
	}
	if err != nil {
		return err
	}
	events.App.Exit("selector closed")
	return nil
}
