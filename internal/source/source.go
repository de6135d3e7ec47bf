// Package source merges terminal input and a periodic timer into one bounded,
// ordered stream of events.
//
// Two producer goroutines share the sending side of the channel:
//
//   - the input producer blocks on an InputReader and forwards every decoded
//     event. When the reader fails or reaches EOF it sends a single Exit and
//     returns. It never retries.
//   - the tick producer sends Tick, waits one interval, and repeats until the
//     consumer goes away.
//
// The channel is bounded. A full channel blocks the producers instead of
// dropping events, so a stalled consumer stretches the tick cadence: after
// roughly capacity × interval both producers are parked until the consumer
// resumes.
//
// Go channel sends cannot fail when the receiver disappears, so the consumer
// signals its departure with Stop. Every send selects on that signal, and a
// send that observes it is treated as the receiver having been dropped. Once
// both producers have returned the channel is closed.
package source

import (
	"sync"
	"time"

	"github.com/atomicstack/viewloop/internal/event"
	"github.com/atomicstack/viewloop/internal/logging/events"
	"github.com/gdamore/tcell/v2"
)

const (
	// DefaultCapacity absorbs bursts of input while still applying backpressure.
	DefaultCapacity = 25
	// DefaultTickInterval gives roughly 30 frames per second.
	DefaultTickInterval = 33 * time.Millisecond
)

// InputReader produces decoded terminal events. ReadEvent blocks until an
// event is available and returns an error once the stream is finished.
type InputReader interface {
	ReadEvent() (tcell.Event, error)
}

// Options configures a Source. Zero values select the defaults.
type Options struct {
	TickInterval time.Duration
	Capacity     int
}

func (o Options) withDefaults() Options {
	if o.TickInterval <= 0 {
		o.TickInterval = DefaultTickInterval
	}
	if o.Capacity <= 0 {
		o.Capacity = DefaultCapacity
	}
	return o
}

// Source owns the producer goroutines and the sending side of the stream.
type Source struct {
	events chan event.Event
	done   chan struct{}

	stopOnce sync.Once
	wg       sync.WaitGroup
}

// Start launches both producers and returns the running source.
func Start(input InputReader, opts Options) *Source {
	opts = opts.withDefaults()
	s := &Source{
		events: make(chan event.Event, opts.Capacity),
		done:   make(chan struct{}),
	}
	events.Source.Start(opts.TickInterval, opts.Capacity)

	s.wg.Add(2)
	go s.readInput(input)
	go s.tick(newThrottle(opts.TickInterval))

	go func() {
		s.wg.Wait()
		close(s.events)
		events.Source.Stopped()
	}()

	return s
}

// Events returns the receiving side of the stream. It must have exactly one
// consumer.
func (s *Source) Events() <-chan event.Event {
	return s.events
}

// Stop tells the producers that the consumer is gone. Producers return at
// their next send; the input producer may stay parked in its reader until the
// reader itself returns.
func (s *Source) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}

// Wait blocks until both producers have returned and the stream is closed.
func (s *Source) Wait() {
	s.wg.Wait()
}

// send delivers ev, blocking while the channel is full. It reports false when
// the consumer has gone away.
func (s *Source) send(ev event.Event) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.events <- ev:
		return true
	case <-s.done:
		return false
	}
}

func (s *Source) readInput(input InputReader) {
	defer s.wg.Done()

	if input == nil {
		events.Source.InputClosed(nil)
		s.send(event.Exit)
		return
	}
	for {
		raw, err := input.ReadEvent()
		if err != nil {
			events.Source.InputClosed(err)
			s.send(event.Exit)
			return
		}
		if raw == nil {
			continue
		}
		if !s.send(event.Input(raw)) {
			events.Source.InputClosed(nil)
			return
		}
	}
}

func (s *Source) tick(pace *throttle) {
	defer s.wg.Done()

	ticks := 0
	for {
		if !pace.wait(s.done) {
			break
		}
		if !s.send(event.Tick) {
			break
		}
		ticks++
		pace.mark()
	}
	events.Source.TickerStopped(ticks)
}
