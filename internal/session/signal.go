package session

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/atomicstack/viewloop/internal/logging/events"
	"github.com/gdamore/tcell/v2"
)

// poster is the part of tcell.Screen the relay writes to.
type poster interface {
	PostEvent(ev tcell.Event) error
}

// signalRelay turns termination signals into interrupt events on the screen
// queue, where the input producer reports them as the end of input.
type signalRelay struct {
	signals chan os.Signal
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

func startSignalRelay(target poster) *signalRelay {
	r := &signalRelay{
		signals: make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}
	signal.Notify(r.signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	r.wg.Add(1)
	go r.loop(target)
	return r
}

func (r *signalRelay) loop(target poster) {
	defer r.wg.Done()
	for {
		select {
		case <-r.done:
			return
		case sig := <-r.signals:
			events.Session.Signal(sig.String())
			// A full queue drops the interrupt; the next signal retries.
			_ = target.PostEvent(tcell.NewEventInterrupt(sig))
		}
	}
}

func (r *signalRelay) stop() {
	if r == nil {
		return
	}
	r.once.Do(func() {
		signal.Stop(r.signals)
		close(r.done)
		r.wg.Wait()
	})
}
