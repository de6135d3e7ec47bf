package events

import (
	"time"

	"github.com/atomicstack/viewloop/internal/logging"
)

type SourceTracer struct{}

var Source = SourceTracer{}

func (SourceTracer) Start(interval time.Duration, capacity int) {
	logging.Trace("source.start", map[string]interface{}{
		"interval": interval.String(),
		"capacity": capacity,
	})
}

// InputClosed records why the input producer stopped. A nil error means the
// consumer went away before the reader did.
func (SourceTracer) InputClosed(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("source.input.closed", payload)
}

func (SourceTracer) TickerStopped(ticks int) {
	logging.Trace("source.ticker.stopped", map[string]interface{}{"ticks": ticks})
}

func (SourceTracer) Stopped() {
	logging.Trace("source.stopped", nil)
}
