package events

import "github.com/atomicstack/viewloop/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Open(width, height int) {
	logging.Trace("session.open", map[string]interface{}{"width": width, "height": height})
}

func (SessionTracer) Close() {
	logging.Trace("session.close", nil)
}

func (SessionTracer) DrawFailed(reason interface{}) {
	logging.Trace("session.draw.failed", map[string]interface{}{"reason": reason})
}

func (SessionTracer) Signal(name string) {
	logging.Trace("session.signal", map[string]interface{}{"signal": name})
}
