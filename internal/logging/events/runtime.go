package events

import "github.com/atomicstack/viewloop/internal/logging"

type RuntimeTracer struct{}

var Runtime = RuntimeTracer{}

func (RuntimeTracer) Enter(view string, depth int) {
	logging.Trace("runtime.enter", map[string]interface{}{"view": view, "depth": depth})
}

func (RuntimeTracer) Leave(view string, depth int) {
	logging.Trace("runtime.leave", map[string]interface{}{"view": view, "depth": depth})
}

func (RuntimeTracer) Exit(view string, depth int) {
	logging.Trace("runtime.exit", map[string]interface{}{"view": view, "depth": depth})
}
