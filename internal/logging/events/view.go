package events

import "github.com/atomicstack/viewloop/internal/logging"

type ViewTracer struct{}

type FilterTracer struct{}

var (
	View   = ViewTracer{}
	Filter = FilterTracer{}
)

func (ViewTracer) Cursor(view string, cursor int) {
	logging.Trace("view.cursor", map[string]interface{}{"view": view, "cursor": cursor})
}

func (ViewTracer) Select(view, label string) {
	logging.Trace("view.select", map[string]interface{}{"view": view, "label": label})
}

func (ViewTracer) Scroll(view string, offset int) {
	logging.Trace("view.scroll", map[string]interface{}{"view": view, "offset": offset})
}

func (FilterTracer) Open(view string) {
	logging.Trace("filter.open", map[string]interface{}{"view": view})
}

func (FilterTracer) Append(view, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"view": view, "filter": filter})
}

func (FilterTracer) Backspace(view, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"view": view, "filter": filter})
}

func (FilterTracer) Cleared(view string) {
	logging.Trace("filter.clear", map[string]interface{}{"view": view})
}
