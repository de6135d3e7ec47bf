package ui

import (
	"github.com/atomicstack/viewloop/internal/event"
	"github.com/atomicstack/viewloop/internal/logging/events"
	"github.com/atomicstack/viewloop/internal/runtime"
	"github.com/atomicstack/viewloop/internal/theme"
	"github.com/atomicstack/viewloop/internal/widget"
	"github.com/gdamore/tcell/v2"
)

const alertView = "alert"

// Alert shows a message until dismissed with Escape, q, or Enter.
type Alert struct {
	text   string
	offset int
	styles *theme.Styles
}

// NewAlert returns an alert showing text from the top.
func NewAlert(text string) *Alert {
	return &Alert{text: text, styles: theme.Default()}
}

// Text returns the message.
func (a *Alert) Text() string {
	return a.text
}

// Offset returns how many lines the message is scrolled down.
func (a *Alert) Offset() int {
	return a.offset
}

// Update implements runtime.View.
func (a *Alert) Update(ev event.Event, _ *runtime.Runtime) (struct{}, bool) {
	key, ok := ev.Key()
	if !ok {
		return struct{}{}, false
	}
	switch {
	case isEscape(key), isRune(key, 'q'), isEnter(key):
		return struct{}{}, true
	case key.Key() == tcell.KeyUp:
		if a.offset > 0 {
			a.offset--
			events.View.Scroll(alertView, a.offset)
		}
	case key.Key() == tcell.KeyDown:
		// Unbounded; the paragraph renders blank past the end.
		a.offset++
		events.View.Scroll(alertView, a.offset)
	}
	return struct{}{}, false
}

// Render implements runtime.View.
func (a *Alert) Render(f *widget.Frame) {
	block := widget.Block{
		Title:      "Alert",
		Borders:    true,
		Style:      theme.Cell(a.styles.Border),
		TitleStyle: theme.Cell(a.styles.Title),
	}
	area := f.Area()
	f.Render(block, area)
	f.Render(widget.Paragraph{
		Text:   a.text,
		Scroll: a.offset,
		Wrap:   true,
		Style:  theme.Cell(a.styles.Paragraph),
	}, block.Inner(area))
}
