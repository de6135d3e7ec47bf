package ui

import (
	"fmt"

	"github.com/atomicstack/viewloop/internal/event"
	"github.com/atomicstack/viewloop/internal/logging/events"
	"github.com/atomicstack/viewloop/internal/runtime"
	"github.com/atomicstack/viewloop/internal/theme"
	"github.com/atomicstack/viewloop/internal/ui/state"
	"github.com/atomicstack/viewloop/internal/widget"
	"github.com/gdamore/tcell/v2"
)

const (
	selectorView      = "selector"
	highlightSymbol   = ">>"
	filterPlaceholder = "type to filter"
)

// Selector lets the user pick one of a list of items. Choosing an item opens
// an Alert naming it; Escape or q closes the selector.
type Selector struct {
	title  string
	level  *state.Level
	styles *theme.Styles

	frames    int
	visible   int
	filtering bool
	// cursor to restore when a filter is abandoned
	preFilter int
}

// NewSelector returns a selector over items with the first item selected.
// An empty title shows the render counter instead.
func NewSelector(title string, items []string) *Selector {
	return &Selector{
		title:  title,
		level:  state.NewLevel(title, state.NewItems(items)),
		styles: theme.Default(),
	}
}

// Cursor returns the selected index within the visible items.
func (s *Selector) Cursor() int {
	return s.level.Cursor
}

// Selected returns the label under the cursor.
func (s *Selector) Selected() (string, bool) {
	item, ok := s.level.Current()
	return item.Label, ok
}

// Frames returns the number of completed renders.
func (s *Selector) Frames() int {
	return s.frames
}

// Filtering reports whether filter mode is active.
func (s *Selector) Filtering() bool {
	return s.filtering
}

// Filter returns the current filter query.
func (s *Selector) Filter() string {
	return s.level.Filter
}

// Update implements runtime.View.
func (s *Selector) Update(ev event.Event, rt *runtime.Runtime) (struct{}, bool) {
	key, ok := ev.Key()
	if !ok {
		return struct{}{}, false
	}
	if s.filtering {
		s.updateFilter(key)
		return struct{}{}, false
	}
	switch {
	case isEnter(key):
		s.open(rt)
	case isEscape(key), isRune(key, 'q'):
		return struct{}{}, true
	case isRune(key, '/'):
		s.filtering = true
		s.preFilter = s.level.Cursor
		events.Filter.Open(selectorView)
	default:
		s.navigate(key)
	}
	return struct{}{}, false
}

func (s *Selector) open(rt *runtime.Runtime) {
	label, ok := s.Selected()
	if !ok {
		return
	}
	events.View.Select(selectorView, label)
	// Exit is recorded on rt and surfaces when Update returns.
	_, _ = runtime.Run[struct{}](rt, NewAlert(fmt.Sprintf("You selected:\n'%s'", label)))
}

// navigate applies cursor movement keys. It reports whether the key was one.
func (s *Selector) navigate(key *tcell.EventKey) bool {
	var moved bool
	switch key.Key() {
	case tcell.KeyUp:
		moved = s.level.MoveCursorUp()
	case tcell.KeyDown:
		moved = s.level.MoveCursorDown()
	case tcell.KeyHome:
		moved = s.level.MoveCursorHome()
	case tcell.KeyEnd:
		moved = s.level.MoveCursorEnd()
	case tcell.KeyPgUp:
		moved = s.level.MoveCursorPageUp(s.visible)
	case tcell.KeyPgDn:
		moved = s.level.MoveCursorPageDown(s.visible)
	default:
		return false
	}
	if moved {
		events.View.Cursor(selectorView, s.level.Cursor)
	}
	return true
}

func (s *Selector) updateFilter(key *tcell.EventKey) {
	l := s.level
	switch {
	case isEscape(key):
		l.ClearFilter()
		if s.preFilter >= 0 && s.preFilter < len(l.Items) {
			l.Cursor = s.preFilter
		}
		l.LastCursor = -1
		s.filtering = false
		events.Filter.Cleared(selectorView)
		return
	case isEnter(key):
		l.AcceptFilter()
		s.filtering = false
		events.View.Cursor(selectorView, l.Cursor)
		return
	case isBackspace(key):
		if l.DeleteFilterRuneBackward() {
			events.Filter.Backspace(selectorView, l.Filter)
		}
		return
	}
	switch key.Key() {
	case tcell.KeyCtrlU:
		if l.ClearFilter() {
			events.Filter.Cleared(selectorView)
		}
		return
	case tcell.KeyCtrlW:
		if l.DeleteFilterWordBackward() {
			events.Filter.Backspace(selectorView, l.Filter)
		}
		return
	case tcell.KeyCtrlA:
		l.MoveFilterCursorStart()
		return
	case tcell.KeyCtrlE:
		l.MoveFilterCursorEnd()
		return
	case tcell.KeyLeft:
		l.MoveFilterCursorRuneBackward()
		return
	case tcell.KeyRight:
		l.MoveFilterCursorRuneForward()
		return
	}
	if s.navigate(key) {
		return
	}
	if text, ok := filterText(key); ok && l.InsertFilterText(text) {
		events.Filter.Append(selectorView, l.Filter)
	}
}

// Render implements runtime.View.
func (s *Selector) Render(f *widget.Frame) {
	title := s.title
	if title == "" {
		title = fmt.Sprintf("Frame %d", s.frames)
	}
	s.frames++

	block := widget.Block{
		Title:      title,
		Borders:    true,
		Style:      theme.Cell(s.styles.Border),
		TitleStyle: theme.Cell(s.styles.Title),
	}
	area := f.Area()
	f.Render(block, area)
	inner := block.Inner(area)
	if inner.Empty() {
		return
	}

	listArea := inner
	if s.filtering {
		listArea.Height--
		s.renderFilter(f, widget.Rect{X: inner.X, Y: inner.Y + inner.Height - 1, Width: inner.Width, Height: 1})
	}
	s.visible = max(listArea.Height, 0)
	s.level.EnsureCursorVisible(s.visible)

	if len(s.level.Items) == 0 {
		if s.filtering && s.level.Filter != "" && !listArea.Empty() {
			f.SetString(listArea.X, listArea.Y, "no matches", theme.Cell(s.styles.Info), listArea.Width)
		}
		return
	}
	f.Render(widget.List{
		Items:           s.level.Labels(),
		Selected:        s.level.Cursor,
		Offset:          s.level.ViewportOffset,
		HighlightSymbol: highlightSymbol,
		Style:           theme.Cell(s.styles.Item),
		HighlightStyle:  theme.Cell(s.styles.SelectedItem),
		SymbolStyle:     theme.Cell(s.styles.ItemIndicator),
	}, listArea)
}

func (s *Selector) renderFilter(f *widget.Frame, area widget.Rect) {
	f.Fill(area, ' ', theme.Cell(s.styles.Filter))
	x := area.X
	right := area.X + area.Width
	x += f.SetString(x, area.Y, "/", theme.Cell(s.styles.FilterPrompt), right-x)
	if s.level.Filter == "" {
		f.SetString(x, area.Y, filterPlaceholder, theme.Cell(s.styles.FilterPlaceholder), right-x)
		return
	}
	style := theme.Cell(s.styles.Filter)
	runes := []rune(s.level.Filter)
	pos := s.level.FilterCursorPos()
	x += f.SetString(x, area.Y, string(runes[:pos]), style, right-x)
	cursorX := x
	x += f.SetString(x, area.Y, string(runes[pos:]), style, right-x)
	if pos == len(runes) && cursorX < right {
		f.SetContent(cursorX, area.Y, ' ', style.Reverse(true))
		return
	}
	if cursorX < right {
		f.SetString(cursorX, area.Y, string(runes[pos]), style.Reverse(true), right-cursorX)
	}
}
