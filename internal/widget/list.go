package widget

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

// List renders one item per row. Selected is the highlighted index (-1 for
// none) and Offset the first visible row; the rendered window is shifted
// locally so the selection is always on screen without mutating the caller.
type List struct {
	Items           []string
	Selected        int
	Offset          int
	HighlightSymbol string
	Style           tcell.Style
	HighlightStyle  tcell.Style
	SymbolStyle     tcell.Style
}

// VisibleRange returns the [start, end) window of items shown in height rows.
func (l List) VisibleRange(height int) (int, int) {
	n := len(l.Items)
	if n == 0 || height <= 0 {
		return 0, 0
	}
	start := l.Offset
	if start < 0 {
		start = 0
	}
	if start > n-1 {
		start = n - 1
	}
	if l.Selected >= 0 && l.Selected < n {
		if l.Selected < start {
			start = l.Selected
		}
		if l.Selected >= start+height {
			start = l.Selected - height + 1
		}
	}
	if start+height > n {
		start = max(0, n-height)
	}
	return start, min(n, start+height)
}

// Render implements Widget.
func (l List) Render(f *Frame, area Rect) {
	if area.Empty() {
		return
	}
	symbolWidth := runewidth.StringWidth(l.HighlightSymbol)
	blank := strings.Repeat(" ", symbolWidth)
	start, end := l.VisibleRange(area.Height)
	for i := start; i < end; i++ {
		y := area.Y + i - start
		x := area.X
		style := l.Style
		if i == l.Selected {
			style = l.HighlightStyle
			x += f.SetString(x, y, l.HighlightSymbol, l.SymbolStyle, area.Width)
		} else {
			x += f.SetString(x, y, blank, l.Style, area.Width)
		}
		remaining := area.X + area.Width - x
		if remaining <= 0 {
			continue
		}
		label := l.Items[i]
		if runewidth.StringWidth(label) > remaining {
			label = truncate.StringWithTail(label, uint(remaining), ellipsis)
		}
		f.SetString(x, y, label, style, remaining)
	}
}
