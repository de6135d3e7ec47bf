package widget

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"
)

// Paragraph renders multi-line text, optionally word-wrapped, scrolled down
// by Scroll lines. Scrolling past the end shows an empty area.
type Paragraph struct {
	Text   string
	Scroll int
	Wrap   bool
	Style  tcell.Style
}

// Lines returns the display lines for the given width.
func (p Paragraph) Lines(width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, line := range strings.Split(p.Text, "\n") {
		if !p.Wrap || line == "" {
			out = append(out, line)
			continue
		}
		out = append(out, strings.Split(ansi.Wrap(line, width, ""), "\n")...)
	}
	return out
}

// Render implements Widget.
func (p Paragraph) Render(f *Frame, area Rect) {
	if area.Empty() {
		return
	}
	lines := p.Lines(area.Width)
	scroll := max(p.Scroll, 0)
	for row := 0; row < area.Height; row++ {
		idx := scroll + row
		if idx >= len(lines) {
			return
		}
		f.SetString(area.X, area.Y+row, lines[idx], p.Style, area.Width)
	}
}
