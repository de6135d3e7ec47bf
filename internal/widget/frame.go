// Package widget paints simple descriptors (bordered blocks, lists,
// paragraphs) into a cell canvas. The runtime treats it purely as a sink:
// views build descriptors and hand them to a Frame during a draw.
package widget

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Canvas is the cell surface a frame paints onto. tcell.Screen satisfies it.
type Canvas interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Rect is an area in cell coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inner returns the area inside a one-cell border.
func (r Rect) Inner() Rect {
	inner := Rect{X: r.X + 1, Y: r.Y + 1, Width: r.Width - 2, Height: r.Height - 2}
	if inner.Width < 0 {
		inner.Width = 0
	}
	if inner.Height < 0 {
		inner.Height = 0
	}
	return inner
}

// Intersect clips r to other.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.X+r.Width, other.X+other.Width)
	y1 := min(r.Y+r.Height, other.Y+other.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func (r Rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Widget paints itself into an area of a frame.
type Widget interface {
	Render(f *Frame, area Rect)
}

// Frame is the handle a render function receives for one draw. Writes
// outside the frame are dropped.
type Frame struct {
	canvas Canvas
	area   Rect
}

// NewFrame wraps a canvas; the frame covers the whole canvas.
func NewFrame(c Canvas) *Frame {
	w, h := c.Size()
	return &Frame{canvas: c, area: Rect{Width: w, Height: h}}
}

// Area returns the full drawable area.
func (f *Frame) Area() Rect {
	return f.area
}

// Size returns the frame dimensions in cells.
func (f *Frame) Size() (width, height int) {
	return f.area.Width, f.area.Height
}

// Render paints w into area, clipped to the frame.
func (f *Frame) Render(w Widget, area Rect) {
	if w == nil {
		return
	}
	clipped := area.Intersect(f.area)
	if clipped.Empty() {
		return
	}
	w.Render(f, clipped)
}

// SetContent sets a single cell.
func (f *Frame) SetContent(x, y int, r rune, style tcell.Style) {
	if !f.area.contains(x, y) {
		return
	}
	f.canvas.SetContent(x, y, r, nil, style)
}

// SetString writes s starting at (x, y) using at most maxWidth columns and
// returns the number of columns written. Writes never pass the right edge of
// the frame, and wide runes that would straddle the limit are not written.
func (f *Frame) SetString(x, y int, s string, style tcell.Style, maxWidth int) int {
	if limit := f.area.X + f.area.Width - x; limit < maxWidth {
		maxWidth = limit
	}
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > maxWidth {
			break
		}
		f.SetContent(x+col, y, r, style)
		col += w
	}
	return col
}

// Fill paints every cell of area with r.
func (f *Frame) Fill(area Rect, r rune, style tcell.Style) {
	area = area.Intersect(f.area)
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			f.SetContent(x, y, r, style)
		}
	}
}
