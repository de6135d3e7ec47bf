package widget

import "github.com/gdamore/tcell/v2"

// Block draws an optional border with a title on the top edge.
type Block struct {
	Title      string
	Borders    bool
	Style      tcell.Style
	TitleStyle tcell.Style
}

// Inner returns the content area of the block inside area.
func (b Block) Inner(area Rect) Rect {
	if !b.Borders {
		return area
	}
	return area.Inner()
}

// Render implements Widget.
func (b Block) Render(f *Frame, area Rect) {
	if area.Empty() {
		return
	}
	if b.Borders && area.Width >= 2 && area.Height >= 2 {
		right := area.X + area.Width - 1
		bottom := area.Y + area.Height - 1
		for x := area.X + 1; x < right; x++ {
			f.SetContent(x, area.Y, tcell.RuneHLine, b.Style)
			f.SetContent(x, bottom, tcell.RuneHLine, b.Style)
		}
		for y := area.Y + 1; y < bottom; y++ {
			f.SetContent(area.X, y, tcell.RuneVLine, b.Style)
			f.SetContent(right, y, tcell.RuneVLine, b.Style)
		}
		f.SetContent(area.X, area.Y, tcell.RuneULCorner, b.Style)
		f.SetContent(right, area.Y, tcell.RuneURCorner, b.Style)
		f.SetContent(area.X, bottom, tcell.RuneLLCorner, b.Style)
		f.SetContent(right, bottom, tcell.RuneLRCorner, b.Style)
	}
	if b.Title == "" {
		return
	}
	x, width := area.X, area.Width
	if b.Borders {
		x, width = area.X+1, area.Width-2
	}
	if width > 0 {
		f.SetString(x, area.Y, b.Title, b.TitleStyle, width)
	}
}
