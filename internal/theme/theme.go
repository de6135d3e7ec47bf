package theme

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// Styles describes reusable Lip Gloss styles shared across the views.
type Styles struct {
	Border            *lipgloss.Style
	Title             *lipgloss.Style
	Item              *lipgloss.Style
	SelectedItem      *lipgloss.Style
	ItemIndicator     *lipgloss.Style
	Info              *lipgloss.Style
	Paragraph         *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
}

var defaultStyles = Styles{
	Border: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Italic(true),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Paragraph: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Cell converts a Lip Gloss style into the tcell style used when painting
// cells. Nil styles map to the terminal default.
func Cell(style *lipgloss.Style) tcell.Style {
	out := tcell.StyleDefault
	if style == nil {
		return out
	}
	if fg, ok := color(style.GetForeground()); ok {
		out = out.Foreground(fg)
	}
	if bg, ok := color(style.GetBackground()); ok {
		out = out.Background(bg)
	}
	if style.GetBold() {
		out = out.Bold(true)
	}
	if style.GetItalic() {
		out = out.Italic(true)
	}
	if style.GetUnderline() {
		out = out.Underline(true)
	}
	if style.GetReverse() {
		out = out.Reverse(true)
	}
	if style.GetBlink() {
		out = out.Blink(true)
	}
	if style.GetFaint() {
		out = out.Dim(true)
	}
	return out
}

func color(c lipgloss.TerminalColor) (tcell.Color, bool) {
	switch v := c.(type) {
	case lipgloss.Color:
		s := strings.TrimSpace(string(v))
		if s == "" {
			return tcell.ColorDefault, false
		}
		if strings.HasPrefix(s, "#") {
			return tcell.GetColor(s), true
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 || n > 255 {
			return tcell.ColorDefault, false
		}
		return tcell.PaletteColor(n), true
	case lipgloss.ANSIColor:
		return tcell.PaletteColor(int(v)), true
	default:
		return tcell.ColorDefault, false
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
