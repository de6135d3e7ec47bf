package testutil

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// NewScreen returns an initialised simulation screen of the given size. The
// screen is finalised when the test ends unless the caller hands ownership
// to a session.
func NewScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(width, height)
	return screen
}

// Row returns the text of row y with trailing blanks removed.
func Row(screen tcell.Screen, y int) string {
	w, h := screen.Size()
	if y < 0 || y >= h {
		return ""
	}
	var line strings.Builder
	for x := 0; x < w; x++ {
		mainc, comb, _, _ := screen.GetContent(x, y)
		if mainc == 0 {
			mainc = ' '
		}
		line.WriteRune(mainc)
		for _, c := range comb {
			line.WriteRune(c)
		}
	}
	return strings.TrimRight(line.String(), " ")
}

// Capture returns every row of the screen joined by newlines.
func Capture(screen tcell.Screen) string {
	_, h := screen.Size()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		rows[y] = Row(screen, y)
	}
	return strings.Join(rows, "\n")
}

// Key builds a special key press.
func Key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

// Rune builds a printable key press.
func Rune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}
