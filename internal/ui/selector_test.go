package ui

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/atomicstack/viewloop/internal/event"
	"github.com/atomicstack/viewloop/internal/runtime"
	"github.com/atomicstack/viewloop/internal/testutil"
	"github.com/atomicstack/viewloop/internal/theme"
	"github.com/atomicstack/viewloop/internal/widget"
	"github.com/gdamore/tcell/v2"
)

func entries(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("Entry %d", i+1)
	}
	return items
}

func press(v interface {
	Update(event.Event, *runtime.Runtime) (struct{}, bool)
}, keys ...*tcell.EventKey) bool {
	done := false
	for _, k := range keys {
		_, done = v.Update(event.Input(k), nil)
	}
	return done
}

func typeText(s *Selector, text string) {
	for _, r := range text {
		press(s, testutil.Rune(r))
	}
}

func TestSelectorOpensAlertAndKeepsSelection(t *testing.T) {
	d := testutil.NewDriver(t, 30, 12)
	down := testutil.Key(tcell.KeyDown)
	d.PushKeys(down, down, down, testutil.Key(tcell.KeyEnter)).
		Push(event.Tick).
		PushKeys(testutil.Key(tcell.KeyEscape)).
		Push(event.Tick).
		PushKeys(testutil.Key(tcell.KeyEscape))

	s := NewSelector("", entries(8))
	rt := runtime.New(d)

	var alertScreen string
	var alertDepth, cursorInAlert int
	d.Before(5, func() {
		alertScreen = d.Capture()
		alertDepth = rt.Depth()
		cursorInAlert = s.Cursor()
	})
	var selectorScreen string
	d.Before(7, func() { selectorScreen = d.Capture() })

	if _, err := runtime.Run[struct{}](rt, s); err != nil {
		t.Fatalf("expected selector to complete, got %v", err)
	}

	if alertDepth != 2 {
		t.Fatalf("expected alert nested at depth 2, got %d", alertDepth)
	}
	if !strings.Contains(alertScreen, "Alert") || !strings.Contains(alertScreen, "'Entry 4'") {
		t.Fatalf("expected alert naming Entry 4, got:\n%s", alertScreen)
	}
	if cursorInAlert != 3 {
		t.Fatalf("expected selection 3 while alert open, got %d", cursorInAlert)
	}
	if s.Cursor() != 3 {
		t.Fatalf("expected selection 3 after alert closed, got %d", s.Cursor())
	}
	if !strings.Contains(selectorScreen, ">>Entry 4") {
		t.Fatalf("expected highlighted Entry 4, got:\n%s", selectorScreen)
	}
	if !strings.Contains(strings.Split(selectorScreen, "\n")[0], "Frame 4") {
		t.Fatalf("expected fifth render title, got:\n%s", selectorScreen)
	}
}

func TestSelectorUpAtTopStaysAtZero(t *testing.T) {
	s := NewSelector("", entries(8))
	press(s, testutil.Key(tcell.KeyUp))
	if s.Cursor() != 0 {
		t.Fatalf("expected selection 0, got %d", s.Cursor())
	}
}

func TestSelectorDownStopsAtLastItem(t *testing.T) {
	s := NewSelector("", entries(3))
	for i := 0; i < 10; i++ {
		press(s, testutil.Key(tcell.KeyDown))
	}
	if s.Cursor() != 2 {
		t.Fatalf("expected selection 2, got %d", s.Cursor())
	}
}

func TestSelectorSelectionStaysInBounds(t *testing.T) {
	keys := []tcell.Key{tcell.KeyUp, tcell.KeyDown, tcell.KeyHome, tcell.KeyEnd, tcell.KeyPgUp, tcell.KeyPgDn}
	rng := rand.New(rand.NewSource(42))
	for n := 0; n <= 5; n++ {
		s := NewSelector("", entries(n))
		for step := 0; step < 300; step++ {
			press(s, testutil.Key(keys[rng.Intn(len(keys))]))
			if n == 0 && s.Cursor() != 0 {
				t.Fatalf("empty selector moved to %d", s.Cursor())
			}
			if n > 0 && (s.Cursor() < 0 || s.Cursor() > n-1) {
				t.Fatalf("selection %d out of range for %d items", s.Cursor(), n)
			}
		}
	}
}

func TestSelectorEmptyListIgnoresEnter(t *testing.T) {
	d := testutil.NewDriver(t, 20, 5)
	d.PushKeys(testutil.Key(tcell.KeyEnter), testutil.Key(tcell.KeyDown), testutil.Rune('q'))
	rt := runtime.New(d)

	if _, err := runtime.Run[struct{}](rt, NewSelector("", nil)); err != nil {
		t.Fatalf("expected clean completion, got %v", err)
	}
	if d.Draws != 2 {
		t.Fatalf("expected two draws, got %d", d.Draws)
	}
}

func TestSelectorQuitKeys(t *testing.T) {
	if !press(NewSelector("", entries(2)), testutil.Key(tcell.KeyEscape)) {
		t.Fatal("expected Escape to complete the selector")
	}
	if !press(NewSelector("", entries(2)), testutil.Rune('q')) {
		t.Fatal("expected q to complete the selector")
	}
	if press(NewSelector("", entries(2)), testutil.Rune('x'), testutil.Key(tcell.KeyLeft)) {
		t.Fatal("unexpected completion")
	}
}

func TestSelectorIgnoresTicks(t *testing.T) {
	s := NewSelector("", entries(3))
	if _, done := s.Update(event.Tick, nil); done {
		t.Fatal("tick completed the selector")
	}
	if s.Cursor() != 0 {
		t.Fatalf("tick moved the selection to %d", s.Cursor())
	}
}

func TestSelectorExitInsideAlertUnwinds(t *testing.T) {
	d := testutil.NewDriver(t, 20, 6)
	d.PushKeys(testutil.Key(tcell.KeyDown), testutil.Key(tcell.KeyEnter)).Push(event.Tick)
	rt := runtime.New(d)
	s := NewSelector("", entries(3))

	_, err := runtime.Run[struct{}](rt, s)
	if !errors.Is(err, runtime.ErrExit) {
		t.Fatalf("expected ErrExit, got %v", err)
	}
	if s.Cursor() != 1 {
		t.Fatalf("expected selection untouched, got %d", s.Cursor())
	}
}

func TestSelectorRenderShowsTitleAndHighlight(t *testing.T) {
	screen := testutil.NewScreen(t, 20, 5)
	defer screen.Fini()
	s := NewSelector("", entries(8))
	press(s, testutil.Key(tcell.KeyDown))

	s.Render(widget.NewFrame(screen))
	if row := testutil.Row(screen, 0); !strings.HasPrefix(row, string(tcell.RuneULCorner)+"Frame 0") {
		t.Fatalf("unexpected title row %q", row)
	}
	if row := testutil.Row(screen, 1); !strings.Contains(row, "  Entry 1") {
		t.Fatalf("expected padded Entry 1, got %q", row)
	}
	if row := testutil.Row(screen, 2); !strings.Contains(row, ">>Entry 2") {
		t.Fatalf("expected highlighted Entry 2, got %q", row)
	}
	_, _, style, _ := screen.GetContent(3, 2)
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrItalic == 0 {
		t.Fatal("expected italic highlight")
	}
	if s.Frames() != 1 {
		t.Fatalf("expected one render counted, got %d", s.Frames())
	}
}

func TestSelectorCustomTitle(t *testing.T) {
	screen := testutil.NewScreen(t, 20, 4)
	defer screen.Fini()
	NewSelector("Groups", entries(2)).Render(widget.NewFrame(screen))
	if row := testutil.Row(screen, 0); !strings.Contains(row, "Groups") || strings.Contains(row, "Frame") {
		t.Fatalf("unexpected title row %q", row)
	}
}

func TestSelectorRenderIsIdempotentBesidesTitle(t *testing.T) {
	screen := testutil.NewScreen(t, 24, 6)
	defer screen.Fini()
	s := NewSelector("", entries(8))
	press(s, testutil.Key(tcell.KeyEnd))

	s.Render(widget.NewFrame(screen))
	first := strings.Split(testutil.Capture(screen), "\n")
	screen.Clear()
	s.Render(widget.NewFrame(screen))
	second := strings.Split(testutil.Capture(screen), "\n")

	if first[0] == second[0] {
		t.Fatalf("expected the render counter to advance, got %q twice", first[0])
	}
	for i := 1; i < len(first); i++ {
		if first[i] != second[i] {
			t.Fatalf("row %d changed between renders: %q vs %q", i, first[i], second[i])
		}
	}
	if s.Cursor() != 7 {
		t.Fatalf("render moved selection to %d", s.Cursor())
	}
}

func TestSelectorScrollsToKeepSelectionVisible(t *testing.T) {
	screen := testutil.NewScreen(t, 20, 5)
	defer screen.Fini()
	s := NewSelector("", entries(8))
	press(s, testutil.Key(tcell.KeyEnd))
	s.Render(widget.NewFrame(screen))

	if row := testutil.Row(screen, 3); !strings.Contains(row, ">>Entry 8") {
		t.Fatalf("expected Entry 8 on the last inner row, got:\n%s", testutil.Capture(screen))
	}
}

func TestSelectorPagesByVisibleHeight(t *testing.T) {
	screen := testutil.NewScreen(t, 20, 5)
	defer screen.Fini()
	s := NewSelector("", entries(8))
	s.Render(widget.NewFrame(screen))

	press(s, testutil.Key(tcell.KeyPgDn))
	if s.Cursor() != 3 {
		t.Fatalf("expected page down by 3 rows, got %d", s.Cursor())
	}
	press(s, testutil.Key(tcell.KeyPgUp))
	if s.Cursor() != 0 {
		t.Fatalf("expected page up back to 0, got %d", s.Cursor())
	}
}

func TestSelectorFilterAcceptKeepsMatch(t *testing.T) {
	s := NewSelector("", entries(8))
	press(s, testutil.Rune('/'))
	if !s.Filtering() {
		t.Fatal("expected filter mode")
	}
	typeText(s, "7")
	if label, _ := s.Selected(); label != "Entry 7" {
		t.Fatalf("expected Entry 7 selected while filtering, got %q", label)
	}
	press(s, testutil.Key(tcell.KeyEnter))
	if s.Filtering() || s.Filter() != "" {
		t.Fatalf("expected filter mode left, filtering=%v filter=%q", s.Filtering(), s.Filter())
	}
	if s.Cursor() != 6 {
		t.Fatalf("expected selection 6 in the full list, got %d", s.Cursor())
	}
}

func TestSelectorFilterEscapeRestoresSelection(t *testing.T) {
	s := NewSelector("", entries(8))
	press(s, testutil.Key(tcell.KeyDown), testutil.Key(tcell.KeyDown), testutil.Rune('/'))
	typeText(s, "8")
	press(s, testutil.Key(tcell.KeyBackspace2))
	typeText(s, "5")
	if label, _ := s.Selected(); label != "Entry 5" {
		t.Fatalf("expected Entry 5 selected, got %q", label)
	}
	press(s, testutil.Key(tcell.KeyEscape))
	if s.Filtering() {
		t.Fatal("expected filter mode left")
	}
	if s.Cursor() != 2 || s.Filter() != "" {
		t.Fatalf("expected selection 2 and no filter, got %d/%q", s.Cursor(), s.Filter())
	}
}

func TestSelectorFilterTakesQuitRunes(t *testing.T) {
	s := NewSelector("", entries(3))
	press(s, testutil.Rune('/'))
	if press(s, testutil.Rune('q')) {
		t.Fatal("q completed the selector while filtering")
	}
	if s.Filter() != "q" {
		t.Fatalf("expected q in the filter, got %q", s.Filter())
	}
	press(s, testutil.Key(tcell.KeyCtrlU))
	if s.Filter() != "" {
		t.Fatalf("expected Ctrl+U to clear the filter, got %q", s.Filter())
	}
}

func TestSelectorRendersFilterLine(t *testing.T) {
	screen := testutil.NewScreen(t, 20, 6)
	defer screen.Fini()
	s := NewSelector("", entries(8))
	press(s, testutil.Rune('/'))
	s.Render(widget.NewFrame(screen))
	if row := testutil.Row(screen, 4); !strings.Contains(row, "/"+filterPlaceholder[:10]) {
		t.Fatalf("expected placeholder on the filter row, got %q", row)
	}

	typeText(s, "zz")
	screen.Clear()
	s.Render(widget.NewFrame(screen))
	if row := testutil.Row(screen, 4); !strings.Contains(row, "/zz") {
		t.Fatalf("expected query on the filter row, got %q", row)
	}
	if row := testutil.Row(screen, 1); !strings.Contains(row, "no matches") {
		t.Fatalf("expected empty result notice, got %q", row)
	}
	wantFg, wantBg, _ := theme.Cell(theme.Default().Filter).Decompose()
	_, _, style, _ := screen.GetContent(18, 4)
	if fg, bg, _ := style.Decompose(); fg != wantFg || bg != wantBg {
		t.Fatalf("expected the rest of the filter row in the filter style, got fg=%v bg=%v", fg, bg)
	}
}
