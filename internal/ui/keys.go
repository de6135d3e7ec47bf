package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

func isEnter(k *tcell.EventKey) bool {
	switch k.Key() {
	case tcell.KeyEnter, tcell.KeyLF:
		return true
	case tcell.KeyRune:
		return k.Rune() == '\n'
	}
	return false
}

func isEscape(k *tcell.EventKey) bool {
	return k.Key() == tcell.KeyEscape
}

func isRune(k *tcell.EventKey, r rune) bool {
	return k.Key() == tcell.KeyRune && k.Rune() == r && k.Modifiers()&tcell.ModAlt == 0
}

func isBackspace(k *tcell.EventKey) bool {
	switch k.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return true
	}
	return false
}

// filterText returns the text a key press adds to a filter query.
func filterText(k *tcell.EventKey) (string, bool) {
	if k.Key() != tcell.KeyRune || k.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0 {
		return "", false
	}
	r := k.Rune()
	if unicode.IsControl(r) {
		return "", false
	}
	return string(r), true
}
