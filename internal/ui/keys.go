package ui

import "github.com/gdamore/tcell/v2"

type KeyKind int

const (
	KeyNone KeyKind = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyRune
	KeyBackspace
	KeyEscape
)

// Key is one keystroke as the controller sees it. Rune is set for KeyRune.
type Key struct {
	Kind KeyKind
	Rune rune
}

func Rune(r rune) Key {
	return Key{Kind: KeyRune, Rune: r}
}

// KeyFromEvent translates a terminal key event. Keys the menus have no use
// for come back as KeyNone.
func KeyFromEvent(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return Key{Kind: KeyUp}
	case tcell.KeyDown:
		return Key{Kind: KeyDown}
	case tcell.KeyEnter:
		return Key{Kind: KeyEnter}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Key{Kind: KeyBackspace}
	case tcell.KeyEscape:
		return Key{Kind: KeyEscape}
	case tcell.KeyRune:
		return Rune(ev.Rune())
	}
	return Key{Kind: KeyNone}
}
