package editor

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/ttytext/buffer"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	ShiftWordLeft, ShiftWordRight             key.Binding
	Home, End                                 key.Binding
	ShiftHome, ShiftEnd                       key.Binding
	DocStart, DocEnd                          key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	SelectAll        key.Binding
	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:       key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight:      key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),
		ShiftWordLeft:  key.NewBinding(key.WithKeys("ctrl+shift+left", "alt+shift+left"), key.WithHelp("ctrl+shift+←", "select word left")),
		ShiftWordRight: key.NewBinding(key.WithKeys("ctrl+shift+right", "alt+shift+right"), key.WithHelp("ctrl+shift+→", "select word right")),

		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		ShiftHome: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to line start")),
		ShiftEnd:  key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to line end")),
		DocStart:  key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:    key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "document end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		SelectAll: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "select all")),
		Undo:      key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:      key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

func (km KeyMap) isZero() bool {
	for _, b := range km.all() {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}

func (km KeyMap) all() []key.Binding {
	return []key.Binding{
		km.Left, km.Right, km.Up, km.Down,
		km.ShiftLeft, km.ShiftRight, km.ShiftUp, km.ShiftDown,
		km.WordLeft, km.WordRight, km.ShiftWordLeft, km.ShiftWordRight,
		km.Home, km.End, km.ShiftHome, km.ShiftEnd, km.DocStart, km.DocEnd,
		km.Backspace, km.Delete, km.Enter,
		km.SelectAll, km.Undo, km.Redo,
		km.Copy, km.Cut, km.Paste,
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Undo, km.Redo, km.Copy, km.Paste}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down, km.WordLeft, km.WordRight},
		{km.Home, km.End, km.DocStart, km.DocEnd},
		{km.ShiftLeft, km.ShiftRight, km.ShiftUp, km.ShiftDown, km.ShiftHome, km.ShiftEnd},
		{km.Backspace, km.Delete, km.Enter, km.SelectAll},
		{km.Undo, km.Redo, km.Copy, km.Cut, km.Paste},
	}
}

type boundKey struct {
	binding key.Binding
	key     buffer.Key
}

// editKeys pairs bindings with the buffer key they stand for. Order matters:
// more specific chords come first.
func (km KeyMap) editKeys() []boundKey {
	return []boundKey{
		{km.ShiftWordLeft, buffer.Key{Code: buffer.KeyLeft, Shift: true, Word: true}},
		{km.ShiftWordRight, buffer.Key{Code: buffer.KeyRight, Shift: true, Word: true}},
		{km.WordLeft, buffer.Key{Code: buffer.KeyLeft, Word: true}},
		{km.WordRight, buffer.Key{Code: buffer.KeyRight, Word: true}},
		{km.ShiftLeft, buffer.Key{Code: buffer.KeyLeft, Shift: true}},
		{km.ShiftRight, buffer.Key{Code: buffer.KeyRight, Shift: true}},
		{km.ShiftUp, buffer.Key{Code: buffer.KeyUp, Shift: true}},
		{km.ShiftDown, buffer.Key{Code: buffer.KeyDown, Shift: true}},
		{km.Left, buffer.Key{Code: buffer.KeyLeft}},
		{km.Right, buffer.Key{Code: buffer.KeyRight}},
		{km.Up, buffer.Key{Code: buffer.KeyUp}},
		{km.Down, buffer.Key{Code: buffer.KeyDown}},
		{km.DocStart, buffer.Key{Code: buffer.KeyHome, Word: true}},
		{km.DocEnd, buffer.Key{Code: buffer.KeyEnd, Word: true}},
		{km.ShiftHome, buffer.Key{Code: buffer.KeyHome, Shift: true}},
		{km.ShiftEnd, buffer.Key{Code: buffer.KeyEnd, Shift: true}},
		{km.Home, buffer.Key{Code: buffer.KeyHome}},
		{km.End, buffer.Key{Code: buffer.KeyEnd}},
		{km.Backspace, buffer.Key{Code: buffer.KeyBackspace}},
		{km.Delete, buffer.Key{Code: buffer.KeyDelete}},
		{km.Enter, buffer.Key{Code: buffer.KeyEnter}},
	}
}
