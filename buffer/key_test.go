package buffer

import (
	"reflect"
	"testing"
)

func TestCommandForKey(t *testing.T) {
	cases := []struct {
		name string
		key  Key
		want Command
		ok   bool
	}{
		{name: "rune", key: Key{Code: KeyRune, Runes: []rune("é")}, want: InsertText{Text: "é"}, ok: true},
		{name: "empty rune", key: Key{Code: KeyRune}, ok: false},
		{name: "tab", key: Key{Code: KeyTab}, want: InsertText{Text: "\t"}, ok: true},
		{name: "enter", key: Key{Code: KeyEnter}, want: InsertText{Text: "\n"}, ok: true},
		{name: "backspace", key: Key{Code: KeyBackspace}, want: DeleteBackward{}, ok: true},
		{name: "delete", key: Key{Code: KeyDelete}, want: DeleteForward{}, ok: true},
		{name: "left", key: Key{Code: KeyLeft}, want: Move{Unit: MoveGrapheme, Dir: DirLeft}, ok: true},
		{name: "shift right", key: Key{Code: KeyRight, Shift: true}, want: Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true}, ok: true},
		{name: "word left", key: Key{Code: KeyLeft, Word: true}, want: Move{Unit: MoveWord, Dir: DirLeft}, ok: true},
		{name: "up", key: Key{Code: KeyUp}, want: Move{Unit: MoveLine, Dir: DirUp}, ok: true},
		{name: "shift down", key: Key{Code: KeyDown, Shift: true}, want: Move{Unit: MoveLine, Dir: DirDown, Extend: true}, ok: true},
		{name: "home", key: Key{Code: KeyHome}, want: Move{Unit: MoveLine, Dir: DirHome}, ok: true},
		{name: "doc end", key: Key{Code: KeyEnd, Word: true}, want: Move{Unit: MoveDoc, Dir: DirEnd}, ok: true},
		{name: "unknown", key: Key{Code: KeyCode(200)}, ok: false},
	}
	for _, tc := range cases {
		got, ok := CommandForKey(tc.key)
		if ok != tc.ok {
			t.Fatalf("%s: ok=%v, want %v", tc.name, ok, tc.ok)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: cmd=%#v, want %#v", tc.name, got, tc.want)
		}
	}
}

func TestCommandForKey_DrivesBuffer(t *testing.T) {
	b := New("", Options{})
	keys := []Key{
		{Code: KeyRune, Runes: []rune("hi")},
		{Code: KeyEnter},
		{Code: KeyRune, Runes: []rune("yo")},
		{Code: KeyUp},
		{Code: KeyLeft},
		{Code: KeyEnd, Shift: true},
		{Code: KeyBackspace},
	}
	for _, k := range keys {
		cmd, ok := CommandForKey(k)
		if !ok {
			t.Fatalf("no command for %+v", k)
		}
		mustApply(t, b, cmd)
	}
	assertLines(t, b, "h", "yo")
	if got, want := b.Cursor(), (Pos{0, 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}
