package buffer

// KeyCode identifies an editing key independent of any terminal library.
type KeyCode uint8

const (
	KeyRune KeyCode = iota
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
)

// Key is a typed key action. Shift extends the selection; Word switches
// horizontal moves to word granularity and Home/End to document bounds.
type Key struct {
	Code  KeyCode
	Runes []rune

	Shift bool
	Word  bool
}

// CommandForKey translates a key into a Command. It reports false for keys
// with no editing meaning (for example an empty rune key).
func CommandForKey(k Key) (Command, bool) {
	switch k.Code {
	case KeyRune:
		if len(k.Runes) == 0 {
			return nil, false
		}
		return InsertText{Text: string(k.Runes)}, true
	case KeyTab:
		return InsertText{Text: "\t"}, true
	case KeyEnter:
		return InsertText{Text: "\n"}, true
	case KeyBackspace:
		return DeleteBackward{}, true
	case KeyDelete:
		return DeleteForward{}, true
	}

	m := Move{Unit: MoveGrapheme, Extend: k.Shift}
	switch k.Code {
	case KeyLeft:
		m.Dir = DirLeft
	case KeyRight:
		m.Dir = DirRight
	case KeyUp:
		m.Dir = DirUp
		m.Unit = MoveLine
	case KeyDown:
		m.Dir = DirDown
		m.Unit = MoveLine
	case KeyHome:
		m.Dir = DirHome
		m.Unit = MoveLine
	case KeyEnd:
		m.Dir = DirEnd
		m.Unit = MoveLine
	default:
		return nil, false
	}
	if k.Word {
		switch m.Dir {
		case DirLeft, DirRight:
			m.Unit = MoveWord
		case DirHome, DirEnd:
			m.Unit = MoveDoc
		}
	}
	return m, true
}
