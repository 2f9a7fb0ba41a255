package buffer

import "github.com/iw2rmb/ttytext/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

func (d MoveDir) vertical() bool { return d == DirUp || d == DirDown }

// Navigate returns the position reached from p by one transition. The result
// is always a valid position in s; out-of-bounds input is clamped first.
func (s *LineStore) Navigate(p Pos, unit MoveUnit, dir MoveDir) Pos {
	p = s.clampPos(p)
	var next Pos
	switch unit {
	case MoveGrapheme:
		next = s.moveGrapheme(p, dir)
	case MoveWord:
		next = s.moveWord(p, dir)
	case MoveLine:
		next = s.moveLine(p, dir)
	case MoveDoc:
		next = s.moveDoc(p, dir)
	default:
		next = p
	}
	return s.clampPos(next)
}

func (s *LineStore) moveGrapheme(p Pos, dir MoveDir) Pos {
	line, off := p.Line, p.Offset
	last := len(s.lines) - 1

	switch dir {
	case DirLeft:
		if line == 0 && off == 0 {
			return p
		}
		if off > 0 {
			return Pos{Line: line, Offset: off - 1}
		}
		return Pos{Line: line - 1, Offset: len(s.lines[line-1])}
	case DirRight:
		if line == last && off == len(s.lines[last]) {
			return p
		}
		if off < len(s.lines[line]) {
			return Pos{Line: line, Offset: off + 1}
		}
		return Pos{Line: line + 1, Offset: 0}
	case DirUp, DirDown, DirHome, DirEnd:
		return s.moveLine(p, dir)
	default:
		return p
	}
}

// moveWord skips non-word units, then word units, in the requested
// direction. A line break counts as non-word, so the scan may continue on the
// adjacent line.
func (s *LineStore) moveWord(p Pos, dir MoveDir) Pos {
	line, off := p.Line, p.Offset
	last := len(s.lines) - 1

	switch dir {
	case DirRight:
		for {
			units := s.lines[line]
			for off < len(units) && !units[off].IsWord() {
				off++
			}
			if off < len(units) || line == last {
				break
			}
			line++
			off = 0
		}
		units := s.lines[line]
		for off < len(units) && units[off].IsWord() {
			off++
		}
		return Pos{Line: line, Offset: off}
	case DirLeft:
		for {
			units := s.lines[line]
			for off > 0 && !units[off-1].IsWord() {
				off--
			}
			if off > 0 || line == 0 {
				break
			}
			line--
			off = len(s.lines[line])
		}
		units := s.lines[line]
		for off > 0 && units[off-1].IsWord() {
			off--
		}
		return Pos{Line: line, Offset: off}
	case DirUp, DirDown, DirHome, DirEnd:
		return s.moveLine(p, dir)
	default:
		return p
	}
}

func (s *LineStore) moveLine(p Pos, dir MoveDir) Pos {
	line, off := p.Line, p.Offset
	last := len(s.lines) - 1

	switch dir {
	case DirHome:
		return Pos{Line: line, Offset: 0}
	case DirEnd:
		return Pos{Line: line, Offset: len(s.lines[line])}
	case DirUp:
		if line == 0 {
			return p
		}
		nl := line - 1
		return Pos{Line: nl, Offset: minInt(off, len(s.lines[nl]))}
	case DirDown:
		if line == last {
			return p
		}
		nl := line + 1
		return Pos{Line: nl, Offset: minInt(off, len(s.lines[nl]))}
	case DirLeft, DirRight:
		return s.moveGrapheme(p, dir)
	default:
		return p
	}
}

func (s *LineStore) moveDoc(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirHome, DirUp, DirLeft:
		return Pos{}
	case DirEnd, DirDown, DirRight:
		return s.endPos()
	default:
		return p
	}
}

// columnOf returns the display column at which offset starts on line.
func (s *LineStore) columnOf(line, offset, tabWidth int) int {
	units := s.lines[line]
	col := 0
	for i := 0; i < offset && i < len(units); i++ {
		col += grapheme.Width(string(units[i]), col, tabWidth)
	}
	return col
}

// offsetAtColumn returns the largest offset on line whose start column does
// not exceed col and that does not split a unit straddling col.
func (s *LineStore) offsetAtColumn(line, col, tabWidth int) int {
	units := s.lines[line]
	c := 0
	for i, u := range units {
		w := grapheme.Width(string(u), c, tabWidth)
		if c+w > col {
			return i
		}
		c += w
	}
	return len(units)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
