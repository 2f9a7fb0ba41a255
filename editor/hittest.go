package editor

import "github.com/iw2rmb/ttytext/buffer"

// screenToDocPos maps viewport-local mouse coordinates to a document position.
//
// Coordinates are in terminal cells: (0,0) is the top-left of the visible
// content region. Gutter clicks map to the line start; x/y are clamped into
// document bounds.
func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	s := m.buf.Snapshot()
	line := clampInt(m.viewport.YOffset+y, 0, len(s.Lines)-1)

	col := x - m.gutterWidth(len(s.Lines))
	if col < 0 {
		return buffer.Pos{Line: line}
	}
	col += m.xOffset
	return buffer.Pos{Line: line, Offset: s.OffsetAtColumn(line, col)}
}

// docToScreenPos maps a document position to viewport-local coordinates.
//
// ok is false when the mapped coordinate is outside the visible viewport.
func (m *Model) docToScreenPos(pos buffer.Pos) (x int, y int, ok bool) {
	s := m.buf.Snapshot()
	pos = m.buf.ClampPos(pos)

	x = m.gutterWidth(len(s.Lines)) + s.ColumnAt(pos) - m.xOffset
	y = pos.Line - m.viewport.YOffset
	if x < m.gutterWidth(len(s.Lines)) || y < 0 {
		return x, y, false
	}
	return x, y, m.mouseInBounds(x, y)
}

// CursorPosition returns the cursor's viewport-local cell, for hosts that
// place a terminal cursor or a popup next to it.
func (m Model) CursorPosition() (x, y int, ok bool) {
	return m.docToScreenPos(m.buf.Cursor())
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
