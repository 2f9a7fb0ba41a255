package buffer

import "github.com/iw2rmb/ttytext/internal/grapheme"

// SnapshotLine is one line of a Snapshot with per-unit display widths.
type SnapshotLine struct {
	Units  []Unit
	Widths []int // cells per unit, tab stops resolved from column 0
	Text   string
	Width  int // total cells
}

// Snapshot is a read-only projection of the buffer for rendering. It owns
// its slices; mutating them does not affect the buffer.
type Snapshot struct {
	Version     uint64
	TextVersion uint64
	Lines       []SnapshotLine

	Cursor       Pos
	CursorColumn int // display cells before the cursor on its line

	Selection    Range // normalized; valid when HasSelection
	HasSelection bool  // the selection covers at least one position

	// SelectionPresent is set for any selection, including one collapsed to
	// the cursor; RawSelection keeps its direction.
	SelectionPresent bool
	RawSelection     Selection
}

// Snapshot builds a fresh Snapshot of the current state.
func (b *Buffer) Snapshot() Snapshot {
	tabWidth := b.opt.TabWidth
	lines := make([]SnapshotLine, len(b.store.lines))
	for i, units := range b.store.lines {
		lines[i] = snapshotLine(units, tabWidth)
	}

	s := Snapshot{
		Version:     b.version,
		TextVersion: b.textVersion,
		Lines:       lines,
		Cursor:      b.cursor,
	}
	s.CursorColumn = s.ColumnAt(b.cursor)
	s.Selection, s.HasSelection = b.sel.effective()
	s.RawSelection, s.SelectionPresent = b.sel.selection()
	return s
}

func snapshotLine(units []Unit, tabWidth int) SnapshotLine {
	l := SnapshotLine{
		Units:  append([]Unit(nil), units...),
		Widths: make([]int, len(units)),
		Text:   joinUnits(units),
	}
	col := 0
	for i, u := range units {
		w := grapheme.Width(string(u), col, tabWidth)
		l.Widths[i] = w
		col += w
	}
	l.Width = col
	return l
}

// ColumnAt returns the display column where p starts on its line. Positions
// outside the snapshot return 0.
func (s Snapshot) ColumnAt(p Pos) int {
	if p.Line < 0 || p.Line >= len(s.Lines) {
		return 0
	}
	widths := s.Lines[p.Line].Widths
	col := 0
	for i := 0; i < p.Offset && i < len(widths); i++ {
		col += widths[i]
	}
	return col
}

// Text joins all lines with "\n".
func (s Snapshot) Text() string {
	n := 0
	for _, l := range s.Lines {
		n += len(l.Text) + 1
	}
	b := make([]byte, 0, n)
	for i, l := range s.Lines {
		if i > 0 {
			b = append(b, '\n')
		}
		b = append(b, l.Text...)
	}
	return string(b)
}

// SelectionOnLine returns the offsets [from, to) of line covered by the
// selection. A selection spanning the line break after line extends to
// past its last unit (to == len(units)+1).
func (s Snapshot) SelectionOnLine(line int) (from, to int, ok bool) {
	if !s.HasSelection || line < s.Selection.Start.Line || line > s.Selection.End.Line {
		return 0, 0, false
	}
	if line < 0 || line >= len(s.Lines) {
		return 0, 0, false
	}
	n := len(s.Lines[line].Units)
	from, to = 0, n+1
	if line == s.Selection.Start.Line {
		from = s.Selection.Start.Offset
	}
	if line == s.Selection.End.Line {
		to = s.Selection.End.Offset
	}
	if from >= to {
		return 0, 0, false
	}
	return from, to, true
}

// OffsetAtColumn returns the unit offset on line whose cells cover display
// column col. Columns past the line end map to the line length.
func (s Snapshot) OffsetAtColumn(line, col int) int {
	if line < 0 || line >= len(s.Lines) {
		return 0
	}
	c := 0
	for i, w := range s.Lines[line].Widths {
		if col < c+w {
			return i
		}
		c += w
	}
	return len(s.Lines[line].Widths)
}
