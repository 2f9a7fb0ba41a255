package buffer

import (
	"fmt"
	"strings"
)

// LineStore is an ordered sequence of lines, each an ordered sequence of
// units. It always holds at least one line and knows nothing about cursors
// or selections.
//
// Line slices are never mutated in place: every structural operation
// installs freshly allocated slices, so a shallow clone can serve as a
// scratch copy.
type LineStore struct {
	lines [][]Unit
}

// NewLineStore builds a store from text, splitting at line-break units.
func NewLineStore(text string) *LineStore {
	return &LineStore{lines: splitAtLineBreaks(text)}
}

func (s *LineStore) clone() *LineStore {
	return &LineStore{lines: append([][]Unit(nil), s.lines...)}
}

// LineCount returns the number of lines (always >= 1).
func (s *LineStore) LineCount() int { return len(s.lines) }

// Line returns a copy of the units at line at.
func (s *LineStore) Line(at int) ([]Unit, error) {
	if at < 0 || at >= len(s.lines) {
		return nil, fmt.Errorf("line %d of %d: %w", at, len(s.lines), ErrOutOfRange)
	}
	return append([]Unit(nil), s.lines[at]...), nil
}

// LineLen returns the unit count of line at.
func (s *LineStore) LineLen(at int) (int, error) {
	if at < 0 || at >= len(s.lines) {
		return 0, fmt.Errorf("line length %d of %d: %w", at, len(s.lines), ErrOutOfRange)
	}
	return len(s.lines[at]), nil
}

func (s *LineStore) lineLen(at int) int {
	if at < 0 || at >= len(s.lines) {
		return 0
	}
	return len(s.lines[at])
}

// InsertLine inserts content as a new line at index at, shifting later lines
// down. at may equal LineCount to append.
func (s *LineStore) InsertLine(at int, content []Unit) error {
	if at < 0 || at > len(s.lines) {
		return fmt.Errorf("insert line %d of %d: %w", at, len(s.lines), ErrOutOfRange)
	}
	line := append([]Unit(nil), content...)
	out := make([][]Unit, 0, len(s.lines)+1)
	out = append(out, s.lines[:at]...)
	out = append(out, line)
	out = append(out, s.lines[at:]...)
	s.lines = out
	return nil
}

// RemoveLine removes and returns line at. The only remaining line cannot be
// removed.
func (s *LineStore) RemoveLine(at int) ([]Unit, error) {
	if at < 0 || at >= len(s.lines) {
		return nil, fmt.Errorf("remove line %d of %d: %w", at, len(s.lines), ErrOutOfRange)
	}
	if len(s.lines) == 1 {
		return nil, fmt.Errorf("remove line %d: %w", at, ErrLastLineProtected)
	}
	removed := s.lines[at]
	out := make([][]Unit, 0, len(s.lines)-1)
	out = append(out, s.lines[:at]...)
	out = append(out, s.lines[at+1:]...)
	s.lines = out
	return append([]Unit(nil), removed...), nil
}

// SplitLine splits line at.Line at at.Offset into two lines. Splitting at the
// line end yields an empty trailing line.
func (s *LineStore) SplitLine(at Pos) error {
	if at.Line < 0 || at.Line >= len(s.lines) {
		return fmt.Errorf("split line %d of %d: %w", at.Line, len(s.lines), ErrOutOfRange)
	}
	line := s.lines[at.Line]
	if at.Offset < 0 || at.Offset > len(line) {
		return fmt.Errorf("split line %d at offset %d of %d: %w", at.Line, at.Offset, len(line), ErrOutOfRange)
	}
	head := append([]Unit(nil), line[:at.Offset]...)
	tail := append([]Unit(nil), line[at.Offset:]...)

	out := make([][]Unit, 0, len(s.lines)+1)
	out = append(out, s.lines[:at.Line]...)
	out = append(out, head, tail)
	out = append(out, s.lines[at.Line+1:]...)
	s.lines = out
	return nil
}

// MergeLine appends line at+1 onto line at and removes line at+1. A
// cluster formed across the join becomes one unit.
func (s *LineStore) MergeLine(at int) error {
	if at < 0 || at+1 >= len(s.lines) {
		return fmt.Errorf("merge line %d of %d: %w", at, len(s.lines), ErrOutOfRange)
	}
	merged := resegment(s.lines[at], s.lines[at+1])

	out := make([][]Unit, 0, len(s.lines)-1)
	out = append(out, s.lines[:at]...)
	out = append(out, merged)
	out = append(out, s.lines[at+2:]...)
	s.lines = out
	return nil
}

// replaceLine installs content as line at. Callers validate at.
func (s *LineStore) replaceLine(at int, content []Unit) {
	s.lines[at] = content
}

// Text joins all lines with "\n".
func (s *LineStore) Text() string {
	var sb strings.Builder
	for i, line := range s.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, u := range line {
			sb.WriteString(string(u))
		}
	}
	return sb.String()
}

// Strings returns every line joined into a string.
func (s *LineStore) Strings() []string {
	out := make([]string, len(s.lines))
	for i, line := range s.lines {
		out[i] = joinUnits(line)
	}
	return out
}

func (s *LineStore) clampPos(p Pos) Pos {
	return ClampPos(p, len(s.lines), s.lineLen)
}

func (s *LineStore) validPos(p Pos) bool {
	return p.Line >= 0 && p.Line < len(s.lines) && p.Offset >= 0 && p.Offset <= len(s.lines[p.Line])
}

func (s *LineStore) endPos() Pos {
	last := len(s.lines) - 1
	return Pos{Line: last, Offset: len(s.lines[last])}
}

// textInRange returns the joined text of r, with "\n" between lines.
func (s *LineStore) textInRange(r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Line == r.End.Line {
		return joinUnits(s.lines[r.Start.Line][r.Start.Offset:r.End.Offset])
	}

	var sb strings.Builder
	for line := r.Start.Line; line <= r.End.Line; line++ {
		if line > r.Start.Line {
			sb.WriteByte('\n')
		}
		from, to := 0, len(s.lines[line])
		if line == r.Start.Line {
			from = r.Start.Offset
		}
		if line == r.End.Line {
			to = r.End.Offset
		}
		sb.WriteString(joinUnits(s.lines[line][from:to]))
	}
	return sb.String()
}
