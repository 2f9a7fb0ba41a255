package buffer

import "fmt"

// Pos points into the logical document by (line, offset) in grapheme units.
// Offset may equal the line length, meaning "after the last unit".
type Pos struct {
	Line   int
	Offset int
}

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.Line, p.Offset) }

// Range is a half-open selection in document coordinates: [Start, End).
// Start <= End in document order.
type Range struct {
	Start Pos
	End   Pos
}

func ComparePos(a, b Pos) int {
	if a.Line < b.Line {
		return -1
	}
	if a.Line > b.Line {
		return 1
	}
	if a.Offset < b.Offset {
		return -1
	}
	if a.Offset > b.Offset {
		return 1
	}
	return 0
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether p lies inside the half-open range.
func (r Range) Contains(p Pos) bool {
	r = NormalizeRange(r)
	return ComparePos(p, r.Start) >= 0 && ComparePos(p, r.End) < 0
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into document bounds described by lineCount and lineLen.
//
// The returned Pos always satisfies:
// - 0 <= Line < lineCount (with lineCount treated as at least 1)
// - 0 <= Offset <= lineLen(Line)
func ClampPos(p Pos, lineCount int, lineLen func(line int) int) Pos {
	if lineCount <= 0 {
		lineCount = 1
	}

	line := clampInt(p.Line, 0, lineCount-1)

	maxOff := 0
	if lineLen != nil {
		maxOff = lineLen(line)
		if maxOff < 0 {
			maxOff = 0
		}
	}
	return Pos{Line: line, Offset: clampInt(p.Offset, 0, maxOff)}
}

func ClampRange(r Range, lineCount int, lineLen func(line int) int) Range {
	return Range{
		Start: ClampPos(r.Start, lineCount, lineLen),
		End:   ClampPos(r.End, lineCount, lineLen),
	}
}
