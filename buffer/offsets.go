package buffer

import "fmt"

type OffsetClampMode uint8

const (
	// OffsetError rejects offsets outside the document and offsets that fall
	// inside a unit.
	OffsetError OffsetClampMode = iota
	// OffsetClamp clamps out-of-range offsets to the document bounds.
	OffsetClamp
)

// Offsets address the joined document text, with each line break counted
// as a single "\n".
type offsetMeasure func(u Unit) int

func byteLen(u Unit) int { return len(u) }

func unitLen(Unit) int { return 1 }

// PosFromByteOffset maps a byte offset of Text() to a position.
func (b *Buffer) PosFromByteOffset(off int, mode OffsetClampMode) (Pos, error) {
	return b.store.posFromOffset(off, mode, byteLen)
}

// ByteOffsetFromPos maps a position to a byte offset of Text().
func (b *Buffer) ByteOffsetFromPos(p Pos, mode OffsetClampMode) (int, error) {
	return b.store.offsetFromPos(p, mode, byteLen)
}

// PosFromUnitOffset maps an offset counted in units (line breaks count as
// one) to a position.
func (b *Buffer) PosFromUnitOffset(off int, mode OffsetClampMode) (Pos, error) {
	return b.store.posFromOffset(off, mode, unitLen)
}

// UnitOffsetFromPos maps a position to an offset counted in units.
func (b *Buffer) UnitOffsetFromPos(p Pos, mode OffsetClampMode) (int, error) {
	return b.store.offsetFromPos(p, mode, unitLen)
}

func (s *LineStore) docLen(measure offsetMeasure) int {
	total := 0
	for line, units := range s.lines {
		for _, u := range units {
			total += measure(u)
		}
		if line < len(s.lines)-1 {
			total++
		}
	}
	return total
}

func (s *LineStore) posFromOffset(off int, mode OffsetClampMode, measure offsetMeasure) (Pos, error) {
	limit := s.docLen(measure)
	switch mode {
	case OffsetClamp:
		off = clampInt(off, 0, limit)
	case OffsetError:
		if off < 0 || off > limit {
			return Pos{}, fmt.Errorf("offset %d of %d: %w", off, limit, ErrOutOfRange)
		}
	default:
		return Pos{}, fmt.Errorf("offset clamp mode %d: %w", mode, ErrOutOfRange)
	}

	cur := 0
	for line, units := range s.lines {
		if off == cur {
			return Pos{Line: line}, nil
		}
		for i, u := range units {
			next := cur + measure(u)
			if off > cur && off < next {
				if mode == OffsetClamp {
					return Pos{Line: line, Offset: i}, nil
				}
				return Pos{}, fmt.Errorf("offset %d splits unit %q: %w", off, u, ErrOutOfRange)
			}
			cur = next
			if off == cur {
				return Pos{Line: line, Offset: i + 1}, nil
			}
		}
		cur++
	}
	return s.endPos(), nil
}

func (s *LineStore) offsetFromPos(p Pos, mode OffsetClampMode, measure offsetMeasure) (int, error) {
	switch mode {
	case OffsetClamp:
		p = s.clampPos(p)
	case OffsetError:
		if !s.validPos(p) {
			return 0, fmt.Errorf("position %v: %w", p, ErrOutOfRange)
		}
	default:
		return 0, fmt.Errorf("offset clamp mode %d: %w", mode, ErrOutOfRange)
	}

	off := 0
	for line := 0; line < p.Line; line++ {
		for _, u := range s.lines[line] {
			off += measure(u)
		}
		off++
	}
	for i := 0; i < p.Offset; i++ {
		off += measure(s.lines[p.Line][i])
	}
	return off, nil
}
