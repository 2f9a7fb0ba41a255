package buffer

import "github.com/iw2rmb/ttytext/internal/grapheme"

// Unit is one user-perceived character: a grapheme cluster that the cursor
// addresses as a whole.
type Unit string

// Segment splits text into units. Malformed UTF-8 becomes a single
// replacement unit per malformed run; segmentation never fails.
func Segment(text string) []Unit {
	clusters := grapheme.Split(text)
	if len(clusters) == 0 {
		return nil
	}
	out := make([]Unit, len(clusters))
	for i, c := range clusters {
		out[i] = Unit(c)
	}
	return out
}

// Width returns the terminal cell width of u, with tabs counted as one
// tab stop of width DefaultTabWidth starting at column 0.
func (u Unit) Width() int {
	return grapheme.Width(string(u), 0, DefaultTabWidth)
}

// IsWord reports whether u is alphanumeric-like for word navigation.
func (u Unit) IsWord() bool { return grapheme.IsWord(string(u)) }

// IsLineBreak reports whether u terminates a line when inserted.
func (u Unit) IsLineBreak() bool { return grapheme.IsLineBreak(string(u)) }

func joinUnits(units []Unit) string {
	b := make([]byte, 0, unitsByteLen(units))
	for _, u := range units {
		b = append(b, u...)
	}
	return string(b)
}

// resegment joins runs and segments the result again.
func resegment(runs ...[]Unit) []Unit {
	n := 0
	for _, r := range runs {
		n += unitsByteLen(r)
	}
	b := make([]byte, 0, n)
	for _, r := range runs {
		for _, u := range r {
			b = append(b, u...)
		}
	}
	return Segment(string(b))
}

func unitsByteLen(units []Unit) int {
	n := 0
	for _, u := range units {
		n += len(u)
	}
	return n
}

// offsetAtByte returns the first unit boundary at or after byte n.
func offsetAtByte(units []Unit, n int) int {
	b := 0
	for i, u := range units {
		if b >= n {
			return i
		}
		b += len(u)
	}
	return len(units)
}

// offsetBeforeByte returns the last unit boundary at or before byte n.
func offsetBeforeByte(units []Unit, n int) int {
	b := 0
	for i, u := range units {
		b += len(u)
		if b > n {
			return i
		}
	}
	return len(units)
}

// splitAtLineBreaks segments text into per-line unit runs. The result always
// has at least one (possibly empty) element.
func splitAtLineBreaks(text string) [][]Unit {
	out := [][]Unit{nil}
	for _, u := range Segment(text) {
		if u.IsLineBreak() {
			out = append(out, nil)
			continue
		}
		out[len(out)-1] = append(out[len(out)-1], u)
	}
	return out
}
