package buffer

// SelectionState captures normalized selection state at a point in time.
type SelectionState struct {
	Active bool
	Range  Range
}

// AppliedEdit describes one effective edit in a change.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change describes the most recent content mutation.
type Change struct {
	VersionBefore   uint64
	VersionAfter    uint64
	CursorBefore    Pos
	CursorAfter     Pos
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	AppliedEdits    []AppliedEdit
}

// LastChange returns the most recent content change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return cloneChange(b.lastChange), true
}

func cloneChange(in Change) Change {
	out := in
	out.AppliedEdits = append([]AppliedEdit(nil), in.AppliedEdits...)
	return out
}

func selectionStateFromInternal(sel selectionState) SelectionState {
	r, ok := sel.effective()
	if !ok {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: r}
}

// replacementAppliedEdit describes moving from one store to another as a
// single edit spanning the differing middle of the two documents.
func replacementAppliedEdit(before, after *LineStore) (AppliedEdit, bool) {
	if before == after {
		return AppliedEdit{}, false
	}
	beforeText, afterText := before.Text(), after.Text()
	if beforeText == afterText {
		return AppliedEdit{}, false
	}

	start := commonPrefix(before, after)
	endBefore, endAfter := commonSuffix(before, after, start)
	return AppliedEdit{
		RangeBefore: Range{Start: start, End: endBefore},
		RangeAfter:  Range{Start: start, End: endAfter},
		InsertText:  after.textInRange(Range{Start: start, End: endAfter}),
		DeletedText: before.textInRange(Range{Start: start, End: endBefore}),
	}, true
}

// commonPrefix returns the first position where a and b differ.
func commonPrefix(a, b *LineStore) Pos {
	n := minInt(len(a.lines), len(b.lines))
	for line := 0; line < n; line++ {
		la, lb := a.lines[line], b.lines[line]
		m := minInt(len(la), len(lb))
		off := 0
		for off < m && la[off] == lb[off] {
			off++
		}
		if off < len(la) || off < len(lb) || line == n-1 {
			return Pos{Line: line, Offset: off}
		}
	}
	return Pos{}
}

// commonSuffix walks both documents backwards from their ends, stopping at
// the first difference or at start.
func commonSuffix(a, b *LineStore, start Pos) (Pos, Pos) {
	pa, pb := a.endPos(), b.endPos()
	for ComparePos(pa, start) > 0 && ComparePos(pb, start) > 0 {
		na := a.moveGrapheme(pa, DirLeft)
		nb := b.moveGrapheme(pb, DirLeft)
		if a.textInRange(Range{Start: na, End: pa}) != b.textInRange(Range{Start: nb, End: pb}) {
			break
		}
		pa, pb = na, nb
	}
	return pa, pb
}
