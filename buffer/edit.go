package buffer

// replaceStep replaces r with text on a scratch copy of the store. The
// selection is cleared, or covers the inserted text when selectInserted is
// set.
func replaceStep(cur editState, r Range, text string, selectInserted bool) step {
	r = NormalizeRange(r)
	next := cur
	next.sel = selectionState{}

	if r.IsEmpty() && text == "" {
		return step{next: next}
	}

	scratch := cur.store.clone()
	before, after := scratch.replaceRange(r, text)
	deleted := cur.store.textInRange(before)
	inserted := scratch.textInRange(after)

	next.store = scratch
	next.cursor = after.End
	if selectInserted && !after.IsEmpty() {
		next.sel = selectionState{active: true, anchor: after.Start, head: after.End}
	}
	if deleted == inserted {
		next.store = cur.store
		return step{next: next}
	}
	return step{
		next: next,
		edits: []AppliedEdit{{
			RangeBefore: before,
			RangeAfter:  after,
			InsertText:  inserted,
			DeletedText: deleted,
		}},
	}
}

// deleteAdjacent deletes the single unit or line break between from and to,
// which are neighbours produced by a grapheme move. from == to is a no-op.
func deleteAdjacent(cur editState, from, to Pos) step {
	if from == to {
		return step{next: cur, hist: histNone}
	}
	return replaceStep(cur, Range{Start: from, End: to}, "", false)
}

// replaceRange replaces r with text. The touched lines are segmented again
// as a whole, so a cluster formed across either seam becomes one unit.
// before is the range of the old store that was rewritten and after the
// range that replaced it; after.End is just past the inserted content.
// r must be valid and normalized.
func (s *LineStore) replaceRange(r Range, text string) (before, after Range) {
	startLine, endLine := r.Start.Line, r.End.Line
	prefix := s.lines[startLine][:r.Start.Offset]
	suffix := s.lines[endLine][r.End.Offset:]
	oldEndLen := len(s.lines[endLine])
	parts := splitAtLineBreaks(text)
	last := len(parts) - 1

	repl := make([][]Unit, 0, len(parts))
	var endBytes int
	if last == 0 {
		repl = append(repl, resegment(prefix, parts[0], suffix))
		endBytes = unitsByteLen(prefix) + unitsByteLen(parts[0])
	} else {
		repl = append(repl, resegment(prefix, parts[0]))
		repl = append(repl, parts[1:last]...)
		repl = append(repl, resegment(parts[last], suffix))
		endBytes = unitsByteLen(parts[last])
	}

	startOff := minInt(offsetBeforeByte(repl[0], unitsByteLen(prefix)), r.Start.Offset)
	endOff := offsetAtByte(repl[last], endBytes)
	tail := len(repl[last]) - endOff

	before = Range{
		Start: Pos{Line: startLine, Offset: startOff},
		End:   Pos{Line: endLine, Offset: clampInt(oldEndLen-tail, r.End.Offset, oldEndLen)},
	}
	after = Range{
		Start: Pos{Line: startLine, Offset: startOff},
		End:   Pos{Line: startLine + last, Offset: endOff},
	}
	s.splice(startLine, endLine+1, repl)
	return before, after
}

// splice replaces lines [from, to) with repl in one allocation.
func (s *LineStore) splice(from, to int, repl [][]Unit) {
	out := make([][]Unit, 0, len(s.lines)-(to-from)+len(repl))
	out = append(out, s.lines[:from]...)
	out = append(out, repl...)
	out = append(out, s.lines[to:]...)
	if len(out) == 0 {
		out = [][]Unit{nil}
	}
	s.lines = out
}
