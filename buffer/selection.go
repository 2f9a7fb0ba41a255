package buffer

// Selection is an anchor-to-head range. Head follows the live cursor; Anchor
// stays where the selection started, so the direction survives reversal.
type Selection struct {
	Anchor Pos
	Head   Pos
}

// Normalized returns the selection ordered by document position.
func (s Selection) Normalized() Range {
	return NormalizeRange(Range{Start: s.Anchor, End: s.Head})
}

// IsEmpty reports whether anchor and head coincide (a caret, not a range).
func (s Selection) IsEmpty() bool { return s.Anchor == s.Head }

// IsForward reports whether head is at or after anchor.
func (s Selection) IsForward() bool { return ComparePos(s.Anchor, s.Head) <= 0 }

type selectionState struct {
	active bool
	anchor Pos
	head   Pos
}

func (s selectionState) selection() (Selection, bool) {
	if !s.active {
		return Selection{}, false
	}
	return Selection{Anchor: s.anchor, Head: s.head}, true
}

// effective returns the normalized range when the selection is present and
// non-empty; an empty selection is a caret for editing purposes.
func (s selectionState) effective() (Range, bool) {
	if !s.active || s.anchor == s.head {
		return Range{}, false
	}
	return NormalizeRange(Range{Start: s.anchor, End: s.head}), true
}

// startSelection anchors a selection at cursor unless one is already active.
func startSelection(sel selectionState, cursor Pos) selectionState {
	if sel.active {
		return sel
	}
	return selectionState{active: true, anchor: cursor, head: cursor}
}

// extendSelection moves the head to to, anchoring at cursor first when no
// selection is active.
func extendSelection(sel selectionState, cursor, to Pos) selectionState {
	sel = startSelection(sel, cursor)
	sel.head = to
	return sel
}
