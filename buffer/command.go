package buffer

import "fmt"

// Command is one requested editing or navigation action. The set of
// commands is closed; see the types in this file.
type Command interface {
	apply(b *Buffer, cur editState) (step, error)
}

type historyOp uint8

const (
	histRecord historyOp = iota
	histNone
	histUndo
	histRedo
)

// step is the outcome of a command: the next state and the content edits
// that produced it.
type step struct {
	next  editState
	edits []AppliedEdit
	hist  historyOp
}

// InsertText inserts Text at the cursor. An active selection is deleted
// first. Line-break units split the line; the cursor ends after the inserted
// content and the selection is cleared.
type InsertText struct {
	Text string
}

// DeleteBackward deletes the active selection, or the unit before the
// cursor, merging with the previous line at offset 0.
type DeleteBackward struct{}

// DeleteForward deletes the active selection, or the unit after the cursor,
// merging the next line at line end.
type DeleteForward struct{}

// Move is a cursor navigation transition. With Extend unset, an active
// selection collapses; with Extend set, the selection head follows the
// cursor.
type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool
}

// StartSelection anchors a selection at the cursor unless one is active.
type StartSelection struct{}

// ExtendSelection moves the cursor and the selection head to To, anchoring a
// new selection at the cursor if none is active.
type ExtendSelection struct {
	To Pos
}

// ReplaceSelection replaces the effective selection (or the caret) with Text
// and leaves the inserted text selected.
type ReplaceSelection struct {
	Text string
}

// ClearSelection removes the selection; the cursor stays put.
type ClearSelection struct{}

// SelectAll selects the whole document with the cursor at its end.
type SelectAll struct{}

// SetCursor places the cursor at Pos and clears the selection. Pos must lie
// inside the document.
type SetCursor struct {
	Pos Pos
}

// SetSelection installs a selection from Anchor to Head with the cursor at
// Head. Both positions must lie inside the document.
type SetSelection struct {
	Anchor Pos
	Head   Pos
}

// Undo restores the state before the most recent content change.
type Undo struct{}

// Redo reapplies the most recently undone content change.
type Redo struct{}

func (c InsertText) apply(b *Buffer, cur editState) (step, error) {
	text := c.Text
	if b.opt.SingleLine {
		text = stripLineBreaks(text)
	}
	r, ok := cur.sel.effective()
	if !ok {
		r = Range{Start: cur.cursor, End: cur.cursor}
	}
	return replaceStep(cur, r, text, false), nil
}

func (DeleteBackward) apply(_ *Buffer, cur editState) (step, error) {
	if r, ok := cur.sel.effective(); ok {
		return replaceStep(cur, r, "", false), nil
	}
	to := cur.cursor
	from := cur.store.moveGrapheme(to, DirLeft)
	return deleteAdjacent(cur, from, to), nil
}

func (DeleteForward) apply(_ *Buffer, cur editState) (step, error) {
	if r, ok := cur.sel.effective(); ok {
		return replaceStep(cur, r, "", false), nil
	}
	from := cur.cursor
	to := cur.store.moveGrapheme(from, DirRight)
	return deleteAdjacent(cur, from, to), nil
}

func (m Move) apply(b *Buffer, cur editState) (step, error) {
	next := cur
	next.cursor, next.goal = b.navigate(cur, m.Unit, m.Dir)
	if m.Extend {
		next.sel = extendSelection(cur.sel, cur.cursor, next.cursor)
	} else {
		next.sel = selectionState{}
	}
	return step{next: next, hist: histNone}, nil
}

func (StartSelection) apply(_ *Buffer, cur editState) (step, error) {
	next := cur
	next.sel = startSelection(cur.sel, cur.cursor)
	return step{next: next, hist: histNone}, nil
}

func (c ExtendSelection) apply(_ *Buffer, cur editState) (step, error) {
	if !cur.store.validPos(c.To) {
		return step{}, fmt.Errorf("extend selection to %v: %w", c.To, ErrOutOfRange)
	}
	next := cur
	next.sel = extendSelection(cur.sel, cur.cursor, c.To)
	next.cursor = c.To
	return step{next: next, hist: histNone}, nil
}

func (c ReplaceSelection) apply(b *Buffer, cur editState) (step, error) {
	text := c.Text
	if b.opt.SingleLine {
		text = stripLineBreaks(text)
	}
	r, ok := cur.sel.effective()
	if !ok {
		r = Range{Start: cur.cursor, End: cur.cursor}
	}
	return replaceStep(cur, r, text, true), nil
}

func (ClearSelection) apply(_ *Buffer, cur editState) (step, error) {
	next := cur
	next.sel = selectionState{}
	return step{next: next, hist: histNone}, nil
}

func (SelectAll) apply(_ *Buffer, cur editState) (step, error) {
	next := cur
	end := cur.store.endPos()
	next.sel = selectionState{active: true, anchor: Pos{}, head: end}
	next.cursor = end
	return step{next: next, hist: histNone}, nil
}

func (c SetCursor) apply(_ *Buffer, cur editState) (step, error) {
	if !cur.store.validPos(c.Pos) {
		return step{}, fmt.Errorf("set cursor %v: %w", c.Pos, ErrOutOfRange)
	}
	next := cur
	next.cursor = c.Pos
	next.sel = selectionState{}
	return step{next: next, hist: histNone}, nil
}

func (c SetSelection) apply(_ *Buffer, cur editState) (step, error) {
	if !cur.store.validPos(c.Anchor) {
		return step{}, fmt.Errorf("set selection anchor %v: %w", c.Anchor, ErrOutOfRange)
	}
	if !cur.store.validPos(c.Head) {
		return step{}, fmt.Errorf("set selection head %v: %w", c.Head, ErrOutOfRange)
	}
	next := cur
	next.sel = selectionState{active: true, anchor: c.Anchor, head: c.Head}
	next.cursor = c.Head
	return step{next: next, hist: histNone}, nil
}

func keepsGoal(cmd Command) bool {
	m, ok := cmd.(Move)
	return ok && m.Unit != MoveDoc && m.Dir.vertical()
}

// navigate resolves one transition from the current cursor. Vertical moves
// honor the goal column when PreserveColumn is set.
func (b *Buffer) navigate(cur editState, unit MoveUnit, dir MoveDir) (Pos, goalColumn) {
	s := cur.store
	if !b.opt.PreserveColumn || unit == MoveDoc || !dir.vertical() {
		return s.Navigate(cur.cursor, unit, dir), goalColumn{}
	}

	goal := cur.goal
	if !goal.set {
		goal = goalColumn{set: true, col: s.columnOf(cur.cursor.Line, cur.cursor.Offset, b.opt.TabWidth)}
	}
	target := s.Navigate(cur.cursor, MoveLine, dir)
	if target.Line == cur.cursor.Line {
		return cur.cursor, goal
	}
	return Pos{Line: target.Line, Offset: s.offsetAtColumn(target.Line, goal.col, b.opt.TabWidth)}, goal
}
