package buffer

// historyState holds committed states around content changes. States share
// line slices with the live store, which is safe because committed stores
// are never mutated.
type historyState struct {
	undo []editState
	redo []editState
}

func (b *Buffer) recordUndo(prev editState) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	b.hist.undo = append(b.hist.undo, historyEntry(prev))
	if len(b.hist.undo) > limit {
		b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
	}
	b.hist.redo = nil
}

func historyEntry(s editState) editState {
	s.goal = goalColumn{}
	return s
}

func (b *Buffer) popUndo(cur editState) {
	i := len(b.hist.undo) - 1
	b.hist.undo = b.hist.undo[:i]
	b.hist.redo = append(b.hist.redo, historyEntry(cur))
}

func (b *Buffer) popRedo(cur editState) {
	i := len(b.hist.redo) - 1
	b.hist.redo = b.hist.redo[:i]

	limit := b.opt.HistoryLimit
	if limit > 0 {
		b.hist.undo = append(b.hist.undo, historyEntry(cur))
		if len(b.hist.undo) > limit {
			b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
		}
	}
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// Undo reverts the most recent content change. It reports false when there
// is nothing to undo.
func (b *Buffer) Undo() bool {
	if !b.CanUndo() {
		return false
	}
	_, _ = b.Apply(Undo{})
	return true
}

// Redo reapplies the most recently undone change. It reports false when
// there is nothing to redo.
func (b *Buffer) Redo() bool {
	if !b.CanRedo() {
		return false
	}
	_, _ = b.Apply(Redo{})
	return true
}

func (Undo) apply(b *Buffer, cur editState) (step, error) {
	if len(b.hist.undo) == 0 {
		return step{next: cur, hist: histNone}, nil
	}
	return restoreStep(cur, b.hist.undo[len(b.hist.undo)-1], histUndo), nil
}

func (Redo) apply(b *Buffer, cur editState) (step, error) {
	if len(b.hist.redo) == 0 {
		return step{next: cur, hist: histNone}, nil
	}
	return restoreStep(cur, b.hist.redo[len(b.hist.redo)-1], histRedo), nil
}

func restoreStep(cur, target editState, op historyOp) step {
	st := step{next: target, hist: op}
	if applied, ok := replacementAppliedEdit(cur.store, target.store); ok {
		st.edits = []AppliedEdit{applied}
	}
	return st
}
