package editor

import (
	udiff "github.com/aymanbagabas/go-udiff"

	"github.com/iw2rmb/ttytext/buffer"
)

// ChangeEvent reports the editor state after an update that changed it.
type ChangeEvent struct {
	ID          string
	Version     uint64
	TextVersion uint64
	Cursor      buffer.Pos
	Selection   buffer.SelectionState

	Text string
	// Diff is a unified diff from the previously reported text; empty when
	// only the cursor or selection moved.
	Diff string
}

func buildChangeEvent(id string, b *buffer.Buffer, prevText string) ChangeEvent {
	ev := ChangeEvent{
		ID:          id,
		Version:     b.Version(),
		TextVersion: b.TextVersion(),
		Cursor:      b.Cursor(),
		Text:        b.Text(),
	}
	if r, ok := b.SelectionRange(); ok {
		ev.Selection = buffer.SelectionState{Active: true, Range: r}
	}
	if ev.Text != prevText {
		ev.Diff = udiff.Unified(id+" (before)", id+" (after)", prevText, ev.Text)
	}
	return ev
}
