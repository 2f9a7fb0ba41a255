package editor

import "github.com/iw2rmb/ttytext/buffer"

// MutationMode controls whether input handling mutates the local buffer,
// emits intents to the host, or both.
type MutationMode uint8

const (
	// MutateInEditor applies resolved commands to the local buffer.
	MutateInEditor MutationMode = iota
	// EmitIntentsOnly emits intents and does not apply local mutations.
	EmitIntentsOnly
	// EmitIntentsAndMutate emits intents and applies local mutations when the
	// host decision allows it.
	EmitIntentsAndMutate
)

// EditorState captures buffer-local state before an intent is executed.
type EditorState struct {
	Version   uint64
	Cursor    buffer.Pos
	Selection buffer.SelectionState
}

// Intent is a command resolved from input, offered to the host before it
// runs. A host in EmitIntentsOnly mode typically forwards it elsewhere and
// applies it to Buffer() itself.
type Intent struct {
	ID      string
	Command buffer.Command
	Before  EditorState
}

// IntentDecision controls whether the editor applies the command locally.
// It is used in EmitIntentsAndMutate mode.
type IntentDecision struct {
	ApplyLocally bool
}

func editorStateFromBuffer(b *buffer.Buffer) EditorState {
	st := EditorState{
		Version: b.Version(),
		Cursor:  b.Cursor(),
	}
	if r, ok := b.SelectionRange(); ok {
		st.Selection = buffer.SelectionState{Active: true, Range: r}
	}
	return st
}

func normalizeMutationMode(mode MutationMode) MutationMode {
	switch mode {
	case MutateInEditor, EmitIntentsOnly, EmitIntentsAndMutate:
		return mode
	default:
		return MutateInEditor
	}
}

// emitIntent reports cmd to the host and says whether the editor should
// still apply it.
func (m Model) emitIntent(cmd buffer.Command) bool {
	mode := normalizeMutationMode(m.cfg.MutationMode)
	if mode == MutateInEditor || m.cfg.OnIntent == nil {
		return mode != EmitIntentsOnly
	}
	decision := m.cfg.OnIntent(Intent{
		ID:      m.cfg.ID,
		Command: cmd,
		Before:  editorStateFromBuffer(m.buf),
	})
	return mode == EmitIntentsAndMutate && decision.ApplyLocally
}
