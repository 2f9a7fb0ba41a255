package buffer

import (
	"io"
	"log"
	"strings"
)

// DefaultTabWidth is the tab stop used when Options.TabWidth is zero.
const DefaultTabWidth = 4

type Options struct {
	HistoryLimit int // default: 1000; negative disables history
	TabWidth     int // default: DefaultTabWidth

	// SingleLine drops line-break units from inserted text and collapses the
	// initial text onto one line.
	SingleLine bool

	// PreserveColumn makes vertical moves target the display column the run
	// of vertical moves started from instead of clamping the unit offset.
	PreserveColumn bool

	// Logger receives diagnostics (rejected commands, applied edits).
	// Nil discards.
	Logger *log.Logger
}

type goalColumn struct {
	set bool
	col int
}

// editState is the triple a Command reads and produces. The store is never
// mutated once committed; commands edit a clone.
type editState struct {
	store  *LineStore
	cursor Pos
	sel    selectionState
	goal   goalColumn
}

// Buffer is the edit engine: lines, cursor, and selection kept mutually
// consistent. It is not safe for concurrent use.
type Buffer struct {
	store  *LineStore
	cursor Pos
	sel    selectionState
	goal   goalColumn

	version     uint64
	textVersion uint64

	opt  Options
	hist historyState
	log  *log.Logger

	lastChange    Change
	hasLastChange bool
}

// New returns a buffer holding text with the cursor at (0,0) and no
// selection.
func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	if opt.TabWidth <= 0 {
		opt.TabWidth = DefaultTabWidth
	}
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if opt.SingleLine {
		text = stripLineBreaks(text)
	}
	return &Buffer{
		store: NewLineStore(text),
		opt:   opt,
		log:   logger,
	}
}

// NewWithCursor returns a buffer holding text with the cursor clamped into
// the document from cursor.
func NewWithCursor(text string, cursor Pos, opt Options) *Buffer {
	b := New(text, opt)
	b.cursor = b.store.clampPos(cursor)
	return b
}

func (b *Buffer) Text() string { return b.store.Text() }

// Lines returns every line as a string.
func (b *Buffer) Lines() []string { return b.store.Strings() }

func (b *Buffer) LineCount() int { return b.store.LineCount() }

func (b *Buffer) LineLen(line int) (int, error) { return b.store.LineLen(line) }

// Line returns a copy of the units on line.
func (b *Buffer) Line(line int) ([]Unit, error) { return b.store.Line(line) }

// Version increments on every effective change of content, cursor, or
// selection.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increments only when content changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) Options() Options { return b.opt }

// Selection returns the raw selection, preserving its direction. A present
// selection may be empty (anchor == head).
func (b *Buffer) Selection() (Selection, bool) { return b.sel.selection() }

// SelectionRange returns the normalized selection when it covers at least one
// position.
func (b *Buffer) SelectionRange() (Range, bool) { return b.sel.effective() }

// SelectedText returns the text covered by the effective selection.
func (b *Buffer) SelectedText() string {
	r, ok := b.sel.effective()
	if !ok {
		return ""
	}
	return b.store.textInRange(r)
}

// ClampPos clamps p into the current document.
func (b *Buffer) ClampPos(p Pos) Pos { return b.store.clampPos(p) }

// Apply applies cmd as one atomic step. On error the buffer is unchanged.
func (b *Buffer) Apply(cmd Command) (Snapshot, error) {
	if cmd == nil {
		return b.Snapshot(), nil
	}

	cur := b.state()
	st, err := cmd.apply(b, cur)
	if err != nil {
		b.log.Printf("[WARN] buffer: %T rejected: %v", cmd, err)
		return Snapshot{}, err
	}
	if !keepsGoal(cmd) {
		st.next.goal = goalColumn{}
	}
	b.commit(cur, st)
	return b.Snapshot(), nil
}

func (b *Buffer) state() editState {
	return editState{store: b.store, cursor: b.cursor, sel: b.sel, goal: b.goal}
}

func (b *Buffer) commit(prev editState, st step) {
	next := st.next
	textChanged := len(st.edits) > 0
	changed := textChanged || prev.cursor != next.cursor || !selectionStateEqual(prev.sel, next.sel)

	switch st.hist {
	case histRecord:
		if textChanged {
			b.recordUndo(prev)
		}
	case histUndo:
		b.popUndo(prev)
	case histRedo:
		b.popRedo(prev)
	}

	b.store = next.store
	b.cursor = next.cursor
	b.sel = next.sel
	b.goal = next.goal
	if !changed {
		return
	}

	versionBefore := b.version
	b.version++
	if !textChanged {
		return
	}
	b.textVersion++
	b.lastChange = Change{
		VersionBefore:   versionBefore,
		VersionAfter:    b.version,
		CursorBefore:    prev.cursor,
		CursorAfter:     next.cursor,
		SelectionBefore: selectionStateFromInternal(prev.sel),
		SelectionAfter:  selectionStateFromInternal(next.sel),
		AppliedEdits:    append([]AppliedEdit(nil), st.edits...),
	}
	b.hasLastChange = true
	b.log.Printf("[DEBUG] buffer: version %d -> %d, %d edit(s), cursor %v", versionBefore, b.version, len(st.edits), next.cursor)
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.head == b.head
}

// InsertText inserts s at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) { _, _ = b.Apply(InsertText{Text: s}) }

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection. It is a no-op in single-line mode.
func (b *Buffer) InsertNewline() { _, _ = b.Apply(InsertText{Text: "\n"}) }

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() { _, _ = b.Apply(DeleteBackward{}) }

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() { _, _ = b.Apply(DeleteForward{}) }

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	if _, ok := b.sel.effective(); ok {
		_, _ = b.Apply(DeleteBackward{})
	}
}

func (b *Buffer) Move(m Move) { _, _ = b.Apply(m) }

// SetCursor clamps p into the document, places the cursor there, and clears
// the selection.
func (b *Buffer) SetCursor(p Pos) { _, _ = b.Apply(SetCursor{Pos: b.store.clampPos(p)}) }

// SetSelection clamps both ends into the document and installs the
// selection with the cursor at head.
func (b *Buffer) SetSelection(sel Selection) {
	_, _ = b.Apply(SetSelection{Anchor: b.store.clampPos(sel.Anchor), Head: b.store.clampPos(sel.Head)})
}

func (b *Buffer) ClearSelection() { _, _ = b.Apply(ClearSelection{}) }

func stripLineBreaks(text string) string {
	if !strings.ContainsAny(text, "\r\n") {
		return text
	}
	return strings.NewReplacer("\r\n", "", "\n", "", "\r", "").Replace(text)
}
