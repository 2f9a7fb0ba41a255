package buffer

import "testing"

func TestHistory_UndoRedoRestoresTextCursorAndSelection(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(Selection{Anchor: Pos{0, 1}, Head: Pos{0, 4}})
	b.InsertText("i")
	if got := b.Text(); got != "hio" {
		t.Fatalf("text=%q, want %q", got, "hio")
	}

	if !b.Undo() {
		t.Fatalf("expected undo")
	}
	if got := b.Text(); got != "hello" {
		t.Fatalf("text after undo=%q, want %q", got, "hello")
	}
	sel, ok := b.Selection()
	if !ok || sel != (Selection{Anchor: Pos{0, 1}, Head: Pos{0, 4}}) {
		t.Fatalf("selection after undo=%+v ok=%v", sel, ok)
	}
	if got, want := b.Cursor(), (Pos{0, 4}); got != want {
		t.Fatalf("cursor after undo=%v, want %v", got, want)
	}

	if !b.Redo() {
		t.Fatalf("expected redo")
	}
	if got := b.Text(); got != "hio" {
		t.Fatalf("text after redo=%q, want %q", got, "hio")
	}
	if got, want := b.Cursor(), (Pos{0, 2}); got != want {
		t.Fatalf("cursor after redo=%v, want %v", got, want)
	}
	if b.CanRedo() {
		t.Fatalf("expected redo stack drained")
	}
}

func TestHistory_NavigationIsNotRecorded(t *testing.T) {
	b := New("", Options{})
	b.InsertText("ab")
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft, Extend: true})

	if !b.Undo() {
		t.Fatalf("expected undo")
	}
	if got := b.Text(); got != "" {
		t.Fatalf("text=%q, want empty", got)
	}
	if b.CanUndo() {
		t.Fatalf("expected nothing left to undo")
	}
	if b.Undo() {
		t.Fatalf("expected undo to report false")
	}
}

func TestHistory_NewEditClearsRedo(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	b.InsertText("b")
	b.Undo()
	if !b.CanRedo() {
		t.Fatalf("expected redo available")
	}
	b.InsertText("c")
	if b.CanRedo() {
		t.Fatalf("expected redo cleared by new edit")
	}
	if got := b.Text(); got != "ac" {
		t.Fatalf("text=%q, want %q", got, "ac")
	}
}

func TestHistory_Limit(t *testing.T) {
	b := New("", Options{HistoryLimit: 2})
	for _, s := range []string{"a", "b", "c"} {
		b.InsertText(s)
	}
	if !b.Undo() || !b.Undo() {
		t.Fatalf("expected two undos")
	}
	if b.Undo() {
		t.Fatalf("expected history limited to 2")
	}
	if got := b.Text(); got != "a" {
		t.Fatalf("text=%q, want %q", got, "a")
	}
}

func TestHistory_Disabled(t *testing.T) {
	b := New("", Options{HistoryLimit: -1})
	b.InsertText("a")
	if b.CanUndo() {
		t.Fatalf("expected history disabled")
	}
	s, err := b.Apply(Undo{})
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if s.Text() != "a" {
		t.Fatalf("text=%q, want %q", s.Text(), "a")
	}
}

func TestHistory_UndoBumpsVersions(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	v, tv := b.Version(), b.TextVersion()
	b.Undo()
	if b.Version() != v+1 || b.TextVersion() != tv+1 {
		t.Fatalf("versions=(%d,%d), want (%d,%d)", b.Version(), b.TextVersion(), v+1, tv+1)
	}
}
