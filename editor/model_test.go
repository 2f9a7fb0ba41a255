package editor

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	"github.com/iw2rmb/ttytext/buffer"
)

type refreshMsg struct{}

func viewLines(m Model) []string {
	got := strings.Split(m.View(), "\n")
	for i := range got {
		got[i] = strings.TrimRight(ansi.Strip(got[i]), " ")
	}
	return got
}

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc"})
	m = m.Blur()

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
}

func TestView_SnapshotFixedSize(t *testing.T) {
	m := New(Config{
		Text:         "one\ntwo\nthree\nfour\nfive",
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(8, 3)

	got := viewLines(m)
	want := []string{
		"1 one",
		"2 two",
		"3 three",
	}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestModel_FollowsCursorVertically(t *testing.T) {
	m := New(Config{Text: "one\ntwo\nthree\nfour\nfive"})
	m = m.Blur()
	m = m.SetSize(10, 2)

	m.Buffer().Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})
	m, _ = m.Update(refreshMsg{})

	got := viewLines(m)
	want := []string{"four", "five"}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestModel_FollowsCursorHorizontally(t *testing.T) {
	m := New(Config{Text: "abcdefghij"})
	m = m.SetSize(4, 1)

	m.Buffer().Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	m, _ = m.Update(refreshMsg{})

	if got := viewLines(m)[0]; got != "hij" {
		t.Fatalf("scrolled line=%q, want %q", got, "hij")
	}

	m.Buffer().Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	m, _ = m.Update(refreshMsg{})
	if got := viewLines(m)[0]; got != "abcd" {
		t.Fatalf("line after home=%q, want %q", got, "abcd")
	}
}

func TestModel_DefaultsIDAndKeyMap(t *testing.T) {
	m := New(Config{})
	if _, err := uuid.Parse(m.ID()); err != nil {
		t.Fatalf("ID()=%q is not a UUID: %v", m.ID(), err)
	}
	if got := m.cfg.KeyMap.Undo.Keys(); len(got) == 0 {
		t.Fatalf("expected default key map")
	}

	m = New(Config{ID: "title"})
	if got := m.ID(); got != "title" {
		t.Fatalf("ID()=%q, want %q", got, "title")
	}
}

func TestModel_SetValueIsUndoable(t *testing.T) {
	m := New(Config{Text: "old"})
	m = m.SetValue("new\ntext")

	if got := m.Value(); got != "new\ntext" {
		t.Fatalf("value=%q, want %q", got, "new\ntext")
	}
	if got, want := m.Buffer().Cursor(), (buffer.Pos{Line: 1, Offset: 4}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if !m.Buffer().Undo() {
		t.Fatalf("expected undo")
	}
	if got := m.Value(); got != "old" {
		t.Fatalf("value after undo=%q, want %q", got, "old")
	}
}

func TestModel_SingleLineConfig(t *testing.T) {
	m := New(Config{Text: "a\nb", SingleLine: true})
	if got := m.Value(); got != "ab" {
		t.Fatalf("value=%q, want %q", got, "ab")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Value(); got != "ab" {
		t.Fatalf("value after enter=%q, want %q", got, "ab")
	}
}
