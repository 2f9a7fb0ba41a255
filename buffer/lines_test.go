package buffer

import (
	"errors"
	"reflect"
	"testing"
)

func TestLineStore_NewSplitsAtLineBreaks(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{text: "", want: []string{""}},
		{text: "ab", want: []string{"ab"}},
		{text: "a\nb", want: []string{"a", "b"}},
		{text: "a\r\nb\rc", want: []string{"a", "b", "c"}},
		{text: "a\n", want: []string{"a", ""}},
	}
	for _, tc := range cases {
		if got := NewLineStore(tc.text).Strings(); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("NewLineStore(%q)=%q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestLineStore_InsertLine(t *testing.T) {
	s := NewLineStore("a\nc")
	if err := s.InsertLine(1, Segment("b")); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.InsertLine(3, Segment("d")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if got, want := s.Strings(), []string{"a", "b", "c", "d"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}

	err := s.InsertLine(5, nil)
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("insert past end err=%v, want ErrOutOfRange", err)
	}
	if got := s.LineCount(); got != 4 {
		t.Fatalf("line count after failed insert=%d, want 4", got)
	}
}

func TestLineStore_RemoveLine(t *testing.T) {
	s := NewLineStore("a\nb")
	removed, err := s.RemoveLine(0)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := joinUnits(removed); got != "a" {
		t.Fatalf("removed=%q, want %q", got, "a")
	}

	if _, err := s.RemoveLine(0); !errors.Is(err, ErrLastLineProtected) {
		t.Fatalf("remove last err=%v, want ErrLastLineProtected", err)
	}
	if got, want := s.Strings(), []string{"b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}

	if _, err := s.RemoveLine(3); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("remove out of range err=%v, want ErrOutOfRange", err)
	}
}

func TestLineStore_SplitAndMerge(t *testing.T) {
	s := NewLineStore("hello")
	if err := s.SplitLine(Pos{Line: 0, Offset: 2}); err != nil {
		t.Fatalf("split: %v", err)
	}
	if got, want := s.Strings(), []string{"he", "llo"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}

	if err := s.SplitLine(Pos{Line: 1, Offset: 3}); err != nil {
		t.Fatalf("split at end: %v", err)
	}
	if got, want := s.Strings(), []string{"he", "llo", ""}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}

	if err := s.SplitLine(Pos{Line: 0, Offset: 9}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("split past end err=%v, want ErrOutOfRange", err)
	}

	if err := s.MergeLine(0); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if got, want := s.Strings(), []string{"hello", ""}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}
	if err := s.MergeLine(1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("merge last err=%v, want ErrOutOfRange", err)
	}
}

func TestLineStore_LineLenCountsUnits(t *testing.T) {
	s := NewLineStore("éテ\nx")
	n, err := s.LineLen(0)
	if err != nil {
		t.Fatalf("line len: %v", err)
	}
	if n != 2 {
		t.Fatalf("line len=%d, want 2", n)
	}
	if _, err := s.LineLen(2); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("line len out of range err=%v, want ErrOutOfRange", err)
	}
}

func TestLineStore_CloneIsIndependent(t *testing.T) {
	s := NewLineStore("a\nb")
	c := s.clone()
	if err := c.SplitLine(Pos{Line: 0, Offset: 1}); err != nil {
		t.Fatalf("split: %v", err)
	}
	c.replaceLine(0, Segment("z"))
	if got, want := s.Strings(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("original lines=%q, want %q", got, want)
	}
}

func TestLineStore_MergeLineJoinsCombiningMark(t *testing.T) {
	s := NewLineStore("e\n\u0301")
	if err := s.MergeLine(0); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if got, _ := s.LineLen(0); got != 1 {
		t.Fatalf("line len=%d, want 1", got)
	}
}
