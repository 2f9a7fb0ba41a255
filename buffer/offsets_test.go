package buffer

import (
	"errors"
	"testing"
)

func TestOffsets_ByteRoundTrip(t *testing.T) {
	b := New("a\u00e9\nテ", Options{})

	cases := []struct {
		off  int
		want Pos
	}{
		{off: 0, want: Pos{0, 0}},
		{off: 1, want: Pos{0, 1}},
		{off: 3, want: Pos{0, 2}},
		{off: 4, want: Pos{1, 0}},
		{off: 7, want: Pos{1, 1}},
	}
	for _, tc := range cases {
		p, err := b.PosFromByteOffset(tc.off, OffsetError)
		if err != nil {
			t.Fatalf("PosFromByteOffset(%d): %v", tc.off, err)
		}
		if p != tc.want {
			t.Fatalf("PosFromByteOffset(%d)=%v, want %v", tc.off, p, tc.want)
		}
		off, err := b.ByteOffsetFromPos(p, OffsetError)
		if err != nil {
			t.Fatalf("ByteOffsetFromPos(%v): %v", p, err)
		}
		if off != tc.off {
			t.Fatalf("ByteOffsetFromPos(%v)=%d, want %d", p, off, tc.off)
		}
	}
}

func TestOffsets_ErrorAndClamp(t *testing.T) {
	b := New("a\u00e9\nテ", Options{})

	if _, err := b.PosFromByteOffset(2, OffsetError); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("mid-unit offset err=%v, want ErrOutOfRange", err)
	}
	if p, err := b.PosFromByteOffset(2, OffsetClamp); err != nil || p != (Pos{0, 1}) {
		t.Fatalf("clamped mid-unit=(%v,%v), want (0,1)", p, err)
	}
	if _, err := b.PosFromByteOffset(8, OffsetError); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("past-end err=%v, want ErrOutOfRange", err)
	}
	if p, err := b.PosFromByteOffset(-5, OffsetClamp); err != nil || p != (Pos{}) {
		t.Fatalf("clamped negative=(%v,%v), want (0,0)", p, err)
	}
	if _, err := b.ByteOffsetFromPos(Pos{0, 3}, OffsetError); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("invalid pos err=%v, want ErrOutOfRange", err)
	}
	if off, err := b.ByteOffsetFromPos(Pos{5, 5}, OffsetClamp); err != nil || off != 7 {
		t.Fatalf("clamped pos=(%d,%v), want 7", off, err)
	}
}

func TestOffsets_Units(t *testing.T) {
	b := New("a\u00e9\nテ", Options{})

	if p, err := b.PosFromUnitOffset(3, OffsetError); err != nil || p != (Pos{1, 0}) {
		t.Fatalf("PosFromUnitOffset(3)=(%v,%v), want (1,0)", p, err)
	}
	if off, err := b.UnitOffsetFromPos(Pos{1, 1}, OffsetError); err != nil || off != 4 {
		t.Fatalf("UnitOffsetFromPos(1,1)=(%d,%v), want 4", off, err)
	}
	if _, err := b.PosFromUnitOffset(5, OffsetError); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("err=%v, want ErrOutOfRange", err)
	}
}
