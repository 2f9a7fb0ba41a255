package buffer

import "testing"

func TestComparePosAndNormalize(t *testing.T) {
	a, b := Pos{Line: 0, Offset: 5}, Pos{Line: 1, Offset: 0}
	if ComparePos(a, b) != -1 || ComparePos(b, a) != 1 || ComparePos(a, a) != 0 {
		t.Fatalf("ComparePos ordering broken")
	}
	r := NormalizeRange(Range{Start: b, End: a})
	if r.Start != a || r.End != b {
		t.Fatalf("normalized=%v, want [%v,%v)", r, a, b)
	}
	if !r.Contains(a) || r.Contains(b) {
		t.Fatalf("Contains must be half-open")
	}
}

func TestClampPos(t *testing.T) {
	lens := []int{3, 0, 2}
	lineLen := func(l int) int { return lens[l] }

	cases := []struct {
		in, want Pos
	}{
		{in: Pos{-1, -1}, want: Pos{0, 0}},
		{in: Pos{0, 9}, want: Pos{0, 3}},
		{in: Pos{1, 4}, want: Pos{1, 0}},
		{in: Pos{7, 1}, want: Pos{2, 1}},
	}
	for _, tc := range cases {
		if got := ClampPos(tc.in, len(lens), lineLen); got != tc.want {
			t.Fatalf("ClampPos(%v)=%v, want %v", tc.in, got, tc.want)
		}
	}
	if got := ClampPos(Pos{3, 3}, 0, nil); got != (Pos{}) {
		t.Fatalf("ClampPos on empty doc=%v, want (0,0)", got)
	}
}

func TestPosString(t *testing.T) {
	if got := (Pos{Line: 2, Offset: 7}).String(); got != "(2,7)" {
		t.Fatalf("String()=%q, want %q", got, "(2,7)")
	}
}
