package grapheme

import "testing"

func TestSplit_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + "👨‍👩‍👧‍👦" + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if got[2] != "👨‍👩‍👧‍👦" {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
}

func TestSplit_MalformedUTF8BecomesSingleReplacement(t *testing.T) {
	got := Split("a\xff\xfeb")
	want := []string{"a", Replacement, "b"}
	if len(got) != len(want) {
		t.Fatalf("split=%q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("split[%d]=%q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplit_CRLFIsOneCluster(t *testing.T) {
	got := Split("a\r\nb")
	if len(got) != 3 || got[1] != "\r\n" {
		t.Fatalf("split=%q, want [a \\r\\n b]", got)
	}
	if !IsLineBreak(got[1]) {
		t.Fatalf("CRLF should be a line break")
	}
}

func TestSplit_Empty(t *testing.T) {
	if got := Split(""); got != nil {
		t.Fatalf("split(\"\")=%q, want nil", got)
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		cluster string
		col     int
		want    int
	}{
		{cluster: "a", want: 1},
		{cluster: "テ", want: 2},
		{cluster: "é", want: 1},
		{cluster: "\t", col: 0, want: 4},
		{cluster: "\t", col: 3, want: 1},
		{cluster: "\t", col: 5, want: 3},
		{cluster: "\n", want: 0},
	}
	for _, tc := range cases {
		if got := Width(tc.cluster, tc.col, 4); got != tc.want {
			t.Fatalf("Width(%q, %d)=%d, want %d", tc.cluster, tc.col, got, tc.want)
		}
	}
}

func TestIsWord(t *testing.T) {
	for _, w := range []string{"a", "Z", "7", "_", "é", "é", "ж"} {
		if !IsWord(w) {
			t.Fatalf("%q should be a word unit", w)
		}
	}
	for _, nw := range []string{" ", ".", "-", "😀", ""} {
		if IsWord(nw) {
			t.Fatalf("%q should not be a word unit", nw)
		}
	}
}
