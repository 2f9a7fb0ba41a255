package grapheme

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Replacement is substituted for each malformed UTF-8 run.
const Replacement = "\uFFFD"

// Sanitize replaces every run of invalid UTF-8 bytes with a single
// replacement character.
func Sanitize(text string) string {
	if utf8.ValidString(text) {
		return text
	}
	return strings.ToValidUTF8(text, Replacement)
}

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	text = Sanitize(text)
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, utf8.RuneCountInString(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Width returns the terminal cell width of cluster when it starts at visual
// column col. Tabs advance to the next multiple of tabWidth.
func Width(cluster string, col, tabWidth int) int {
	if cluster == "\t" {
		return TabAdvance(col, tabWidth)
	}
	if IsLineBreak(cluster) {
		return 0
	}

	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// TabAdvance returns the number of cells a tab occupies at column col.
func TabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		return 1
	}
	if col < 0 {
		col = 0
	}
	return tabWidth - col%tabWidth
}

// IsLineBreak reports whether cluster is a line terminator.
func IsLineBreak(cluster string) bool {
	switch cluster {
	case "\n", "\r\n", "\r":
		return true
	default:
		return false
	}
}

// IsWord reports whether cluster belongs to a word: its base rune is a letter
// or digit (or '_') and every following rune is a mark or joiner.
func IsWord(cluster string) bool {
	if cluster == "" {
		return false
	}
	for i, r := range cluster {
		if i == 0 {
			if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
				return false
			}
			continue
		}
		if !(unicode.IsMark(r) || r == '\u200d' || unicode.Is(unicode.Variation_Selector, r)) {
			return false
		}
	}
	return true
}

