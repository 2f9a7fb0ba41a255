package editor

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/ttytext/buffer"
)

type cellKind uint8

const (
	cellText cellKind = iota
	cellSelected
	cellCursor
)

func (m *Model) renderContent(s buffer.Snapshot) string {
	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(len(s.Lines))
	}
	width := m.contentWidth(len(s.Lines))

	out := make([]string, 0, len(s.Lines))
	for row := range s.Lines {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			sb.WriteString(m.renderGutter(row, digits, row == s.Cursor.Line))
		}

		line := renderLine(m.cfg.Style, s, row, m.focused)
		if m.xOffset > 0 {
			line = ansi.TruncateLeft(line, m.xOffset, "")
		}
		if width > 0 {
			line = ansi.Truncate(line, width, "")
		}
		sb.WriteString(line)
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderLine paints one snapshot line. Runs of cells sharing a style are
// rendered together; tabs expand to their resolved width.
func renderLine(st Style, s buffer.Snapshot, row int, focused bool) string {
	line := s.Lines[row]
	selFrom, selTo, hasSel := s.SelectionOnLine(row)
	cursorOff := -1
	if focused && s.Cursor.Line == row {
		cursorOff = s.Cursor.Offset
	}

	var sb strings.Builder
	var run strings.Builder
	runKind := cellText
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(st.cells(runKind, run.String()))
		run.Reset()
	}

	for i, u := range line.Units {
		kind := cellText
		switch {
		case i == cursorOff:
			kind = cellCursor
		case hasSel && i >= selFrom && i < selTo:
			kind = cellSelected
		}
		if kind != runKind {
			flush()
			runKind = kind
		}
		if u == "\t" {
			run.WriteString(strings.Repeat(" ", line.Widths[i]))
		} else {
			run.WriteString(string(u))
		}
	}
	flush()

	// Cursor at EOL is rendered as a 1-cell placeholder space; a selection
	// running through the line break shows one selected cell.
	n := len(line.Units)
	switch {
	case cursorOff == n:
		sb.WriteString(st.cells(cellCursor, " "))
	case hasSel && selTo > n:
		sb.WriteString(st.cells(cellSelected, " "))
	}
	return sb.String()
}
