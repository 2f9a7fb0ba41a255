package editor

import (
	"fmt"
	"strconv"
)

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(strconv.Itoa(lineCount))
}

// gutterWidth is the line-number column plus its one-cell separator.
func (m Model) gutterWidth(lineCount int) int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(lineCount) + 1
}

func (m Model) renderGutter(row, digits int, isCursorRow bool) string {
	numStyle := m.cfg.Style.lineNumber(m.focused && isCursorRow)
	return numStyle.Render(fmt.Sprintf("%*d", digits, row+1)) + m.cfg.Style.Gutter.Render(" ")
}
