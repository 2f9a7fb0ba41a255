package editor

import "github.com/charmbracelet/lipgloss"

// Style holds the lipgloss styles used to paint a snapshot. Selection is
// layered over Text, so a selection style only needs the properties it
// changes.
type Style struct {
	Gutter        lipgloss.Style // separator after line numbers
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style // line number of the cursor line

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style // the cell under the cursor, or one past line end
}

// DefaultStyle uses 256-color greys and a reversed cursor cell.
func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        dim,
		LineNum:       dim,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}

func (s Style) lineNumber(active bool) lipgloss.Style {
	if active {
		return s.LineNumActive
	}
	return s.LineNum
}

func (s Style) cells(kind cellKind, text string) string {
	switch kind {
	case cellCursor:
		return s.Cursor.Render(text)
	case cellSelected:
		return s.Selection.Inherit(s.Text).Render(text)
	default:
		return s.Text.Render(text)
	}
}
