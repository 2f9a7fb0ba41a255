package editor

import tea "github.com/charmbracelet/bubbletea"

// ScrollPolicy decides whether the mouse wheel may scroll the view away from
// the cursor.
type ScrollPolicy int

const (
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly drops wheel events; the view only moves to keep
	// the cursor visible.
	ScrollFollowCursorOnly
)

// passes reports whether msg should reach the viewport.
func (p ScrollPolicy) passes(msg tea.MouseMsg) bool {
	return p == ScrollAllowManual || !isWheel(msg)
}

func isWheel(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return true
	}
	return false
}
