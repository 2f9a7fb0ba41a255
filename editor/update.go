package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/ttytext/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.apply(buffer.InsertText{Text: string(msg.Runes)})
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Copy):
		m.copySelection()
		return m, nil
	case key.Matches(msg, km.Cut):
		m.cutSelection()
		return m, nil
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()
		return m, nil
	case key.Matches(msg, km.Undo):
		m.apply(buffer.Undo{})
		return m, nil
	case key.Matches(msg, km.Redo):
		m.apply(buffer.Redo{})
		return m, nil
	case key.Matches(msg, km.SelectAll):
		m.apply(buffer.SelectAll{})
		return m, nil
	}

	if cmd, ok := commandForKeyMsg(km, msg); ok {
		m.apply(cmd)
	}
	return m, nil
}

// commandForKeyMsg resolves bound keys first, then tab and typed runes.
func commandForKeyMsg(km KeyMap, msg tea.KeyMsg) (buffer.Command, bool) {
	for _, bk := range km.editKeys() {
		if key.Matches(msg, bk.binding) {
			return buffer.CommandForKey(bk.key)
		}
	}
	switch {
	case msg.Type == tea.KeyTab:
		return buffer.CommandForKey(buffer.Key{Code: buffer.KeyTab})
	case msg.Type == tea.KeySpace:
		return buffer.CommandForKey(buffer.Key{Code: buffer.KeyRune, Runes: []rune{' '}})
	case msg.Type == tea.KeyRunes && !msg.Alt:
		return buffer.CommandForKey(buffer.Key{Code: buffer.KeyRune, Runes: msg.Runes})
	}
	return nil, false
}

// apply runs cmd against the buffer. Read-only editors drop edits.
func (m Model) apply(cmd buffer.Command) {
	if m.cfg.ReadOnly && isEdit(cmd) {
		return
	}
	if !m.emitIntent(cmd) {
		return
	}
	if _, err := m.buf.Apply(cmd); err != nil {
		m.log.Printf("[WARN] editor %s: %T: %v", m.cfg.ID, cmd, err)
	}
}

func isEdit(cmd buffer.Command) bool {
	switch cmd.(type) {
	case buffer.InsertText, buffer.DeleteBackward, buffer.DeleteForward,
		buffer.ReplaceSelection, buffer.Undo, buffer.Redo:
		return true
	}
	return false
}

// copySelection reports whether the selected text reached the clipboard.
func (m Model) copySelection() bool {
	if m.cfg.Clipboard == nil {
		return false
	}
	s := m.buf.SelectedText()
	if s == "" {
		return false
	}
	if err := m.cfg.Clipboard.WriteText(s); err != nil {
		m.log.Printf("[WARN] editor %s: clipboard write: %v", m.cfg.ID, err)
		return false
	}
	return true
}

// cutSelection degrades to copy in read-only mode and keeps the text when
// the clipboard write fails.
func (m Model) cutSelection() {
	if !m.copySelection() || m.cfg.ReadOnly {
		return
	}
	m.apply(buffer.DeleteBackward{})
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil || m.cfg.ReadOnly {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.log.Printf("[WARN] editor %s: clipboard read: %v", m.cfg.ID, err)
		return
	}
	if s == "" {
		return
	}
	// Line breaks of any style split lines in the buffer.
	m.apply(buffer.InsertText{Text: s})
}
