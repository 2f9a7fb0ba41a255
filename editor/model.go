package editor

import (
	"log"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/ttytext/buffer"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer
	log *log.Logger

	focused bool

	viewport viewport.Model
	xOffset  int

	lastVersion uint64
	lastText    string

	mouseAnchor   buffer.Pos
	mouseDragging bool
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg: cfg,
		buf: buffer.New(cfg.Text, buffer.Options{
			HistoryLimit:   cfg.HistoryLimit,
			TabWidth:       cfg.TabWidth,
			SingleLine:     cfg.SingleLine,
			PreserveColumn: cfg.PreserveColumn,
			Logger:         cfg.Logger,
		}),
		log:      cfg.Logger,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastVersion = m.buf.Version()
	m.lastText = m.buf.Text()
	m.rebuildContent(m.buf.Snapshot())
	return m
}

func (m Model) ID() string { return m.cfg.ID }

// Buffer exposes the underlying buffer. Hosts may apply commands directly;
// the next Update picks the change up.
func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Value returns the current text.
func (m Model) Value() string { return m.buf.Text() }

// SetValue replaces the whole text as one undoable edit and leaves the
// cursor at the end.
func (m Model) SetValue(text string) Model {
	if _, err := m.buf.Apply(buffer.SelectAll{}); err != nil {
		m.log.Printf("[WARN] editor %s: select all: %v", m.cfg.ID, err)
	}
	if _, err := m.buf.Apply(buffer.InsertText{Text: text}); err != nil {
		m.log.Printf("[WARN] editor %s: set value: %v", m.cfg.ID, err)
	}
	m.sync()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.refresh()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.refresh()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent(m.buf.Snapshot())
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}
	// Also picks up edits the host applied to Buffer() directly.
	m.sync()
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

// sync re-renders after the buffer changed and reports the change to the
// host. Wheel scrolling leaves the version alone, so it never snaps back to
// the cursor here.
func (m *Model) sync() {
	ver := m.buf.Version()
	if ver == m.lastVersion {
		return
	}
	ev := buildChangeEvent(m.cfg.ID, m.buf, m.lastText)
	m.lastVersion = ver
	m.lastText = ev.Text

	m.refresh()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(ev)
	}
}

func (m *Model) refresh() {
	s := m.buf.Snapshot()
	m.followCursorX(s)
	m.rebuildContent(s)
	m.followCursorY(s.Cursor.Line)
}

func (m *Model) rebuildContent(s buffer.Snapshot) {
	m.viewport.SetContent(m.renderContent(s))
}

func (m *Model) followCursorX(s buffer.Snapshot) {
	w := m.contentWidth(len(s.Lines))
	if w <= 0 {
		m.xOffset = 0
		return
	}
	col := s.CursorColumn
	if col < m.xOffset {
		m.xOffset = col
	}
	if col >= m.xOffset+w {
		m.xOffset = col - w + 1
	}
}

func (m *Model) followCursorY(line int) {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if line < y {
		m.viewport.SetYOffset(line)
		return
	}
	if line >= y+h {
		m.viewport.SetYOffset(line - h + 1)
	}
}

// contentWidth is the number of cells available for text, or 0 when the
// viewport has no width yet.
func (m Model) contentWidth(lineCount int) int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	if w <= 0 {
		return 0
	}
	w -= m.gutterWidth(lineCount)
	if w < 1 {
		w = 1
	}
	return w
}
