package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/ttytext"
	"github.com/iw2rmb/ttytext/editor"
)

const defaultText = "Hello from ttytext.\n\nType to edit.\nUse arrows to move, shift+arrows to select.\nCtrl+S saves when a file is open. Ctrl+Q quits."

var (
	quitKey = key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit"))
	saveKey = key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save"))

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

type options struct {
	path           string
	singleLine     bool
	readOnly       bool
	lineNumbers    bool
	preserveColumn bool
	tabWidth       int
	systemClip     bool
}

type model struct {
	opts   options
	editor editor.Model
	help   help.Model
	logger *log.Logger

	status string
	width  int
	height int
}

func newModel(opts options, text string, logger *log.Logger) model {
	cfg := editor.Config{
		ID:             opts.path,
		Text:           text,
		SingleLine:     opts.singleLine,
		ReadOnly:       opts.readOnly,
		ShowLineNums:   opts.lineNumbers,
		PreserveColumn: opts.preserveColumn,
		TabWidth:       opts.tabWidth,
		Style:          editor.DefaultStyle(),
		Logger:         logger,
	}
	if opts.systemClip {
		cfg.Clipboard = editor.SystemClipboard{}
	}
	cfg.OnChange = func(ev editor.ChangeEvent) {
		if ev.Diff != "" {
			logger.Printf("[DEBUG] demo: change v%d\n%s", ev.Version, ev.Diff)
		}
	}
	return model{opts: opts, editor: editor.New(cfg), help: help.New(), logger: logger}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, editorHeight(msg.Height))
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, quitKey):
			return m, tea.Quit
		case key.Matches(msg, saveKey):
			m.status = m.save()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) save() string {
	if m.opts.path == "" {
		return "no file to save"
	}
	if err := os.WriteFile(m.opts.path, []byte(m.editor.Value()), 0o644); err != nil {
		m.logger.Printf("[WARN] demo: save %s: %v", m.opts.path, err)
		return "save failed: " + err.Error()
	}
	return "saved " + m.opts.path
}

func (m model) View() string {
	b := m.editor.Buffer()
	cur := b.Cursor()
	parts := []string{fmt.Sprintf("%d:%d", cur.Line+1, cur.Offset+1)}
	if r, ok := b.SelectionRange(); ok {
		parts = append(parts, fmt.Sprintf("sel %v-%v", r.Start, r.End))
	}
	parts = append(parts, fmt.Sprintf("v%d", b.Version()))
	if m.status != "" {
		parts = append(parts, m.status)
	}

	return strings.Join([]string{
		m.editor.View(),
		statusStyle.Render(strings.Join(parts, "  ")),
		m.help.View(helpKeys{editor: editor.DefaultKeyMap()}),
	}, "\n")
}

type helpKeys struct {
	editor editor.KeyMap
}

func (k helpKeys) ShortHelp() []key.Binding {
	return append([]key.Binding{quitKey, saveKey}, k.editor.ShortHelp()...)
}

func (k helpKeys) FullHelp() [][]key.Binding {
	return append([][]key.Binding{{quitKey, saveKey}}, k.editor.FullHelp()...)
}

func editorHeight(total int) int {
	h := total - 2
	if h < 0 {
		return 0
	}
	return h
}

func main() {
	var opts options
	var logPath string
	var showVersion bool
	flag.StringVar(&opts.path, "file", "", "file to edit (created on save)")
	flag.BoolVar(&opts.singleLine, "single-line", false, "drop line breaks from input")
	flag.BoolVar(&opts.readOnly, "read-only", false, "disallow edits")
	flag.BoolVar(&opts.lineNumbers, "line-numbers", true, "show line numbers")
	flag.BoolVar(&opts.preserveColumn, "preserve-column", false, "keep the display column on vertical moves")
	flag.IntVar(&opts.tabWidth, "tab-width", 4, "tab stop width")
	flag.BoolVar(&opts.systemClip, "clipboard", true, "use the system clipboard")
	flag.StringVar(&logPath, "log", "", "write debug log to this file")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(ttytext.VersionTag())
		return
	}

	logger := log.New(io.Discard, "", 0)
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "ttytext")
		if err != nil {
			fmt.Fprintf(os.Stderr, "log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.Default()
	}

	text := defaultText
	if opts.path != "" {
		data, err := os.ReadFile(opts.path)
		switch {
		case err == nil:
			text = string(data)
		case os.IsNotExist(err):
			text = ""
		default:
			fmt.Fprintf(os.Stderr, "read %s: %v\n", opts.path, err)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(newModel(opts, text, logger), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
