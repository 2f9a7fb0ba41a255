package editor

import (
	"io"
	"log"

	"github.com/google/uuid"
)

// Config configures the editor Model.
type Config struct {
	// ID names the field in change events. Empty means a random UUID.
	ID string

	// Initial text for the internal buffer.
	Text string

	// Forwarded to buffer.Options.
	SingleLine     bool
	PreserveColumn bool
	TabWidth       int
	HistoryLimit   int

	// ReadOnly keeps navigation, selection, and copy but drops edits.
	ReadOnly bool

	// Rendering options.
	ShowLineNums bool
	Style        Style

	// KeyMap defaults to DefaultKeyMap when left zero.
	KeyMap       KeyMap
	ScrollPolicy ScrollPolicy

	// Clipboard is optional; copy, cut, and paste are no-ops without it.
	Clipboard Clipboard

	// OnChange is called after every update that changed the text, cursor,
	// or selection.
	OnChange func(ChangeEvent)

	// MutationMode and OnIntent let the host observe or take over commands
	// resolved from input.
	MutationMode MutationMode
	OnIntent     func(Intent) IntentDecision

	Logger *log.Logger
}

func (cfg Config) withDefaults() Config {
	if cfg.ID == "" {
		cfg.ID = uuid.New().String()
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	return cfg
}
