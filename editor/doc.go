// Package editor provides a Bubble Tea text field backed by the buffer
// package.
//
// The Model owns one buffer.Buffer, translates key and mouse messages into
// buffer commands, and paints the resulting snapshot with lipgloss styles
// inside a bubbles viewport. Hosts observe edits through Config.OnChange.
package editor
