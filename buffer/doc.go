// Package buffer implements the rendering-agnostic text editing state for
// ttytext: lines of grapheme units, a cursor, and an optional selection.
//
// Coordinates are 0-based (Line, Offset) in grapheme units. Ranges are
// half-open selections in document coordinates: [Start, End).
//
// All mutations go through Buffer.Apply, which applies one Command
// atomically and returns a fresh Snapshot for rendering.
package buffer
