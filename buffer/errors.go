package buffer

import "errors"

// Errors returned by buffer operations. Callers match them with errors.Is;
// returned errors wrap them with operation context.
var (
	// ErrOutOfRange indicates a line index or raw position outside the
	// current buffer bounds.
	ErrOutOfRange = errors.New("out of range")

	// ErrLastLineProtected indicates an attempt to remove the only line.
	ErrLastLineProtected = errors.New("last line protected")
)
