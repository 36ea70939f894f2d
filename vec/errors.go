package vec

import "errors"

var (
	// ErrOutOfRange indicates a checked index at or beyond the current length.
	ErrOutOfRange = errors.New("vec: index out of range")
)
