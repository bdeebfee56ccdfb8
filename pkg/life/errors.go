package life

import "errors"

var (
	// ErrInvalidDimensions reports a non-positive, out-of-range, or
	// non-rectangular grid shape.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrNotInitialized reports an operation on a world that was never created.
	ErrNotInitialized = errors.New("world not initialized")
)
