package remap

import "errors"

// Sentinel errors for remap operations.
var (
	// ErrBadShape indicates a non-positive grid shape or a value buffer
	// whose length disagrees with the declared shape.
	ErrBadShape = errors.New("remap: invalid grid shape")
	// ErrBadExtent indicates a zero-width source extent.
	ErrBadExtent = errors.New("remap: degenerate extent")
)
