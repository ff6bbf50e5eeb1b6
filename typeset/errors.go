package typeset

import "errors"

// Sentinel errors for typeset package.
var (
	// ErrMissingFont is returned when one of the three required font buffers is empty.
	ErrMissingFont = errors.New("typeset: missing font data")

	// ErrNegativeSpacing is returned when a justified line would need to
	// shrink the space between words. Wrap never produces such a line.
	ErrNegativeSpacing = errors.New("typeset: negative justification spacing")
)
