package syntax

import "errors"

var (
	// ErrMissingKey reports a delta that names a map key absent from the
	// base.
	ErrMissingKey = errors.New("missing key")

	// ErrOutOfRange reports a delta position outside the working
	// sequence's bounds.
	ErrOutOfRange = errors.New("position out of range")

	// ErrInvalidDelta reports a delta whose shape the patch rules cannot
	// interpret against the base.
	ErrInvalidDelta = errors.New("invalid delta")

	// ErrNotInvertible reports an Unpatch of a delta that does not record
	// enough to reconstruct the base.
	ErrNotInvertible = errors.New("delta is not invertible")
)
