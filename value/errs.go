package value

import "errors"

var (
	// ErrUnrepresentable reports a value that has no plain-text form:
	// a reserved symbol outside the marshaled encoding, or an object key
	// that is not a string.
	ErrUnrepresentable = errors.New("value has no plain-text representation")

	ErrBadGoValue = errors.New("unsupported host value")
)
