package jsondelta

import "errors"

var (
	// ErrAmbiguousEscape reports a string that begins with the escape
	// prefix but is neither a reserved marker nor an escaped string. Only
	// UnmarshalStrict reports it; Unmarshal strips one escape the way a
	// marshaled string would be unescaped.
	ErrAmbiguousEscape = errors.New("ambiguous escape prefix")
)
