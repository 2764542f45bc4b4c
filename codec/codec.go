// Package codec converts between value trees and their text encodings. The
// differ itself only sees values; loaders and dumpers are the boundary where
// documents enter and leave.
package codec

import (
	"io"

	"github.com/jsondelta/jsondelta/value"
)

// Loader reads one document from r.
type Loader interface {
	Load(r io.Reader) (*value.Value, error)
}

// Dumper writes one document to w.
type Dumper interface {
	Dump(w io.Writer, v *value.Value) error
}
