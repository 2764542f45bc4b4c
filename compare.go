package jsondelta

import (
	"github.com/jsondelta/jsondelta/debug"
	"github.com/jsondelta/jsondelta/value"
)

// objDiff dispatches one comparison. Structural diffing happens only when
// both sides have the same container type; any other combination is a plain
// replacement.
func (d *Differ) objDiff(a, b *value.Value, depth int) (*value.Value, float64) {
	if a == b {
		return d.syntax.EmitValueDiff(a, b, 1.0), 1.0
	}
	if d.maxDepth > 0 && depth >= d.maxDepth {
		// Too deep: compare as opaque values.
		if a.Equal(b) {
			return d.syntax.EmitValueDiff(a, b, 1.0), 1.0
		}
		return d.syntax.EmitValueDiff(a, b, 0.0), 0.0
	}
	switch {
	case a.Type() == value.ObjectType && b.Type() == value.ObjectType:
		return d.dictDiff(a, b, depth)
	case a.Type() == value.ArrayType && b.Type() == value.ArrayType:
		return d.listDiff(a, b, depth)
	case a.Type() == value.SetType && b.Type() == value.SetType:
		return d.setDiff(a, b, depth)
	}
	if a.Equal(b) {
		return d.syntax.EmitValueDiff(a, b, 1.0), 1.0
	}
	if debug.Diff() {
		debug.Logf("replace %s with %s", a, b)
	}
	return d.syntax.EmitValueDiff(a, b, 0.0), 0.0
}
