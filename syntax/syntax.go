// Package syntax holds the delta-shaping policies. A Syntax decides how the
// four diff outcomes (set, list, dict, scalar) are folded into an emitted
// delta, and how a delta is interpreted when patching. The differ computes
// what changed; the syntax decides what that looks like.
package syntax

import (
	"sort"

	"github.com/jsondelta/jsondelta/value"
)

// PosValue is a positional edit: an element and the sequence position it is
// inserted at or deleted from.
type PosValue struct {
	Pos int
	Val *value.Value
}

// Syntax shapes diff results into deltas and applies deltas back.
//
// The Emit inputs follow the differ's conventions: added/removed set
// elements arrive in operand insertion order, list changes arrive as an
// index-keyed object of nested deltas, dict changes arrive as objects
// keyed like the operands. A Syntax must not mutate a or b.
type Syntax interface {
	EmitSetDiff(a, b *value.Value, s float64, added, removed []*value.Value) *value.Value
	EmitListDiff(a, b *value.Value, s float64, inserted []PosValue, changed *value.Value, deleted []PosValue) *value.Value
	EmitDictDiff(a, b *value.Value, s float64, added, changed, removed *value.Value) *value.Value
	EmitValueDiff(a, b *value.Value, s float64) *value.Value

	// Patch applies a delta emitted by this syntax to base.
	Patch(base, delta *value.Value) (*value.Value, error)
	// Unpatch reconstructs the base from a patched value and the delta
	// that produced it. Policies whose deltas drop the removed side
	// return ErrNotInvertible.
	Unpatch(target, delta *value.Value) (*value.Value, error)
}

var builtins = map[string]Syntax{
	"compact":   Compact{},
	"symmetric": Symmetric{},
}

// Builtin looks up a built-in syntax by name.
func Builtin(name string) (Syntax, bool) {
	s, ok := builtins[name]
	return s, ok
}

func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
