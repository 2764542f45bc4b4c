package syntax

import (
	"fmt"
	"sort"

	"github.com/jsondelta/jsondelta/debug"
	"github.com/jsondelta/jsondelta/value"
)

// Compact is the default policy. It emits the smallest delta that still
// patches forward: unchanged subtrees vanish, replacements are verbatim
// values, and structural edits are keyed by the reserved markers. The
// removed side of a change is not recorded, so compact deltas are not
// invertible.
type Compact struct{}

func (Compact) EmitSetDiff(a, b *value.Value, s float64, added, removed []*value.Value) *value.Value {
	if s == 0.0 || len(removed) == a.Len() {
		return replaceDelta(b)
	}
	if s == 1.0 {
		return value.NewObject()
	}
	d := value.NewObject()
	if len(removed) > 0 {
		d.Set(value.SymKey(value.Discard), value.NewSet(removed...))
	}
	if len(added) > 0 {
		d.Set(value.SymKey(value.Add), value.NewSet(added...))
	}
	return d
}

func (Compact) EmitListDiff(a, b *value.Value, s float64, inserted []PosValue, changed *value.Value, deleted []PosValue) *value.Value {
	if s == 0.0 {
		return replaceDelta(b)
	}
	if s == 1.0 {
		return value.NewObject()
	}
	d := changed.ShallowCopy()
	if len(inserted) > 0 {
		pairs := make([]*value.Value, len(inserted))
		for i, in := range inserted {
			pairs[i] = posPair(in.Pos, in.Val)
		}
		d.Set(value.SymKey(value.Insert), value.FromSlice(pairs))
	}
	if len(deleted) > 0 {
		positions := make([]*value.Value, len(deleted))
		for i, del := range deleted {
			positions[i] = value.FromInt(int64(del.Pos))
		}
		d.Set(value.SymKey(value.Delete), value.FromSlice(positions))
	}
	return d
}

func (Compact) EmitDictDiff(a, b *value.Value, s float64, added, changed, removed *value.Value) *value.Value {
	if s == 0.0 {
		return replaceDelta(b)
	}
	if s == 1.0 {
		return value.NewObject()
	}
	d := changed.ShallowCopy()
	for _, k := range added.Keys() {
		d.Set(k, added.Get(k))
	}
	if removed.Len() > 0 {
		names := make([]*value.Value, 0, removed.Len())
		for _, k := range removed.Keys() {
			names = append(names, value.FromString(k.Str()))
		}
		d.Set(value.SymKey(value.Delete), value.FromSlice(names))
	}
	return d
}

func (Compact) EmitValueDiff(a, b *value.Value, s float64) *value.Value {
	if s == 1.0 {
		return value.NewObject()
	}
	return replaceDelta(b)
}

// Patch applies a compact delta. A non-mapping delta is a full replacement;
// a mapping delta is interpreted against the base's type.
func (Compact) Patch(base, delta *value.Value) (*value.Value, error) {
	if debug.Patch() {
		debug.Logf("compact patch: %s base, %s delta", base.Type(), delta.Type())
	}
	return compactPatch(base, delta)
}

func compactPatch(base, delta *value.Value) (*value.Value, error) {
	if delta.Type() != value.ObjectType {
		return delta, nil
	}
	if delta.Len() == 0 {
		return base, nil
	}
	if r := delta.Get(value.SymKey(value.Replace)); r != nil {
		return r, nil
	}
	switch base.Type() {
	case value.ObjectType:
		return compactPatchObject(base, delta)
	case value.ArrayType:
		return compactPatchArray(base, delta)
	case value.SetType:
		return compactPatchSet(base, delta)
	default:
		return delta, nil
	}
}

func compactPatchObject(base, delta *value.Value) (*value.Value, error) {
	out := base.ShallowCopy()
	for _, k := range delta.Keys() {
		switch k.Kind() {
		case value.SymbolKeyKind:
			if k.Sym() != value.Delete {
				return nil, fmt.Errorf("%w: %s marker on a mapping base", ErrInvalidDelta, k.Sym())
			}
			names, err := elemsOf(delta.Get(k))
			if err != nil {
				return nil, err
			}
			for _, n := range names {
				if n.Type() != value.StringType {
					return nil, fmt.Errorf("%w: non-string delete key %s", ErrInvalidDelta, n)
				}
				if !out.Delete(value.StrKey(n.Str())) {
					return nil, fmt.Errorf("%w: %q", ErrMissingKey, n.Str())
				}
			}
		case value.StringKeyKind:
			sub := delta.Get(k)
			cur := out.Get(k)
			if cur == nil {
				// An added key carries its value verbatim, not a
				// nested delta.
				out.Set(k, sub)
				continue
			}
			patched, err := compactPatch(cur, sub)
			if err != nil {
				return nil, err
			}
			out.Set(k, patched)
		default:
			return nil, fmt.Errorf("%w: index key %s on a mapping base", ErrInvalidDelta, k)
		}
	}
	return out, nil
}

func compactPatchArray(base, delta *value.Value) (*value.Value, error) {
	elems := append([]*value.Value(nil), base.Elems()...)

	if del := delta.Get(value.SymKey(value.Delete)); del != nil {
		positions, err := positionsOf(del)
		if err != nil {
			return nil, err
		}
		sort.Sort(sort.Reverse(sort.IntSlice(positions)))
		for _, pos := range positions {
			if pos < 0 || pos >= len(elems) {
				return nil, fmt.Errorf("%w: delete at %d, length %d", ErrOutOfRange, pos, len(elems))
			}
			elems = removeAt(elems, pos)
		}
	}
	if ins := delta.Get(value.SymKey(value.Insert)); ins != nil {
		pairs, err := posPairsOf(ins)
		if err != nil {
			return nil, err
		}
		sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Pos < pairs[j].Pos })
		for _, p := range pairs {
			if p.Pos < 0 {
				return nil, fmt.Errorf("%w: insert at %d", ErrOutOfRange, p.Pos)
			}
			elems = insertAt(elems, p.Pos, p.Val)
		}
	}
	for _, k := range delta.Keys() {
		if k.Kind() == value.SymbolKeyKind {
			if k.Sym() == value.Delete || k.Sym() == value.Insert {
				continue
			}
			return nil, fmt.Errorf("%w: %s marker on a sequence base", ErrInvalidDelta, k.Sym())
		}
		pos, err := arrayPos(k)
		if err != nil {
			return nil, err
		}
		if pos < 0 || pos >= len(elems) {
			return nil, fmt.Errorf("%w: change at %d, length %d", ErrOutOfRange, pos, len(elems))
		}
		patched, err := compactPatch(elems[pos], delta.Get(k))
		if err != nil {
			return nil, err
		}
		elems[pos] = patched
	}
	return value.FromSlice(elems), nil
}

func compactPatchSet(base, delta *value.Value) (*value.Value, error) {
	out := base.ShallowCopy()
	for _, k := range delta.Keys() {
		if k.Kind() != value.SymbolKeyKind || (k.Sym() != value.Discard && k.Sym() != value.Add) {
			return nil, fmt.Errorf("%w: key %s on a set base", ErrInvalidDelta, k)
		}
	}
	if dis := delta.Get(value.SymKey(value.Discard)); dis != nil {
		elems, err := elemsOf(dis)
		if err != nil {
			return nil, err
		}
		for _, e := range elems {
			out.SetDiscard(e)
		}
	}
	if add := delta.Get(value.SymKey(value.Add)); add != nil {
		elems, err := elemsOf(add)
		if err != nil {
			return nil, err
		}
		for _, e := range elems {
			out.SetAdd(e)
		}
	}
	return out, nil
}

// Unpatch can only undo the empty delta. Compact deltas drop the removed
// side of every change, so anything else is unrecoverable.
func (Compact) Unpatch(target, delta *value.Value) (*value.Value, error) {
	if delta.Type() == value.ObjectType && delta.Len() == 0 {
		return target, nil
	}
	return nil, fmt.Errorf("%w: compact deltas do not record removed values", ErrNotInvertible)
}
