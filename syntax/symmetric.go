package syntax

import (
	"fmt"
	"sort"

	"github.com/jsondelta/jsondelta/debug"
	"github.com/jsondelta/jsondelta/value"
)

// Symmetric records both sides of every change: replacements become
// [old, new] pairs, and dict and list edits keep the removed values in the
// delta. The resulting deltas are larger than compact ones but Unpatch is
// total, and Patch can verify it is being applied to the base it was
// computed against.
type Symmetric struct{}

func pairDelta(a, b *value.Value) *value.Value {
	return value.FromSlice([]*value.Value{a, b})
}

func (Symmetric) EmitSetDiff(a, b *value.Value, s float64, added, removed []*value.Value) *value.Value {
	if s == 0.0 {
		return pairDelta(a, b)
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

func (Symmetric) EmitListDiff(a, b *value.Value, s float64, inserted []PosValue, changed *value.Value, deleted []PosValue) *value.Value {
	if s == 0.0 {
		return pairDelta(a, b)
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
		pairs := make([]*value.Value, len(deleted))
		for i, del := range deleted {
			pairs[i] = posPair(del.Pos, del.Val)
		}
		d.Set(value.SymKey(value.Delete), value.FromSlice(pairs))
	}
	return d
}

func (Symmetric) EmitDictDiff(a, b *value.Value, s float64, added, changed, removed *value.Value) *value.Value {
	if s == 0.0 {
		return pairDelta(a, b)
	}
	if s == 1.0 {
		return value.NewObject()
	}
	d := changed.ShallowCopy()
	if added.Len() > 0 {
		d.Set(value.SymKey(value.Insert), added)
	}
	if removed.Len() > 0 {
		d.Set(value.SymKey(value.Delete), removed)
	}
	return d
}

func (Symmetric) EmitValueDiff(a, b *value.Value, s float64) *value.Value {
	if s == 1.0 {
		return value.NewObject()
	}
	return pairDelta(a, b)
}

func (Symmetric) Patch(base, delta *value.Value) (*value.Value, error) {
	if debug.Patch() {
		debug.Logf("symmetric patch: %s base, %s delta", base.Type(), delta.Type())
	}
	return symmetricPatch(base, delta)
}

func symmetricPatch(base, delta *value.Value) (*value.Value, error) {
	if delta.Type() == value.ArrayType {
		old, neu, err := pairOf(delta)
		if err != nil {
			return nil, err
		}
		if !base.Equal(old) {
			return nil, fmt.Errorf("%w: base %s does not match recorded value %s", ErrInvalidDelta, base, old)
		}
		return neu, nil
	}
	if delta.Type() != value.ObjectType {
		return nil, fmt.Errorf("%w: %s delta", ErrInvalidDelta, delta.Type())
	}
	if delta.Len() == 0 {
		return base, nil
	}
	switch base.Type() {
	case value.ObjectType:
		return symmetricPatchObject(base, delta)
	case value.ArrayType:
		return symmetricPatchArray(base, delta)
	case value.SetType:
		return symmetricPatchSet(base, delta)
	default:
		return nil, fmt.Errorf("%w: structural delta against %s base", ErrInvalidDelta, base.Type())
	}
}

func pairOf(delta *value.Value) (old, neu *value.Value, err error) {
	if delta.Len() != 2 {
		return nil, nil, fmt.Errorf("%w: replacement pair has %d elements", ErrInvalidDelta, delta.Len())
	}
	return delta.At(0), delta.At(1), nil
}

func symmetricPatchObject(base, delta *value.Value) (*value.Value, error) {
	out := base.ShallowCopy()
	for _, k := range delta.Keys() {
		sub := delta.Get(k)
		switch {
		case k == value.SymKey(value.Delete):
			if sub.Type() != value.ObjectType {
				return nil, fmt.Errorf("%w: delete payload has type %s", ErrInvalidDelta, sub.Type())
			}
			for _, dk := range sub.Keys() {
				cur := out.Get(dk)
				if cur == nil {
					return nil, fmt.Errorf("%w: %s", ErrMissingKey, dk)
				}
				if !cur.Equal(sub.Get(dk)) {
					return nil, fmt.Errorf("%w: value at %s does not match recorded value", ErrInvalidDelta, dk)
				}
				out.Delete(dk)
			}
		case k == value.SymKey(value.Insert):
			if sub.Type() != value.ObjectType {
				return nil, fmt.Errorf("%w: insert payload has type %s", ErrInvalidDelta, sub.Type())
			}
			for _, ik := range sub.Keys() {
				if out.Has(ik) {
					return nil, fmt.Errorf("%w: insert over existing key %s", ErrInvalidDelta, ik)
				}
				out.Set(ik, sub.Get(ik))
			}
		case k.Kind() == value.SymbolKeyKind:
			return nil, fmt.Errorf("%w: %s marker on a mapping base", ErrInvalidDelta, k.Sym())
		default:
			cur := out.Get(k)
			if cur == nil {
				return nil, fmt.Errorf("%w: %s", ErrMissingKey, k)
			}
			patched, err := symmetricPatch(cur, sub)
			if err != nil {
				return nil, err
			}
			out.Set(k, patched)
		}
	}
	return out, nil
}

func symmetricPatchArray(base, delta *value.Value) (*value.Value, error) {
	elems := append([]*value.Value(nil), base.Elems()...)

	if del := delta.Get(value.SymKey(value.Delete)); del != nil {
		pairs, err := posPairsOf(del)
		if err != nil {
			return nil, err
		}
		sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Pos > pairs[j].Pos })
		for _, p := range pairs {
			if p.Pos < 0 || p.Pos >= len(elems) {
				return nil, fmt.Errorf("%w: delete at %d, length %d", ErrOutOfRange, p.Pos, len(elems))
			}
			if !elems[p.Pos].Equal(p.Val) {
				return nil, fmt.Errorf("%w: element at %d does not match recorded value", ErrInvalidDelta, p.Pos)
			}
			elems = removeAt(elems, p.Pos)
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
		patched, err := symmetricPatch(elems[pos], delta.Get(k))
		if err != nil {
			return nil, err
		}
		elems[pos] = patched
	}
	return value.FromSlice(elems), nil
}

func symmetricPatchSet(base, delta *value.Value) (*value.Value, error) {
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
			if !out.SetDiscard(e) {
				return nil, fmt.Errorf("%w: set element %s", ErrMissingKey, e)
			}
		}
	}
	if add := delta.Get(value.SymKey(value.Add)); add != nil {
		elems, err := elemsOf(add)
		if err != nil {
			return nil, err
		}
		for _, e := range elems {
			if out.SetHas(e) {
				return nil, fmt.Errorf("%w: add of present element %s", ErrInvalidDelta, e)
			}
			out.SetAdd(e)
		}
	}
	return out, nil
}

// Unpatch runs the delta backwards. Every operation is the mirror of its
// Patch counterpart, with the same verification against the recorded side.
func (Symmetric) Unpatch(target, delta *value.Value) (*value.Value, error) {
	if debug.Patch() {
		debug.Logf("symmetric unpatch: %s target, %s delta", target.Type(), delta.Type())
	}
	return symmetricUnpatch(target, delta)
}

func symmetricUnpatch(target, delta *value.Value) (*value.Value, error) {
	if delta.Type() == value.ArrayType {
		old, neu, err := pairOf(delta)
		if err != nil {
			return nil, err
		}
		if !target.Equal(neu) {
			return nil, fmt.Errorf("%w: value %s does not match recorded value %s", ErrInvalidDelta, target, neu)
		}
		return old, nil
	}
	if delta.Type() != value.ObjectType {
		return nil, fmt.Errorf("%w: %s delta", ErrInvalidDelta, delta.Type())
	}
	if delta.Len() == 0 {
		return target, nil
	}
	switch target.Type() {
	case value.ObjectType:
		return symmetricUnpatchObject(target, delta)
	case value.ArrayType:
		return symmetricUnpatchArray(target, delta)
	case value.SetType:
		return symmetricUnpatchSet(target, delta)
	default:
		return nil, fmt.Errorf("%w: structural delta against %s value", ErrInvalidDelta, target.Type())
	}
}

func symmetricUnpatchObject(target, delta *value.Value) (*value.Value, error) {
	out := target.ShallowCopy()
	for _, k := range delta.Keys() {
		sub := delta.Get(k)
		switch {
		case k == value.SymKey(value.Delete):
			// Deleted keys come back with their recorded values.
			if sub.Type() != value.ObjectType {
				return nil, fmt.Errorf("%w: delete payload has type %s", ErrInvalidDelta, sub.Type())
			}
			for _, dk := range sub.Keys() {
				if out.Has(dk) {
					return nil, fmt.Errorf("%w: restore over existing key %s", ErrInvalidDelta, dk)
				}
				out.Set(dk, sub.Get(dk))
			}
		case k == value.SymKey(value.Insert):
			if sub.Type() != value.ObjectType {
				return nil, fmt.Errorf("%w: insert payload has type %s", ErrInvalidDelta, sub.Type())
			}
			for _, ik := range sub.Keys() {
				cur := out.Get(ik)
				if cur == nil {
					return nil, fmt.Errorf("%w: %s", ErrMissingKey, ik)
				}
				if !cur.Equal(sub.Get(ik)) {
					return nil, fmt.Errorf("%w: value at %s does not match recorded value", ErrInvalidDelta, ik)
				}
				out.Delete(ik)
			}
		case k.Kind() == value.SymbolKeyKind:
			return nil, fmt.Errorf("%w: %s marker on a mapping value", ErrInvalidDelta, k.Sym())
		default:
			cur := out.Get(k)
			if cur == nil {
				return nil, fmt.Errorf("%w: %s", ErrMissingKey, k)
			}
			unpatched, err := symmetricUnpatch(cur, sub)
			if err != nil {
				return nil, err
			}
			out.Set(k, unpatched)
		}
	}
	return out, nil
}

func symmetricUnpatchArray(target, delta *value.Value) (*value.Value, error) {
	elems := append([]*value.Value(nil), target.Elems()...)

	// Positional changes refer to the patched array, so they unwind before
	// the inserts come out.
	for _, k := range delta.Keys() {
		if k.Kind() == value.SymbolKeyKind {
			continue
		}
		pos, err := arrayPos(k)
		if err != nil {
			return nil, err
		}
		if pos < 0 || pos >= len(elems) {
			return nil, fmt.Errorf("%w: change at %d, length %d", ErrOutOfRange, pos, len(elems))
		}
		unpatched, err := symmetricUnpatch(elems[pos], delta.Get(k))
		if err != nil {
			return nil, err
		}
		elems[pos] = unpatched
	}
	for _, k := range delta.Keys() {
		if k.Kind() == value.SymbolKeyKind && k.Sym() != value.Delete && k.Sym() != value.Insert {
			return nil, fmt.Errorf("%w: %s marker on a sequence value", ErrInvalidDelta, k.Sym())
		}
	}
	if ins := delta.Get(value.SymKey(value.Insert)); ins != nil {
		pairs, err := posPairsOf(ins)
		if err != nil {
			return nil, err
		}
		sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Pos > pairs[j].Pos })
		for _, p := range pairs {
			if p.Pos < 0 || p.Pos >= len(elems) {
				return nil, fmt.Errorf("%w: insert at %d, length %d", ErrOutOfRange, p.Pos, len(elems))
			}
			if !elems[p.Pos].Equal(p.Val) {
				return nil, fmt.Errorf("%w: element at %d does not match recorded value", ErrInvalidDelta, p.Pos)
			}
			elems = removeAt(elems, p.Pos)
		}
	}
	if del := delta.Get(value.SymKey(value.Delete)); del != nil {
		pairs, err := posPairsOf(del)
		if err != nil {
			return nil, err
		}
		sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Pos < pairs[j].Pos })
		for _, p := range pairs {
			if p.Pos < 0 {
				return nil, fmt.Errorf("%w: delete at %d", ErrOutOfRange, p.Pos)
			}
			elems = insertAt(elems, p.Pos, p.Val)
		}
	}
	return value.FromSlice(elems), nil
}

func symmetricUnpatchSet(target, delta *value.Value) (*value.Value, error) {
	out := target.ShallowCopy()
	for _, k := range delta.Keys() {
		if k.Kind() != value.SymbolKeyKind || (k.Sym() != value.Discard && k.Sym() != value.Add) {
			return nil, fmt.Errorf("%w: key %s on a set value", ErrInvalidDelta, k)
		}
	}
	if add := delta.Get(value.SymKey(value.Add)); add != nil {
		elems, err := elemsOf(add)
		if err != nil {
			return nil, err
		}
		for _, e := range elems {
			if !out.SetDiscard(e) {
				return nil, fmt.Errorf("%w: set element %s", ErrMissingKey, e)
			}
		}
	}
	if dis := delta.Get(value.SymKey(value.Discard)); dis != nil {
		elems, err := elemsOf(dis)
		if err != nil {
			return nil, err
		}
		for _, e := range elems {
			if out.SetHas(e) {
				return nil, fmt.Errorf("%w: restore of present element %s", ErrInvalidDelta, e)
			}
			out.SetAdd(e)
		}
	}
	return out, nil
}
