package syntax

import (
	"fmt"
	"strconv"

	"github.com/jsondelta/jsondelta/value"
)

// replaceDelta emits a full replacement of b: wrapped under the replace
// marker when b is itself a mapping, so a map-shaped replacement cannot be
// mistaken for a delta mapping; verbatim otherwise.
func replaceDelta(b *value.Value) *value.Value {
	if b.Type() == value.ObjectType {
		d := value.NewObject()
		d.Set(value.SymKey(value.Replace), b)
		return d
	}
	return b
}

func posPair(pos int, v *value.Value) *value.Value {
	return value.FromSlice([]*value.Value{value.FromInt(int64(pos)), v})
}

// intFromValue reads a sequence position out of a delta payload. Positions
// survive text round trips as plain numbers; a float is accepted when
// integral.
func intFromValue(v *value.Value) (int, error) {
	if v.Type() != value.NumberType {
		return 0, fmt.Errorf("%w: position has type %s", ErrInvalidDelta, v.Type())
	}
	if v.IsFloat() {
		i := int(v.Float64())
		if float64(i) != v.Float64() {
			return 0, fmt.Errorf("%w: position %v is not an integer", ErrInvalidDelta, v.Float64())
		}
		return i, nil
	}
	return int(v.Int64()), nil
}

// arrayPos reads a sequence position out of a delta key. Index keys come
// straight from the differ; all-digit string keys are what the same
// positions look like after a trip through plain text.
func arrayPos(k value.Key) (int, error) {
	switch k.Kind() {
	case value.IndexKeyKind:
		return k.Index(), nil
	case value.StringKeyKind:
		i, err := strconv.Atoi(k.Str())
		if err != nil {
			return 0, fmt.Errorf("%w: key %q on sequence base", ErrInvalidDelta, k.Str())
		}
		return i, nil
	default:
		return 0, fmt.Errorf("%w: %s marker keys a sequence position", ErrInvalidDelta, k.Sym())
	}
}

// elemsOf returns the elements of a list-like delta payload. Emitted
// payloads are sets or arrays depending on the syntax rule; both carry
// their elements the same way.
func elemsOf(v *value.Value) ([]*value.Value, error) {
	switch v.Type() {
	case value.ArrayType, value.SetType:
		return v.Elems(), nil
	default:
		return nil, fmt.Errorf("%w: expected a list payload, got %s", ErrInvalidDelta, v.Type())
	}
}

// positionsOf decodes a delete payload of bare positions.
func positionsOf(v *value.Value) ([]int, error) {
	elems, err := elemsOf(v)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(elems))
	for i, e := range elems {
		p, err := intFromValue(e)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// posPairsOf decodes an insert-style payload of [position, value] pairs.
func posPairsOf(v *value.Value) ([]PosValue, error) {
	elems, err := elemsOf(v)
	if err != nil {
		return nil, err
	}
	out := make([]PosValue, len(elems))
	for i, e := range elems {
		if e.Type() != value.ArrayType || e.Len() != 2 {
			return nil, fmt.Errorf("%w: expected [position, value] pair", ErrInvalidDelta)
		}
		p, err := intFromValue(e.At(0))
		if err != nil {
			return nil, err
		}
		out[i] = PosValue{Pos: p, Val: e.At(1)}
	}
	return out, nil
}

func insertAt(elems []*value.Value, pos int, v *value.Value) []*value.Value {
	if pos > len(elems) {
		pos = len(elems)
	}
	elems = append(elems, nil)
	copy(elems[pos+1:], elems[pos:])
	elems[pos] = v
	return elems
}

func removeAt(elems []*value.Value, pos int) []*value.Value {
	return append(elems[:pos], elems[pos+1:]...)
}
