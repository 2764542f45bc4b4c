package value

import (
	"encoding/json"
	"fmt"
	"math"
)

// FromGo converts the output of a host decoder (encoding/json, goccy yaml)
// into a Value. Maps become objects with string keys in sorted order,
// slices become arrays. Sets and symbols have no host form and never come
// out of FromGo.
func FromGo(v any) (*Value, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return FromFloat(float64(t)), nil
		}
		return FromInt(int64(t)), nil
	case float32:
		return FromFloat(float64(t)), nil
	case float64:
		return FromFloat(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return FromInt(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", ErrBadGoValue, t)
		}
		return FromFloat(f), nil
	case string:
		return FromString(t), nil
	case []any:
		elems := make([]*Value, len(t))
		for i, e := range t {
			ev, err := FromGo(e)
			if err != nil {
				return nil, err
			}
			elems[i] = ev
		}
		return FromSlice(elems), nil
	case map[string]any:
		m := make(map[string]*Value, len(t))
		for k, e := range t {
			ev, err := FromGo(e)
			if err != nil {
				return nil, err
			}
			m[k] = ev
		}
		return FromMap(m), nil
	case *Value:
		return t, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrBadGoValue, v)
	}
}

// ToGo converts a Value into plain host containers for a dumper. Sets come
// out as slices in insertion order, which is lossy: a loaded round trip
// yields an array. Symbols and non-string object keys fail; deltas must be
// marshaled before they reach a dumper.
func (v *Value) ToGo() (any, error) {
	switch v.typ {
	case NullType:
		return nil, nil
	case BoolType:
		return v.b, nil
	case NumberType:
		if v.flt {
			return v.f, nil
		}
		return v.i, nil
	case StringType:
		return v.s, nil
	case SymbolType:
		return nil, fmt.Errorf("%w: reserved symbol %s", ErrUnrepresentable, v.sym)
	case ArrayType, SetType:
		out := make([]any, len(v.elems))
		for i, e := range v.elems {
			ev, err := e.ToGo()
			if err != nil {
				return nil, err
			}
			out[i] = ev
		}
		return out, nil
	case ObjectType:
		out := make(map[string]any, len(v.keys))
		for _, k := range v.keys {
			if k.Kind() != StringKeyKind {
				return nil, fmt.Errorf("%w: %s key %q", ErrUnrepresentable, k.Kind().kindName(), k)
			}
			ev, err := v.fields[k].ToGo()
			if err != nil {
				return nil, err
			}
			out[k.Str()] = ev
		}
		return out, nil
	default:
		panic("type")
	}
}

func (k KeyKind) kindName() string {
	switch k {
	case StringKeyKind:
		return "string"
	case IndexKeyKind:
		return "index"
	case SymbolKeyKind:
		return "symbol"
	default:
		return "<unknown>"
	}
}
