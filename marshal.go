package jsondelta

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsondelta/jsondelta/debug"
	"github.com/jsondelta/jsondelta/value"
)

// Marshal rewrites a delta into a tree the codecs can encode: symbols
// become escaped marker strings, index keys become decimal strings, and
// user strings that collide with the escape prefix are escaped by doubling
// it. Sets flatten to arrays. Values without markers pass through unchanged
// in structure.
func (d *Differ) Marshal(v *value.Value) *value.Value {
	switch v.Type() {
	case value.SymbolType:
		return value.FromString(d.escape + v.Sym().Label())
	case value.StringType:
		if strings.HasPrefix(v.Str(), d.escape) {
			return value.FromString(d.escape + v.Str())
		}
		return v
	case value.ArrayType, value.SetType:
		elems := make([]*value.Value, v.Len())
		for i, e := range v.Elems() {
			elems[i] = d.Marshal(e)
		}
		return value.FromSlice(elems)
	case value.ObjectType:
		out := value.NewObject()
		for _, k := range v.Keys() {
			out.Set(d.marshalKey(k), d.Marshal(v.Get(k)))
		}
		return out
	default:
		return v
	}
}

func (d *Differ) marshalKey(k value.Key) value.Key {
	switch k.Kind() {
	case value.SymbolKeyKind:
		return value.StrKey(d.escape + k.Sym().Label())
	case value.IndexKeyKind:
		return value.StrKey(strconv.Itoa(k.Index()))
	default:
		if strings.HasPrefix(k.Str(), d.escape) {
			return value.StrKey(d.escape + k.Str())
		}
		return k
	}
}

// Unmarshal undoes Marshal: marker strings become symbols and doubled
// escapes collapse. A string with a single escape that is not a marker is
// treated as escaped text and loses one prefix. Decimal keys are left as
// strings; the patch engine reads them positionally against a sequence
// base.
func (d *Differ) Unmarshal(v *value.Value) *value.Value {
	out, _ := d.unmarshal(v, false)
	return out
}

// UnmarshalStrict is Unmarshal, except a string with a single escape prefix
// that names no marker is rejected with ErrAmbiguousEscape instead of being
// silently unescaped.
func (d *Differ) UnmarshalStrict(v *value.Value) (*value.Value, error) {
	return d.unmarshal(v, true)
}

func (d *Differ) unmarshal(v *value.Value, strict bool) (*value.Value, error) {
	switch v.Type() {
	case value.StringType:
		return d.unescape(v.Str(), strict)
	case value.ArrayType, value.SetType:
		elems := make([]*value.Value, v.Len())
		for i, e := range v.Elems() {
			ev, err := d.unmarshal(e, strict)
			if err != nil {
				return nil, err
			}
			elems[i] = ev
		}
		if v.Type() == value.SetType {
			return value.NewSet(elems...), nil
		}
		return value.FromSlice(elems), nil
	case value.ObjectType:
		out := value.NewObject()
		for _, k := range v.Keys() {
			kk, err := d.unmarshalKey(k, strict)
			if err != nil {
				return nil, err
			}
			ev, err := d.unmarshal(v.Get(k), strict)
			if err != nil {
				return nil, err
			}
			out.Set(kk, ev)
		}
		return out, nil
	default:
		return v, nil
	}
}

func (d *Differ) unmarshalKey(k value.Key, strict bool) (value.Key, error) {
	if k.Kind() != value.StringKeyKind {
		return k, nil
	}
	uv, err := d.unescape(k.Str(), strict)
	if err != nil {
		return value.Key{}, err
	}
	if uv.Type() == value.SymbolType {
		return value.SymKey(uv.Sym()), nil
	}
	return value.StrKey(uv.Str()), nil
}

func (d *Differ) unescape(s string, strict bool) (*value.Value, error) {
	if sym, ok := d.symbols[s]; ok {
		if debug.Marshal() {
			debug.Logf("unescape %q -> %s marker", s, sym)
		}
		return value.FromSymbol(sym), nil
	}
	if strings.HasPrefix(s, d.escape) {
		if strict && !strings.HasPrefix(s, d.escape+d.escape) {
			return nil, fmt.Errorf("%w: %q", ErrAmbiguousEscape, s)
		}
		return value.FromString(s[len(d.escape):]), nil
	}
	return value.FromString(s), nil
}
