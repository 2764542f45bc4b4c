package value

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Value is the recursive variant the differ and the patch engine operate on.
// One of Null, Bool, Number, String, Array, Object, Set or Symbol; the Type
// tag decides which accessors are meaningful. Values are treated as immutable
// by diff and patch: both return fresh values and may share unchanged
// subtrees with their inputs.
type Value struct {
	typ Type

	b   bool
	i   int64
	f   float64
	flt bool
	s   string
	sym Symbol

	// Array and Set elements, in insertion order.
	elems []*Value
	// Object fields, in insertion order.
	keys   []Key
	fields map[Key]*Value
	// Set membership, canonical form -> index into elems.
	member map[string]int
}

func Null() *Value {
	return &Value{typ: NullType}
}

func FromBool(b bool) *Value {
	return &Value{typ: BoolType, b: b}
}

func FromInt(i int64) *Value {
	return &Value{typ: NumberType, i: i}
}

func FromFloat(f float64) *Value {
	return &Value{typ: NumberType, f: f, flt: true}
}

func FromString(s string) *Value {
	return &Value{typ: StringType, s: s}
}

func FromSymbol(s Symbol) *Value {
	return &Value{typ: SymbolType, sym: s}
}

// FromSlice makes an array from vs, taking ownership of the slice.
func FromSlice(vs []*Value) *Value {
	return &Value{typ: ArrayType, elems: vs}
}

func NewObject() *Value {
	return &Value{typ: ObjectType, fields: map[Key]*Value{}}
}

// FromMap makes an object with fields in sorted key order, so that values
// decoded from unordered host containers come out deterministic.
func FromMap(m map[string]*Value) *Value {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	o := NewObject()
	for _, k := range keys {
		o.Set(StrKey(k), m[k])
	}
	return o
}

// NewSet makes a set from elems in insertion order, dropping duplicates.
// Elements may be any value shape; membership is decided by structural
// equality.
func NewSet(elems ...*Value) *Value {
	v := &Value{typ: SetType, member: map[string]int{}}
	for _, e := range elems {
		v.SetAdd(e)
	}
	return v
}

func (v *Value) Type() Type { return v.typ }

func (v *Value) Bool() bool { return v.b }

func (v *Value) IsFloat() bool { return v.flt }

func (v *Value) Int64() int64 { return v.i }

func (v *Value) Float64() float64 { return v.f }

// Num is the numeric value regardless of integer or floating representation.
func (v *Value) Num() float64 {
	if v.flt {
		return v.f
	}
	return float64(v.i)
}

func (v *Value) Str() string { return v.s }

func (v *Value) Sym() Symbol { return v.sym }

// Len is the number of elements or fields of a container, 0 for leaves.
func (v *Value) Len() int {
	switch v.typ {
	case ArrayType, SetType:
		return len(v.elems)
	case ObjectType:
		return len(v.keys)
	default:
		return 0
	}
}

func (v *Value) At(i int) *Value {
	return v.elems[i]
}

func (v *Value) Elems() []*Value {
	return v.elems
}

func (v *Value) Keys() []Key {
	return v.keys
}

// Get returns the field at k, or nil when absent.
func (v *Value) Get(k Key) *Value {
	return v.fields[k]
}

func (v *Value) GetStr(s string) *Value {
	return v.fields[StrKey(s)]
}

func (v *Value) Has(k Key) bool {
	_, ok := v.fields[k]
	return ok
}

// Set sets field k, appending to the field order when k is new.
func (v *Value) Set(k Key, val *Value) {
	if _, ok := v.fields[k]; !ok {
		v.keys = append(v.keys, k)
	}
	v.fields[k] = val
}

// Delete removes field k, reporting whether it was present.
func (v *Value) Delete(k Key) bool {
	if _, ok := v.fields[k]; !ok {
		return false
	}
	delete(v.fields, k)
	for i, kk := range v.keys {
		if kk == k {
			v.keys = append(v.keys[:i], v.keys[i+1:]...)
			break
		}
	}
	return true
}

func (v *Value) SetHas(e *Value) bool {
	_, ok := v.member[e.canon()]
	return ok
}

func (v *Value) SetAdd(e *Value) {
	c := e.canon()
	if _, ok := v.member[c]; ok {
		return
	}
	v.member[c] = len(v.elems)
	v.elems = append(v.elems, e)
}

// SetDiscard removes e from a set, reporting whether it was present.
func (v *Value) SetDiscard(e *Value) bool {
	c := e.canon()
	i, ok := v.member[c]
	if !ok {
		return false
	}
	v.elems = append(v.elems[:i], v.elems[i+1:]...)
	delete(v.member, c)
	for cc, j := range v.member {
		if j > i {
			v.member[cc] = j - 1
		}
	}
	return true
}

// ShallowCopy copies a container one level deep, sharing children. Leaves
// are returned as-is.
func (v *Value) ShallowCopy() *Value {
	switch v.typ {
	case ArrayType:
		return FromSlice(append([]*Value(nil), v.elems...))
	case ObjectType:
		o := NewObject()
		for _, k := range v.keys {
			o.Set(k, v.fields[k])
		}
		return o
	case SetType:
		s := NewSet()
		for _, e := range v.elems {
			s.SetAdd(e)
		}
		return s
	default:
		return v
	}
}

func (v *Value) Clone() *Value {
	switch v.typ {
	case ArrayType:
		elems := make([]*Value, len(v.elems))
		for i, e := range v.elems {
			elems[i] = e.Clone()
		}
		return FromSlice(elems)
	case ObjectType:
		o := NewObject()
		for _, k := range v.keys {
			o.Set(k, v.fields[k].Clone())
		}
		return o
	case SetType:
		s := NewSet()
		for _, e := range v.elems {
			s.SetAdd(e.Clone())
		}
		return s
	default:
		c := *v
		return &c
	}
}

// Equal is deep structural equality. Numbers compare numerically (1 equals
// 1.0) without losing integer precision: an int64 outside float64's exact
// range only equals itself. Object field order is not significant, set
// element order is not significant.
func (v *Value) Equal(o *Value) bool {
	if v == o {
		return true
	}
	if v == nil || o == nil || v.typ != o.typ {
		return false
	}
	switch v.typ {
	case NullType:
		return true
	case BoolType:
		return v.b == o.b
	case NumberType:
		if !v.flt && !o.flt {
			return v.i == o.i
		}
		if v.flt && o.flt {
			return v.f == o.f
		}
		if v.flt {
			return intFloatEqual(o.i, v.f)
		}
		return intFloatEqual(v.i, o.f)
	case StringType:
		return v.s == o.s
	case SymbolType:
		return v.sym == o.sym
	case ArrayType:
		if len(v.elems) != len(o.elems) {
			return false
		}
		for i, e := range v.elems {
			if !e.Equal(o.elems[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(v.keys) != len(o.keys) {
			return false
		}
		for k, e := range v.fields {
			oe, ok := o.fields[k]
			if !ok || !e.Equal(oe) {
				return false
			}
		}
		return true
	case SetType:
		if len(v.elems) != len(o.elems) {
			return false
		}
		for _, e := range v.elems {
			if !o.SetHas(e) {
				return false
			}
		}
		return true
	default:
		panic("type")
	}
}

// isExactInt reports whether f is an integer float64 inside the range where
// every integer is exactly representable.
func isExactInt(f float64) bool {
	const maxExact = int64(1) << 53
	return f == math.Trunc(f) && f >= float64(-maxExact) && f <= float64(maxExact)
}

func intFloatEqual(i int64, f float64) bool {
	return isExactInt(f) && int64(f) == i
}

// canon is a canonical encoding used for set membership and nothing else.
// Equal values canonicalize identically: integers canonicalize from their
// exact int64, so members beyond float64's exact range stay distinct.
func (v *Value) canon() string {
	var b strings.Builder
	v.writeCanon(&b)
	return b.String()
}

func (v *Value) writeCanon(b *strings.Builder) {
	switch v.typ {
	case NullType:
		b.WriteString("~")
	case BoolType:
		b.WriteString(strconv.FormatBool(v.b))
	case NumberType:
		if !v.flt {
			b.WriteString(strconv.FormatInt(v.i, 10))
		} else if isExactInt(v.f) {
			b.WriteString(strconv.FormatInt(int64(v.f), 10))
		} else {
			b.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
		}
	case StringType:
		b.WriteString(strconv.Quote(v.s))
	case SymbolType:
		b.WriteString("$" + v.sym.Label())
	case ArrayType:
		b.WriteByte('[')
		for i, e := range v.elems {
			if i > 0 {
				b.WriteByte(',')
			}
			e.writeCanon(b)
		}
		b.WriteByte(']')
	case SetType:
		cs := make([]string, len(v.elems))
		for i, e := range v.elems {
			cs[i] = e.canon()
		}
		sort.Strings(cs)
		b.WriteByte('<')
		b.WriteString(strings.Join(cs, ","))
		b.WriteByte('>')
	case ObjectType:
		type kv struct{ k, v string }
		kvs := make([]kv, 0, len(v.keys))
		for _, k := range v.keys {
			kvs = append(kvs, kv{k.canon(), v.fields[k].canon()})
		}
		sort.Slice(kvs, func(i, j int) bool { return kvs[i].k < kvs[j].k })
		b.WriteByte('{')
		for i, e := range kvs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(e.k)
			b.WriteByte(':')
			b.WriteString(e.v)
		}
		b.WriteByte('}')
	default:
		panic("type")
	}
}

func (k Key) canon() string {
	switch k.kind {
	case StringKeyKind:
		return strconv.Quote(k.str)
	case IndexKeyKind:
		return "#" + strconv.Itoa(k.idx)
	case SymbolKeyKind:
		return "$" + k.sym.Label()
	default:
		panic("key kind")
	}
}

// String is a debugging form, not a serialization.
func (v *Value) String() string {
	return v.canon()
}
