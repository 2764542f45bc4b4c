package value

import "strconv"

type KeyKind int

const (
	StringKeyKind KeyKind = iota
	IndexKeyKind
	SymbolKeyKind
)

// Key is an object key. User data only ever carries string keys; index and
// symbol keys appear in deltas, where sequence positions and reserved markers
// key the emitted mappings.
type Key struct {
	kind KeyKind
	str  string
	idx  int
	sym  Symbol
}

func StrKey(s string) Key {
	return Key{kind: StringKeyKind, str: s}
}

func IdxKey(i int) Key {
	return Key{kind: IndexKeyKind, idx: i}
}

func SymKey(s Symbol) Key {
	return Key{kind: SymbolKeyKind, sym: s}
}

func (k Key) Kind() KeyKind { return k.kind }
func (k Key) Str() string   { return k.str }
func (k Key) Index() int    { return k.idx }
func (k Key) Sym() Symbol   { return k.sym }

func (k Key) String() string {
	switch k.kind {
	case StringKeyKind:
		return k.str
	case IndexKeyKind:
		return strconv.Itoa(k.idx)
	case SymbolKeyKind:
		return k.sym.Label()
	default:
		panic("key kind")
	}
}
