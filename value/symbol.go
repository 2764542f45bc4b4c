package value

// Symbol is a reserved delta marker. Symbols are distinct from every user
// value: the codecs never produce them, so they can only enter a value tree
// through the differ or a syntax policy, and they only cross into plain text
// through the marshaling layer.
type Symbol int

const (
	// Missing is internal to comparison and never appears in an emitted
	// delta.
	Missing Symbol = iota
	Add
	Delete
	Discard
	Insert
	Replace
)

func (s Symbol) Label() string {
	l, ok := map[Symbol]string{
		Missing: "missing",
		Add:     "add",
		Delete:  "delete",
		Discard: "discard",
		Insert:  "insert",
		Replace: "replace",
	}[s]
	if ok {
		return l
	}
	return "<unknown symbol>"
}

func (s Symbol) String() string {
	return s.Label()
}

func Symbols() []Symbol {
	return []Symbol{Missing, Add, Delete, Discard, Insert, Replace}
}
