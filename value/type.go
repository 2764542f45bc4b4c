package value

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	NumberType
	StringType
	ArrayType
	ObjectType
	SetType
	SymbolType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		BoolType:   "Bool",
		NumberType: "Number",
		StringType: "String",
		ArrayType:  "Array",
		ObjectType: "Object",
		SetType:    "Set",
		SymbolType: "Symbol",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"Bool":   BoolType,
		"Number": NumberType,
		"String": StringType,
		"Array":  ArrayType,
		"Object": ObjectType,
		"Set":    SetType,
		"Symbol": SymbolType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		NumberType,
		StringType,
		ArrayType,
		ObjectType,
		SetType,
		SymbolType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, ObjectType, SetType:
		return false
	default:
		return true
	}
}
