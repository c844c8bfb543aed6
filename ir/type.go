package ir

import (
	"fmt"

	"github.com/signadot/tony-coding/dyn"
)

type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	ObjectType
	ArrayType
)

// DateTag marks a string node holding an RFC 3339 date.
const DateTag = "!date"

func (t Type) String() string {
	s, ok := map[Type]string{
		ObjectType: "Object",
		ArrayType:  "Array",
		StringType: "String",
		NumberType: "Number",
		BoolType:   "Bool",
		NullType:   "Null",
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
		NumberType,
		StringType,
		BoolType,
		ObjectType,
		ArrayType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

// Kind maps a node to its dynamic kind.
func (y *Node) Kind() dyn.Kind {
	switch y.Type {
	case NullType:
		return dyn.NullKind
	case BoolType:
		return dyn.BoolKind
	case NumberType:
		return dyn.NumberKind
	case StringType:
		if y.Tag == DateTag {
			return dyn.DateKind
		}
		return dyn.StringKind
	case ObjectType:
		return dyn.ObjectKind
	case ArrayType:
		return dyn.ArrayKind
	default:
		panic("type")
	}
}
