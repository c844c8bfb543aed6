// Package dyn declares the contract a dynamic tree runtime presents to the
// codec in package coding.
//
// The codec never builds tree values itself. It asks a Runtime to allocate
// objects, arrays and scalars, and asks a Value to test, read, write and
// coerce. Any representation satisfying these interfaces can be used; package
// ir provides one backed by *ir.Node.
package dyn

import (
	"time"
)

// Kind is the shape of a dynamic value.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	DateKind
	ObjectKind
	ArrayKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case DateKind:
		return "date"
	case ObjectKind:
		return "object"
	case ArrayKind:
		return "array"
	}
	return "<unknown kind>"
}

// Value is one node of a dynamic tree.
//
// Reads never fail: a missing property or element reads as a null value,
// and the To* conversions are permissive coercions which return the
// runtime's fallback for mismatched kinds.
type Value interface {
	Kind() Kind
	IsNull() bool

	HasProperty(name string) bool
	Property(name string) Value
	SetProperty(name string, v Value)
	// PropertyNames lists the names of an object's properties in order.
	// It returns nil for non-objects.
	PropertyNames() []string

	Index(i int) Value
	SetIndex(i int, v Value)
	// Length reports the length of an array. ok is false when the value
	// has no length.
	Length() (n int, ok bool)

	ToBool() bool
	ToString() string
	ToDouble() float64
	ToInt32() int32
	ToUint32() uint32
	// ToDate interprets the value as a point in time. ok is false when the
	// value has no date interpretation.
	ToDate() (t time.Time, ok bool)
}

// Runtime allocates values.
type Runtime interface {
	NewObject() Value
	NewArray() Value
	Null() Value
	Bool(v bool) Value
	String(v string) Value
	Double(v float64) Value
	Int32(v int32) Value
	Uint32(v uint32) Value
	Date(v time.Time) Value
}
