package ir

import (
	"fmt"

	"github.com/signadot/tony-coding/dyn"
)

var _ dyn.Value = (*Node)(nil)

func (y *Node) IsNull() bool {
	return y.Type == NullType
}

func (y *Node) HasProperty(name string) bool {
	return y.Type == ObjectType && y.fieldIndex(name) != -1
}

// Property returns the value of field name, or null when y is not an object
// or has no such field.
func (y *Node) Property(name string) dyn.Value {
	if y.Type != ObjectType {
		return Null()
	}
	i := y.fieldIndex(name)
	if i == -1 {
		return Null()
	}
	return y.Values[i]
}

// SetProperty replaces the value of field name or appends a new field. It
// panics if y is not an object.
func (y *Node) SetProperty(name string, v dyn.Value) {
	if y.Type != ObjectType {
		panic(fmt.Sprintf("ir: set property %q on %s", name, y.Type))
	}
	c := asNode(v)
	i := y.fieldIndex(name)
	if i == -1 {
		y.appendField(name, c)
		return
	}
	c.Parent = y
	c.ParentIndex = i
	c.ParentField = name
	y.Values[i] = c
}

func (y *Node) PropertyNames() []string {
	if y.Type != ObjectType {
		return nil
	}
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

// Index returns element i, or null when y is not an array or i is out of
// range.
func (y *Node) Index(i int) dyn.Value {
	if y.Type != ArrayType || i < 0 || i >= len(y.Values) {
		return Null()
	}
	return y.Values[i]
}

// SetIndex stores v at i, growing the array with nulls as needed. It panics
// if y is not an array or i is negative.
func (y *Node) SetIndex(i int, v dyn.Value) {
	if y.Type != ArrayType {
		panic(fmt.Sprintf("ir: set index %d on %s", i, y.Type))
	}
	if i < 0 {
		panic(fmt.Sprintf("ir: negative index %d", i))
	}
	for len(y.Values) < i {
		n := Null()
		n.Parent = y
		n.ParentIndex = len(y.Values)
		y.Values = append(y.Values, n)
	}
	c := asNode(v)
	c.Parent = y
	c.ParentIndex = i
	if i == len(y.Values) {
		y.Values = append(y.Values, c)
		return
	}
	y.Values[i] = c
}

func (y *Node) Length() (int, bool) {
	if y.Type != ArrayType {
		return 0, false
	}
	return len(y.Values), true
}

func asNode(v dyn.Value) *Node {
	c, ok := v.(*Node)
	if !ok {
		panic(fmt.Sprintf("ir: foreign value %T", v))
	}
	return c
}
