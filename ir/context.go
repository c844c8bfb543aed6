package ir

import (
	"time"

	"github.com/signadot/tony-coding/dyn"
)

// Context allocates nodes for the codec.
type Context struct {
	loc *time.Location
}

var _ dyn.Runtime = (*Context)(nil)

type ContextOption func(*Context)

// InLocation converts dates to loc before storing them.
func InLocation(loc *time.Location) ContextOption {
	return func(c *Context) { c.loc = loc }
}

func NewContext(opts ...ContextOption) *Context {
	c := &Context{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Context) NewObject() dyn.Value { return &Node{Type: ObjectType} }
func (c *Context) NewArray() dyn.Value  { return &Node{Type: ArrayType} }
func (c *Context) Null() dyn.Value      { return Null() }

func (c *Context) Bool(v bool) dyn.Value      { return FromBool(v) }
func (c *Context) String(v string) dyn.Value  { return FromString(v) }
func (c *Context) Double(v float64) dyn.Value { return FromFloat(v) }
func (c *Context) Int32(v int32) dyn.Value    { return FromInt(int64(v)) }
func (c *Context) Uint32(v uint32) dyn.Value  { return FromInt(int64(v)) }

func (c *Context) Date(v time.Time) dyn.Value {
	if c.loc != nil {
		v = v.In(c.loc)
	}
	return FromTime(v)
}
