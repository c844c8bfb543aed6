package coding

import (
	"fmt"
	"time"

	"github.com/signadot/tony-coding/debug"
	"github.com/signadot/tony-coding/dyn"
)

// Encoder converts Encodable values to dynamic trees. It holds only
// configuration and may be shared.
type Encoder struct {
	keys KeyStrategy
	info UserInfo
}

func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt.applyEncoder(e)
	}
	return e
}

// Encode writes v into a new tree allocated by rt.
func (e *Encoder) Encode(v Encodable, rt dyn.Runtime) (dyn.Value, error) {
	if v == nil || rt == nil {
		return nil, ErrNilValue
	}
	w := newWriter(rt, e.keys, nil, e.info)
	if err := v.EncodeTo(w); err != nil {
		return nil, err
	}
	return w.Result(), nil
}

// Encode is shorthand for NewEncoder(opts...).Encode(v, rt).
func Encode(v Encodable, rt dyn.Runtime, opts ...EncoderOption) (dyn.Value, error) {
	return NewEncoder(opts...).Encode(v, rt)
}

// Writer is the encoding coordinator for one position in the output tree.
// Its result may be set once, by the first container requested.
type Writer struct {
	rt     dyn.Runtime
	keys   KeyStrategy
	path   Path
	info   UserInfo
	result cell[dyn.Value]
	// attach, when set, places the result in the parent as soon as it
	// exists.
	attach func(dyn.Value)
}

func newWriter(rt dyn.Runtime, keys KeyStrategy, path Path, info UserInfo) *Writer {
	return &Writer{rt: rt, keys: keys, path: path, info: info}
}

func (w *Writer) child(key Key, attach func(dyn.Value)) *Writer {
	c := newWriter(w.rt, w.keys, w.path.Append(key), w.info)
	c.attach = attach
	if debug.Encode() {
		debug.Log("encode descend", "path", c.path.String())
	}
	return c
}

func (w *Writer) Path() Path           { return w.path }
func (w *Writer) UserInfo() UserInfo   { return w.info }
func (w *Writer) Runtime() dyn.Runtime { return w.rt }

// Result returns the value written so far. It panics if no container has
// produced one.
func (w *Writer) Result() dyn.Value {
	v, err := w.result.Get()
	if err != nil {
		panic(&ContractError{Op: "result", Path: w.path, Msg: err.Error()})
	}
	return v
}

func (w *Writer) setResult(v dyn.Value) {
	if err := w.result.Set(v); err != nil {
		panic(&ContractError{Op: "result", Path: w.path, Msg: err.Error()})
	}
	if w.attach != nil {
		w.attach(v)
	}
}

// Keyed returns a container writing object properties, allocating the
// object unless a result already exists.
func (w *Writer) Keyed() *KeyedWriter {
	if !w.result.IsSet() {
		w.setResult(w.rt.NewObject())
	}
	if debug.Encode() {
		debug.Log("encode container", "path", w.path.String(), "kind", "keyed")
	}
	return &KeyedWriter{w: w}
}

// Ordered returns a container appending array elements, allocating the
// array unless a result already exists.
func (w *Writer) Ordered() *OrderedWriter {
	if !w.result.IsSet() {
		w.setResult(w.rt.NewArray())
	}
	if debug.Encode() {
		debug.Log("encode container", "path", w.path.String(), "kind", "ordered")
	}
	return &OrderedWriter{w: w}
}

// Single returns a container whose first write becomes the result.
func (w *Writer) Single() *SingleWriter {
	if debug.Encode() {
		debug.Log("encode container", "path", w.path.String(), "kind", "single")
	}
	return &SingleWriter{w: w}
}

// encodeValue converts a compound value found under key.
func (w *Writer) encodeValue(key Key, v any) (dyn.Value, error) {
	switch x := v.(type) {
	case nil:
		return w.rt.Null(), nil
	case time.Time:
		return w.rt.Date(x), nil
	case Encodable:
		c := w.child(key, nil)
		if err := x.EncodeTo(c); err != nil {
			return nil, err
		}
		return c.Result(), nil
	default:
		return nil, &UnsupportedTypeError{Path: w.path.Append(key), GoType: fmt.Sprintf("%T", v), Encode: true}
	}
}
