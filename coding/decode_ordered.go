package coding

import (
	"fmt"

	"github.com/signadot/tony-coding/dyn"
)

// OrderedReader reads the elements of the current value in order. Every
// decode consumes one element, whether or not it succeeds.
type OrderedReader struct {
	r   *Reader
	cur int
}

func (o *OrderedReader) Path() Path { return o.r.path }

// Count returns the number of elements. It panics if the value has no
// length.
func (o *OrderedReader) Count() int {
	n, ok := o.r.value.Length()
	if !ok {
		panic(&ContractError{Op: "ordered read", Path: o.r.path, Msg: o.r.value.Kind().String() + " value has no length"})
	}
	return n
}

func (o *OrderedReader) IsAtEnd() bool     { return o.cur >= o.Count() }
func (o *OrderedReader) CurrentIndex() int { return o.cur }

func (o *OrderedReader) next() (dyn.Value, Key) {
	n := o.Count()
	if o.cur >= n {
		panic(&ContractError{Op: "ordered read", Path: o.r.path.Append(IndexKey(o.cur)), Msg: fmt.Sprintf("index out of bounds (count %d)", n)})
	}
	i := o.cur
	o.cur++
	return o.r.value.Index(i), IndexKey(i)
}

func (o *OrderedReader) nextValue() dyn.Value {
	v, _ := o.next()
	return v
}

func (o *OrderedReader) DecodeNil() bool        { return o.nextValue().IsNull() }
func (o *OrderedReader) DecodeBool() bool       { return o.nextValue().ToBool() }
func (o *OrderedReader) DecodeString() string   { return o.nextValue().ToString() }
func (o *OrderedReader) DecodeFloat64() float64 { return o.nextValue().ToDouble() }
func (o *OrderedReader) DecodeFloat32() float32 { return float32(o.DecodeFloat64()) }
func (o *OrderedReader) DecodeInt32() int32     { return o.nextValue().ToInt32() }
func (o *OrderedReader) DecodeInt() int         { return int(o.DecodeInt32()) }
func (o *OrderedReader) DecodeInt8() int8       { return int8(o.DecodeInt32()) }
func (o *OrderedReader) DecodeInt16() int16     { return int16(o.DecodeInt32()) }
func (o *OrderedReader) DecodeInt64() int64     { return int64(o.DecodeInt32()) }
func (o *OrderedReader) DecodeUint32() uint32   { return o.nextValue().ToUint32() }
func (o *OrderedReader) DecodeUint() uint       { return uint(o.DecodeUint32()) }
func (o *OrderedReader) DecodeUint8() uint8     { return uint8(o.DecodeUint32()) }
func (o *OrderedReader) DecodeUint16() uint16   { return uint16(o.DecodeUint32()) }
func (o *OrderedReader) DecodeUint64() uint64   { return uint64(o.DecodeUint32()) }

// Decode reads the next element into dst, which must be a *time.Time or a
// Decodable.
func (o *OrderedReader) Decode(dst any) error {
	v, key := o.next()
	return o.r.decodeValue(v, key, dst)
}

func (o *OrderedReader) NestedKeyed() *KeyedReader {
	v, key := o.next()
	return o.r.child(v, key).Keyed()
}

func (o *OrderedReader) NestedOrdered() *OrderedReader {
	v, key := o.next()
	return o.r.child(v, key).Ordered()
}

// Super consumes the next element and returns a Reader over it, keyed by
// SuperKey.
func (o *OrderedReader) Super() *Reader {
	v, _ := o.next()
	return o.r.child(v, SuperKey)
}
