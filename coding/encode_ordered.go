package coding

import (
	"github.com/signadot/tony-coding/dyn"
)

// OrderedWriter appends elements to an array result.
type OrderedWriter struct {
	w *Writer
}

func (o *OrderedWriter) Path() Path { return o.w.path }

// Count returns the number of elements written so far.
func (o *OrderedWriter) Count() int {
	n, ok := o.w.Result().Length()
	if !ok {
		panic(&ContractError{Op: "ordered write", Path: o.w.path, Msg: "result has no length"})
	}
	return n
}

func (o *OrderedWriter) push(v dyn.Value) {
	o.w.Result().SetIndex(o.Count(), v)
}

func (o *OrderedWriter) EncodeNil()              { o.push(o.w.rt.Null()) }
func (o *OrderedWriter) EncodeBool(v bool)       { o.push(o.w.rt.Bool(v)) }
func (o *OrderedWriter) EncodeString(v string)   { o.push(o.w.rt.String(v)) }
func (o *OrderedWriter) EncodeFloat64(v float64) { o.push(o.w.rt.Double(v)) }
func (o *OrderedWriter) EncodeFloat32(v float32) { o.EncodeFloat64(float64(v)) }
func (o *OrderedWriter) EncodeInt32(v int32)     { o.push(o.w.rt.Int32(v)) }
func (o *OrderedWriter) EncodeInt(v int)         { o.EncodeInt32(int32(v)) }
func (o *OrderedWriter) EncodeInt8(v int8)       { o.EncodeInt32(int32(v)) }
func (o *OrderedWriter) EncodeInt16(v int16)     { o.EncodeInt32(int32(v)) }
func (o *OrderedWriter) EncodeInt64(v int64)     { o.EncodeInt32(int32(v)) }
func (o *OrderedWriter) EncodeUint32(v uint32)   { o.push(o.w.rt.Uint32(v)) }
func (o *OrderedWriter) EncodeUint(v uint)       { o.EncodeUint32(uint32(v)) }
func (o *OrderedWriter) EncodeUint8(v uint8)     { o.EncodeUint32(uint32(v)) }
func (o *OrderedWriter) EncodeUint16(v uint16)   { o.EncodeUint32(uint32(v)) }
func (o *OrderedWriter) EncodeUint64(v uint64)   { o.EncodeUint32(uint32(v)) }

// Encode appends a compound value: a time.Time, nil, or an Encodable.
func (o *OrderedWriter) Encode(v any) error {
	val, err := o.w.encodeValue(IndexKey(o.Count()), v)
	if err != nil {
		return err
	}
	o.push(val)
	return nil
}

// NestedKeyed appends a new object and returns a container for it.
func (o *OrderedWriter) NestedKeyed() *KeyedWriter {
	return o.w.child(IndexKey(o.Count()), o.push).Keyed()
}

// NestedOrdered appends a new array and returns a container for it.
func (o *OrderedWriter) NestedOrdered() *OrderedWriter {
	return o.w.child(IndexKey(o.Count()), o.push).Ordered()
}

// Super returns a Writer whose result is appended as the next element.
func (o *OrderedWriter) Super() *Writer {
	return o.w.child(SuperKey, o.push)
}
