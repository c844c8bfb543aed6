package coding

import (
	"github.com/signadot/tony-coding/dyn"
)

// KeyedWriter writes properties of an object result.
type KeyedWriter struct {
	w *Writer
}

func (k *KeyedWriter) Path() Path { return k.w.path }

func (k *KeyedWriter) put(key Key, v dyn.Value) {
	t := k.w.Result()
	if t.Kind() != dyn.ObjectKind {
		panic(&ContractError{Op: "keyed write", Path: k.w.path.Append(key), Msg: "result is " + t.Kind().String() + ", not object"})
	}
	t.SetProperty(k.w.keys.encodeKey(k.w.path, key).String(), v)
}

func (k *KeyedWriter) EncodeNil(key Key)                { k.put(key, k.w.rt.Null()) }
func (k *KeyedWriter) EncodeBool(key Key, v bool)       { k.put(key, k.w.rt.Bool(v)) }
func (k *KeyedWriter) EncodeString(key Key, v string)   { k.put(key, k.w.rt.String(v)) }
func (k *KeyedWriter) EncodeFloat64(key Key, v float64) { k.put(key, k.w.rt.Double(v)) }
func (k *KeyedWriter) EncodeFloat32(key Key, v float32) { k.EncodeFloat64(key, float64(v)) }

func (k *KeyedWriter) EncodeInt32(key Key, v int32)   { k.put(key, k.w.rt.Int32(v)) }
func (k *KeyedWriter) EncodeInt(key Key, v int)       { k.EncodeInt32(key, int32(v)) }
func (k *KeyedWriter) EncodeInt8(key Key, v int8)     { k.EncodeInt32(key, int32(v)) }
func (k *KeyedWriter) EncodeInt16(key Key, v int16)   { k.EncodeInt32(key, int32(v)) }
func (k *KeyedWriter) EncodeInt64(key Key, v int64)   { k.EncodeInt32(key, int32(v)) }
func (k *KeyedWriter) EncodeUint32(key Key, v uint32) { k.put(key, k.w.rt.Uint32(v)) }
func (k *KeyedWriter) EncodeUint(key Key, v uint)     { k.EncodeUint32(key, uint32(v)) }
func (k *KeyedWriter) EncodeUint8(key Key, v uint8)   { k.EncodeUint32(key, uint32(v)) }
func (k *KeyedWriter) EncodeUint16(key Key, v uint16) { k.EncodeUint32(key, uint32(v)) }
func (k *KeyedWriter) EncodeUint64(key Key, v uint64) { k.EncodeUint32(key, uint32(v)) }

// Encode writes a compound value: a time.Time, nil, or an Encodable.
func (k *KeyedWriter) Encode(key Key, v any) error {
	val, err := k.w.encodeValue(key, v)
	if err != nil {
		return err
	}
	k.put(key, val)
	return nil
}

// NestedKeyed stores a new object under key and returns a container for it.
func (k *KeyedWriter) NestedKeyed(key Key) *KeyedWriter {
	return k.w.child(key, func(v dyn.Value) { k.put(key, v) }).Keyed()
}

// NestedOrdered stores a new array under key and returns a container for it.
func (k *KeyedWriter) NestedOrdered(key Key) *OrderedWriter {
	return k.w.child(key, func(v dyn.Value) { k.put(key, v) }).Ordered()
}

// Super returns a Writer for the base part of the value, stored under
// SuperKey.
func (k *KeyedWriter) Super() *Writer {
	return k.SuperFor(SuperKey)
}

// SuperFor is Super storing under key.
func (k *KeyedWriter) SuperFor(key Key) *Writer {
	return k.w.child(key, func(v dyn.Value) { k.put(key, v) })
}
