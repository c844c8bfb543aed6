package coding

import (
	"github.com/signadot/tony-coding/dyn"
)

// KeyedReader reads properties of the current value. A missing property
// reads as null.
type KeyedReader struct {
	r     *Reader
	names map[string]string
}

// KeyFilter maps a property name to a declared key. Names for which it
// returns false are skipped.
type KeyFilter func(name string) (Key, bool)

func (k *KeyedReader) Path() Path { return k.r.path }

// treeNames maps converted property names to the names in the tree.
func (k *KeyedReader) treeNames() map[string]string {
	if k.names != nil {
		return k.names
	}
	names := k.r.value.PropertyNames()
	k.names = make(map[string]string, len(names))
	for _, n := range names {
		c := k.r.keys.treeKey(n)
		if _, dup := k.names[c]; dup {
			continue
		}
		k.names[c] = n
	}
	return k.names
}

func (k *KeyedReader) name(key Key) string {
	return k.r.keys.decodeName(k.r.path, key, k.treeNames)
}

func (k *KeyedReader) value(key Key) dyn.Value {
	return k.r.value.Property(k.name(key))
}

// AllKeys lists the keys present, in tree order, as accepted by filter. A
// nil filter accepts every name.
func (k *KeyedReader) AllKeys(filter KeyFilter) []Key {
	names := k.r.value.PropertyNames()
	res := make([]Key, 0, len(names))
	for _, n := range names {
		n = k.r.keys.treeKey(n)
		if filter == nil {
			res = append(res, NameKey(n))
			continue
		}
		if key, ok := filter(n); ok {
			res = append(res, key)
		}
	}
	return res
}

func (k *KeyedReader) Contains(key Key) bool {
	return k.r.value.HasProperty(k.name(key))
}

func (k *KeyedReader) DecodeNil(key Key) bool        { return k.value(key).IsNull() }
func (k *KeyedReader) DecodeBool(key Key) bool       { return k.value(key).ToBool() }
func (k *KeyedReader) DecodeString(key Key) string   { return k.value(key).ToString() }
func (k *KeyedReader) DecodeFloat64(key Key) float64 { return k.value(key).ToDouble() }
func (k *KeyedReader) DecodeFloat32(key Key) float32 { return float32(k.DecodeFloat64(key)) }
func (k *KeyedReader) DecodeInt32(key Key) int32     { return k.value(key).ToInt32() }
func (k *KeyedReader) DecodeInt(key Key) int         { return int(k.DecodeInt32(key)) }
func (k *KeyedReader) DecodeInt8(key Key) int8       { return int8(k.DecodeInt32(key)) }
func (k *KeyedReader) DecodeInt16(key Key) int16     { return int16(k.DecodeInt32(key)) }
func (k *KeyedReader) DecodeInt64(key Key) int64     { return int64(k.DecodeInt32(key)) }
func (k *KeyedReader) DecodeUint32(key Key) uint32   { return k.value(key).ToUint32() }
func (k *KeyedReader) DecodeUint(key Key) uint       { return uint(k.DecodeUint32(key)) }
func (k *KeyedReader) DecodeUint8(key Key) uint8     { return uint8(k.DecodeUint32(key)) }
func (k *KeyedReader) DecodeUint16(key Key) uint16   { return uint16(k.DecodeUint32(key)) }
func (k *KeyedReader) DecodeUint64(key Key) uint64   { return uint64(k.DecodeUint32(key)) }

// Decode reads a compound value into dst, which must be a *time.Time or a
// Decodable.
func (k *KeyedReader) Decode(key Key, dst any) error {
	return k.r.decodeValue(k.value(key), key, dst)
}

func (k *KeyedReader) NestedKeyed(key Key) *KeyedReader {
	return k.r.child(k.value(key), key).Keyed()
}

func (k *KeyedReader) NestedOrdered(key Key) *OrderedReader {
	return k.r.child(k.value(key), key).Ordered()
}

// Super returns a Reader over the property stored under SuperKey.
func (k *KeyedReader) Super() *Reader {
	return k.SuperFor(SuperKey)
}

func (k *KeyedReader) SuperFor(key Key) *Reader {
	return k.r.child(k.value(key), key)
}
