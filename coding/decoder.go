package coding

import (
	"fmt"
	"time"

	"github.com/signadot/tony-coding/debug"
	"github.com/signadot/tony-coding/dyn"
)

// Decoder converts dynamic trees to Decodable values. It holds only
// configuration and may be shared.
type Decoder struct {
	keys KeyStrategy
	info UserInfo
}

func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt.applyDecoder(d)
	}
	return d
}

// Decode reads v into dst.
func (d *Decoder) Decode(v dyn.Value, dst Decodable) error {
	if v == nil || dst == nil {
		return ErrNilValue
	}
	return dst.DecodeFrom(newReader(v, d.keys, nil, d.info))
}

// Decode is shorthand for NewDecoder(opts...).Decode(v, dst).
func Decode(v dyn.Value, dst Decodable, opts ...DecoderOption) error {
	return NewDecoder(opts...).Decode(v, dst)
}

// DecodeAs decodes v into a new T.
func DecodeAs[T any, PT interface {
	*T
	Decodable
}](d *Decoder, v dyn.Value) (T, error) {
	var res T
	if err := d.Decode(v, PT(&res)); err != nil {
		var zero T
		return zero, err
	}
	return res, nil
}

// Reader is the decoding coordinator for one position in the input tree. It
// never modifies the tree.
type Reader struct {
	value dyn.Value
	keys  KeyStrategy
	path  Path
	info  UserInfo
}

func newReader(v dyn.Value, keys KeyStrategy, path Path, info UserInfo) *Reader {
	return &Reader{value: v, keys: keys, path: path, info: info}
}

func (r *Reader) child(v dyn.Value, key Key) *Reader {
	c := newReader(v, r.keys, r.path.Append(key), r.info)
	if debug.Decode() {
		debug.Log("decode descend", "path", c.path.String(), "kind", v.Kind().String())
	}
	return c
}

func (r *Reader) Path() Path         { return r.path }
func (r *Reader) UserInfo() UserInfo { return r.info }
func (r *Reader) Value() dyn.Value   { return r.value }
func (r *Reader) Kind() dyn.Kind     { return r.value.Kind() }

// Keyed returns a container reading the current value's properties.
func (r *Reader) Keyed() *KeyedReader {
	return &KeyedReader{r: r}
}

// Ordered returns a container reading the current value's elements from the
// front.
func (r *Reader) Ordered() *OrderedReader {
	return &OrderedReader{r: r}
}

// Single returns a container reading the current value itself.
func (r *Reader) Single() *SingleReader {
	return &SingleReader{r: r}
}

// decodeValue reads v, found under key, into the compound destination dst.
func (r *Reader) decodeValue(v dyn.Value, key Key, dst any) error {
	switch x := dst.(type) {
	case *time.Time:
		t, ok := v.ToDate()
		if !ok {
			return &DateError{Path: r.path.Append(key), Kind: v.Kind()}
		}
		*x = t
		return nil
	case Decodable:
		return x.DecodeFrom(r.child(v, key))
	default:
		return &UnsupportedTypeError{Path: r.path.Append(key), GoType: fmt.Sprintf("%T", dst)}
	}
}
