package ir

import (
	"math"
	"time"

	"github.com/signadot/tony-coding/coding"
	"github.com/signadot/tony-coding/dyn"
)

var (
	_ coding.Encodable = (*Node)(nil)
	_ coding.Decodable = (*Node)(nil)
)

// maxExactInt is the largest integer magnitude a float64 holds exactly.
const maxExactInt = 1 << 53

// EncodeTo writes y and its children to w. Integers outside 32 bits are
// written as doubles so that they survive the codec's 32-bit integer path.
func (y *Node) EncodeTo(w *coding.Writer) error {
	switch y.Type {
	case ObjectType:
		k := w.Keyed()
		for i, f := range y.Fields {
			if err := k.Encode(coding.NameKey(f.String), y.Values[i]); err != nil {
				return err
			}
		}
	case ArrayType:
		o := w.Ordered()
		for _, v := range y.Values {
			if err := o.Encode(v); err != nil {
				return err
			}
		}
	case NullType:
		w.Single().EncodeNil()
	case BoolType:
		w.Single().EncodeBool(y.Bool)
	case StringType:
		if y.Tag == DateTag {
			if t, ok := y.ToDate(); ok {
				return w.Single().Encode(t)
			}
		}
		w.Single().EncodeString(y.String)
	case NumberType:
		if y.Int64 != nil && *y.Int64 >= math.MinInt32 && *y.Int64 <= math.MaxInt32 {
			w.Single().EncodeInt32(int32(*y.Int64))
			return nil
		}
		w.Single().EncodeFloat64(y.ToDouble())
	}
	return nil
}

// DecodeFrom replaces y with the tree under r.
func (y *Node) DecodeFrom(r *coding.Reader) error {
	*y = Node{}
	switch r.Kind() {
	case dyn.ObjectKind:
		y.Type = ObjectType
		k := r.Keyed()
		for _, key := range k.AllKeys(nil) {
			c := &Node{}
			if err := k.Decode(key, c); err != nil {
				return err
			}
			y.SetProperty(key.String(), c)
		}
	case dyn.ArrayKind:
		y.Type = ArrayType
		o := r.Ordered()
		for !o.IsAtEnd() {
			c := &Node{}
			if err := o.Decode(c); err != nil {
				return err
			}
			y.SetIndex(len(y.Values), c)
		}
	case dyn.NullKind:
		y.Type = NullType
	case dyn.BoolKind:
		y.Type = BoolType
		y.Bool = r.Single().DecodeBool()
	case dyn.StringKind:
		y.Type = StringType
		y.String = r.Single().DecodeString()
	case dyn.DateKind:
		var t time.Time
		if err := r.Single().Decode(&t); err != nil {
			return err
		}
		FromTime(t).CloneTo(y)
	case dyn.NumberKind:
		f := r.Single().DecodeFloat64()
		if f == math.Trunc(f) && math.Abs(f) <= maxExactInt {
			FromInt(int64(f)).CloneTo(y)
		} else {
			FromFloat(f).CloneTo(y)
		}
	}
	return nil
}
