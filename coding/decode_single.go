package coding

import (
	"fmt"
	"time"
)

// SingleReader reads the Reader's current value directly.
type SingleReader struct {
	r *Reader
}

func (s *SingleReader) Path() Path { return s.r.path }

func (s *SingleReader) DecodeNil() bool        { return s.r.value.IsNull() }
func (s *SingleReader) DecodeBool() bool       { return s.r.value.ToBool() }
func (s *SingleReader) DecodeString() string   { return s.r.value.ToString() }
func (s *SingleReader) DecodeFloat64() float64 { return s.r.value.ToDouble() }
func (s *SingleReader) DecodeFloat32() float32 { return float32(s.DecodeFloat64()) }
func (s *SingleReader) DecodeInt32() int32     { return s.r.value.ToInt32() }
func (s *SingleReader) DecodeInt() int         { return int(s.DecodeInt32()) }
func (s *SingleReader) DecodeInt8() int8       { return int8(s.DecodeInt32()) }
func (s *SingleReader) DecodeInt16() int16     { return int16(s.DecodeInt32()) }
func (s *SingleReader) DecodeInt64() int64     { return int64(s.DecodeInt32()) }
func (s *SingleReader) DecodeUint32() uint32   { return s.r.value.ToUint32() }
func (s *SingleReader) DecodeUint() uint       { return uint(s.DecodeUint32()) }
func (s *SingleReader) DecodeUint8() uint8     { return uint8(s.DecodeUint32()) }
func (s *SingleReader) DecodeUint16() uint16   { return uint16(s.DecodeUint32()) }
func (s *SingleReader) DecodeUint64() uint64   { return uint64(s.DecodeUint32()) }

// Decode reads the current value into dst. A Decodable reads from the same
// Reader.
func (s *SingleReader) Decode(dst any) error {
	switch x := dst.(type) {
	case *time.Time:
		t, ok := s.r.value.ToDate()
		if !ok {
			return &DateError{Path: s.r.path, Kind: s.r.value.Kind()}
		}
		*x = t
		return nil
	case Decodable:
		return x.DecodeFrom(s.r)
	default:
		return &UnsupportedTypeError{Path: s.r.path, GoType: fmt.Sprintf("%T", dst)}
	}
}
