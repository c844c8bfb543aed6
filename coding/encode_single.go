package coding

import (
	"fmt"
	"time"
)

// SingleWriter writes the Writer's result directly.
type SingleWriter struct {
	w *Writer
}

func (s *SingleWriter) Path() Path { return s.w.path }

func (s *SingleWriter) EncodeNil()              { s.w.setResult(s.w.rt.Null()) }
func (s *SingleWriter) EncodeBool(v bool)       { s.w.setResult(s.w.rt.Bool(v)) }
func (s *SingleWriter) EncodeString(v string)   { s.w.setResult(s.w.rt.String(v)) }
func (s *SingleWriter) EncodeFloat64(v float64) { s.w.setResult(s.w.rt.Double(v)) }
func (s *SingleWriter) EncodeFloat32(v float32) { s.EncodeFloat64(float64(v)) }
func (s *SingleWriter) EncodeInt32(v int32)     { s.w.setResult(s.w.rt.Int32(v)) }
func (s *SingleWriter) EncodeInt(v int)         { s.EncodeInt32(int32(v)) }
func (s *SingleWriter) EncodeInt8(v int8)       { s.EncodeInt32(int32(v)) }
func (s *SingleWriter) EncodeInt16(v int16)     { s.EncodeInt32(int32(v)) }
func (s *SingleWriter) EncodeInt64(v int64)     { s.EncodeInt32(int32(v)) }
func (s *SingleWriter) EncodeUint32(v uint32)   { s.w.setResult(s.w.rt.Uint32(v)) }
func (s *SingleWriter) EncodeUint(v uint)       { s.EncodeUint32(uint32(v)) }
func (s *SingleWriter) EncodeUint8(v uint8)     { s.EncodeUint32(uint32(v)) }
func (s *SingleWriter) EncodeUint16(v uint16)   { s.EncodeUint32(uint32(v)) }
func (s *SingleWriter) EncodeUint64(v uint64)   { s.EncodeUint32(uint32(v)) }

// Encode writes a compound value. An Encodable writes to the same Writer, so
// it must not produce a result of its own if one is already set.
func (s *SingleWriter) Encode(v any) error {
	switch x := v.(type) {
	case nil:
		s.EncodeNil()
		return nil
	case time.Time:
		s.w.setResult(s.w.rt.Date(x))
		return nil
	case Encodable:
		return x.EncodeTo(s.w)
	default:
		return &UnsupportedTypeError{Path: s.w.path, GoType: fmt.Sprintf("%T", v), Encode: true}
	}
}
