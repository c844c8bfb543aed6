package ir

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// ToBool reports the truthiness of y. Objects, arrays and dates are always
// true.
func (y *Node) ToBool() bool {
	switch y.Type {
	case ObjectType, ArrayType:
		return true
	case StringType:
		return y.String != "" || y.Tag == DateTag
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64 != 0
		}
		if y.Float64 != nil {
			f := *y.Float64
			return f != 0 && !math.IsNaN(f)
		}
		return false
	case BoolType:
		return y.Bool
	case NullType:
		return false
	default:
		panic("type")
	}
}

// ToDouble converts y to a number. Strings which do not parse and objects
// convert to NaN.
func (y *Node) ToDouble() float64 {
	switch y.Type {
	case NullType:
		return 0
	case BoolType:
		if y.Bool {
			return 1
		}
		return 0
	case NumberType:
		if y.Int64 != nil {
			return float64(*y.Int64)
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return 0
	case StringType:
		if y.Tag == DateTag {
			t, ok := y.ToDate()
			if !ok {
				return math.NaN()
			}
			return float64(t.UnixMilli())
		}
		return parseNumber(y.String)
	case ArrayType:
		switch len(y.Values) {
		case 0:
			return 0
		case 1:
			return y.Values[0].ToDouble()
		default:
			return math.NaN()
		}
	case ObjectType:
		return math.NaN()
	default:
		panic("type")
	}
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		u, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(u)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// ParseFloat accepts "inf" and "nan" spellings which are not numbers
		// here, and reports range errors with a usable value.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f
		}
		return math.NaN()
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		if !strings.ContainsAny(s, "0123456789") {
			return math.NaN()
		}
	}
	return f
}

// ToInt32 converts y to a number and wraps it modulo 2^32.
func (y *Node) ToInt32() int32 {
	if y.Type == NumberType && y.Int64 != nil {
		return int32(*y.Int64)
	}
	return int32(wrapUint32(y.ToDouble()))
}

// ToUint32 converts y to a number and wraps it modulo 2^32.
func (y *Node) ToUint32() uint32 {
	if y.Type == NumberType && y.Int64 != nil {
		return uint32(*y.Int64)
	}
	return wrapUint32(y.ToDouble())
}

func wrapUint32(f float64) uint32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(f), 1<<32)
	if m < 0 {
		m += 1 << 32
	}
	return uint32(m)
}

// ToString renders y as a string.
func (y *Node) ToString() string {
	switch y.Type {
	case NullType:
		return "null"
	case BoolType:
		return strconv.FormatBool(y.Bool)
	case NumberType:
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10)
		}
		if y.Float64 != nil {
			return formatNumber(*y.Float64)
		}
		return "0"
	case StringType:
		return y.String
	case ArrayType:
		parts := make([]string, len(y.Values))
		for i, v := range y.Values {
			if v.Type == NullType {
				continue
			}
			parts[i] = v.ToString()
		}
		return strings.Join(parts, ",")
	case ObjectType:
		return "[object Object]"
	default:
		panic("type")
	}
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ToDate interprets dates, RFC 3339 strings and numbers of milliseconds
// since the Unix epoch.
func (y *Node) ToDate() (time.Time, bool) {
	switch y.Type {
	case StringType:
		t, err := time.Parse(time.RFC3339Nano, y.String)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	case NumberType:
		f := y.ToDouble()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(f)), true
	default:
		return time.Time{}, false
	}
}
