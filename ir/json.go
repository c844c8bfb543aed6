package ir

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
)

var errUnexpectedEnd = errors.New("unexpected end of JSON input")

// ToJSON renders y as JSON, keeping object fields in order. Dates render as
// strings.
func ToJSON(y *Node, opts ...TextOption) ([]byte, error) {
	w := &jsonWriter{buf: bytes.NewBuffer(nil), textConfig: newTextConfig(opts)}
	if err := w.write(y, 0); err != nil {
		return nil, err
	}
	if w.indent != "" {
		w.buf.WriteByte('\n')
	}
	return w.buf.Bytes(), nil
}

type jsonWriter struct {
	buf *bytes.Buffer
	*textConfig
}

func (w *jsonWriter) put(t Type, a ColorAttr, s string) {
	if w.colors == nil {
		w.buf.WriteString(s)
		return
	}
	w.buf.WriteString(w.colors.Color(t, a, s))
}

func (w *jsonWriter) newline(depth int) {
	if w.indent == "" {
		return
	}
	w.buf.WriteByte('\n')
	for range depth {
		w.buf.WriteString(w.indent)
	}
}

func (w *jsonWriter) write(y *Node, depth int) error {
	switch y.Type {
	case NullType:
		w.put(y.Type, ValueColor, "null")
	case BoolType:
		w.put(y.Type, ValueColor, strconv.FormatBool(y.Bool))
	case NumberType:
		if y.Int64 != nil {
			w.put(y.Type, ValueColor, strconv.FormatInt(*y.Int64, 10))
			return nil
		}
		var f float64
		if y.Float64 != nil {
			f = *y.Float64
		}
		d, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("number at %s: %w", y.Path(), err)
		}
		w.put(y.Type, ValueColor, string(d))
	case StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		attr := ValueColor
		if y.Tag == DateTag {
			attr = TagColor
		}
		w.put(y.Type, attr, string(d))
	case ArrayType:
		w.put(y.Type, SepColor, "[")
		for i, v := range y.Values {
			if i > 0 {
				w.put(y.Type, SepColor, ",")
			}
			w.newline(depth + 1)
			if err := w.write(v, depth+1); err != nil {
				return err
			}
		}
		if len(y.Values) > 0 {
			w.newline(depth)
		}
		w.put(y.Type, SepColor, "]")
	case ObjectType:
		w.put(y.Type, SepColor, "{")
		for i, f := range y.Fields {
			if i > 0 {
				w.put(y.Type, SepColor, ",")
			}
			w.newline(depth + 1)
			d, err := json.Marshal(f.String)
			if err != nil {
				return err
			}
			w.put(y.Type, FieldColor, string(d))
			w.put(y.Type, SepColor, ":")
			if w.indent != "" {
				w.buf.WriteByte(' ')
			}
			if err := w.write(y.Values[i], depth+1); err != nil {
				return err
			}
		}
		if len(y.Fields) > 0 {
			w.newline(depth)
		}
		w.put(y.Type, SepColor, "}")
	default:
		return fmt.Errorf("unsupported type %s", y.Type)
	}
	return nil
}

// FromJSON parses a single JSON document, keeping object fields in order.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, errUnexpectedEnd
		}
		return nil, err
	}
	return readJSON(dec, tok)
}

func readJSON(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch v := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(v), nil
	case string:
		return FromString(v), nil
	case json.Number:
		return fromNumberText(string(v))
	case float64:
		return FromFloat(v), nil
	case json.Delim:
		switch v {
		case '{':
			return readJSONObject(dec)
		case '[':
			return readJSONArray(dec)
		}
	}
	return nil, fmt.Errorf("unexpected JSON token %v", tok)
}

func readJSONObject(dec *json.Decoder) (*Node, error) {
	res := &Node{Type: ObjectType}
	for {
		tok, err := nextToken(dec)
		if err != nil {
			return nil, err
		}
		if tok == json.Delim('}') {
			return res, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		tok, err = nextToken(dec)
		if err != nil {
			return nil, err
		}
		val, err := readJSON(dec, tok)
		if err != nil {
			return nil, err
		}
		res.SetProperty(key, val)
	}
}

func readJSONArray(dec *json.Decoder) (*Node, error) {
	res := &Node{Type: ArrayType}
	for {
		tok, err := nextToken(dec)
		if err != nil {
			return nil, err
		}
		if tok == json.Delim(']') {
			return res, nil
		}
		val, err := readJSON(dec, tok)
		if err != nil {
			return nil, err
		}
		res.SetIndex(len(res.Values), val)
	}
}

func nextToken(dec *json.Decoder) (json.Token, error) {
	tok, err := dec.Token()
	if err == io.EOF {
		return nil, errUnexpectedEnd
	}
	return tok, err
}

func fromNumberText(s string) (*Node, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromInt(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return FromFloat(f), nil
}
