package ir

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
)

// FromYAML parses a single YAML document, keeping mapping order.
func FromYAML(d []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromYAMLValue(v)
}

func fromYAMLValue(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		if x > 1<<63-1 {
			return FromFloat(float64(x)), nil
		}
		return FromInt(int64(x)), nil
	case float64:
		return FromFloat(x), nil
	case time.Time:
		return FromTime(x), nil
	case []any:
		res := &Node{Type: ArrayType}
		for i, e := range x {
			c, err := fromYAMLValue(e)
			if err != nil {
				return nil, err
			}
			res.SetIndex(i, c)
		}
		return res, nil
	case yaml.MapSlice:
		res := &Node{Type: ObjectType}
		for _, item := range x {
			c, err := fromYAMLValue(item.Value)
			if err != nil {
				return nil, err
			}
			res.SetProperty(fmt.Sprint(item.Key), c)
		}
		return res, nil
	case map[string]any:
		res := &Node{Type: ObjectType}
		for _, k := range slices.Sorted(maps.Keys(x)) {
			c, err := fromYAMLValue(x[k])
			if err != nil {
				return nil, err
			}
			res.SetProperty(k, c)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unsupported yaml value %T", v)
	}
}

// ToYAML renders y as YAML, keeping object fields in order.
func ToYAML(y *Node, opts ...TextOption) ([]byte, error) {
	d, err := yaml.Marshal(toYAMLValue(y))
	if err != nil {
		return nil, err
	}
	cfg := newTextConfig(opts)
	if cfg.colors == nil {
		return d, nil
	}
	p := printer.Printer{
		MapKey: yamlProperty(cfg.colors, ObjectType, FieldColor),
		Bool:   yamlProperty(cfg.colors, BoolType, ValueColor),
		String: yamlProperty(cfg.colors, StringType, ValueColor),
		Number: yamlProperty(cfg.colors, NumberType, ValueColor),
	}
	return []byte(p.PrintTokens(lexer.Tokenize(string(d)))), nil
}

func yamlProperty(c *Colors, t Type, a ColorAttr) func() *printer.Property {
	prefix, suffix := c.Wrap(t, a)
	return func() *printer.Property {
		return &printer.Property{Prefix: prefix, Suffix: suffix}
	}
}

func toYAMLValue(y *Node) any {
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return 0
	case StringType:
		if y.Tag == DateTag {
			if t, ok := y.ToDate(); ok {
				return t
			}
		}
		return y.String
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = toYAMLValue(v)
		}
		return res
	case ObjectType:
		res := make(yaml.MapSlice, len(y.Fields))
		for i, f := range y.Fields {
			res[i] = yaml.MapItem{Key: f.String, Value: toYAMLValue(y.Values[i])}
		}
		return res
	default:
		panic("type")
	}
}
