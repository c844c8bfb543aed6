package ir

import (
	"strings"

	"github.com/fatih/color"
)

type Colorable struct {
	Type Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
	TagColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range Types() {
		able := Colorable{Type: t, Attr: SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = TagColor
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = NullType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Type = BoolType
	colors.Map[able] = color.CyanString

	able.Type = ObjectType
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	able.Type = StringType
	able.Attr = ValueColor
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

// Wrap returns the text c places before and after a string colored for t
// and a.
func (c *Colors) Wrap(t Type, a ColorAttr) (prefix, suffix string) {
	const mark = "\x00"
	s := c.Color(t, a, mark)
	i := strings.Index(s, mark)
	if i == -1 {
		return "", ""
	}
	return s[:i], s[i+len(mark):]
}
