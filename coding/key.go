package coding

import (
	"strconv"
	"strings"
)

// Key names one field or slot.
type Key struct {
	name    string
	index   int
	indexed bool
}

// SuperKey addresses the part of a value written or read by its base type.
var SuperKey = NameKey("super")

func NameKey(name string) Key {
	return Key{name: name}
}

// IndexKey returns a key whose string form is the decimal rendering of i.
func IndexKey(i int) Key {
	return Key{name: strconv.Itoa(i), index: i, indexed: true}
}

func (k Key) String() string {
	return k.name
}

// Index returns the integer form of k, if it has one.
func (k Key) Index() (int, bool) {
	return k.index, k.indexed
}

// Equal compares keys by their string form.
func (k Key) Equal(o Key) bool {
	return k.name == o.name
}

// Path is the sequence of keys from the root to a position.
type Path []Key

// Append returns a new path extending p by k. p itself is not modified.
func (p Path) Append(k Key) Path {
	res := make(Path, len(p), len(p)+1)
	copy(res, p)
	return append(res, k)
}

func (p Path) Last() (Key, bool) {
	if len(p) == 0 {
		return Key{}, false
	}
	return p[len(p)-1], true
}

// String renders p in JSONPath style, e.g. "$.items[0].name".
func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, k := range p {
		if i, ok := k.Index(); ok {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(i))
			b.WriteByte(']')
			continue
		}
		b.WriteByte('.')
		b.WriteString(pathField(k.name))
	}
	return b.String()
}

func pathField(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
		return f
	}
	return "'" + strings.Replace(f, "'", "\\'", -1) + "'"
}
