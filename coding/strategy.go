package coding

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/tony-coding/debug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type keyStrategyKind int

const (
	defaultKeys keyStrategyKind = iota
	toSnakeCase
	fromSnakeCase
	customKeys
)

// KeyStrategy decides how declared keys are spelled in the tree. The zero
// value is UseDefaultKeys.
type KeyStrategy struct {
	kind   keyStrategyKind
	custom func(Path) Key
}

var (
	// UseDefaultKeys leaves keys unchanged.
	UseDefaultKeys = KeyStrategy{}
	// ConvertToSnakeCase spells "userName" as "user_name".
	ConvertToSnakeCase = KeyStrategy{kind: toSnakeCase}
	// ConvertFromSnakeCase spells "user_name" as "userName".
	ConvertFromSnakeCase = KeyStrategy{kind: fromSnakeCase}
)

// CustomKeys returns a strategy which hands the full path, ending in the key
// being converted, to fn.
func CustomKeys(fn func(Path) Key) KeyStrategy {
	return KeyStrategy{kind: customKeys, custom: fn}
}

func (s KeyStrategy) String() string {
	switch s.kind {
	case defaultKeys:
		return "default"
	case toSnakeCase:
		return "toSnakeCase"
	case fromSnakeCase:
		return "fromSnakeCase"
	case customKeys:
		return "custom"
	default:
		return fmt.Sprintf("KeyStrategy(%d)", int(s.kind))
	}
}

// encodeKey returns the tree spelling of k written under parent.
func (s KeyStrategy) encodeKey(parent Path, k Key) Key {
	var res Key
	switch s.kind {
	case defaultKeys:
		return k
	case toSnakeCase:
		res = NameKey(ToSnakeCase(k.name))
	case fromSnakeCase:
		res = NameKey(FromSnakeCase(k.name))
	case customKeys:
		res = s.customKey(parent, k)
	default:
		panic(&ContractError{Op: "key", Path: parent.Append(k), Msg: "unknown key strategy " + s.String()})
	}
	if debug.Keys() {
		debug.Log("encode key", "path", parent.String(), "key", k.name, "to", res.name)
	}
	return res
}

// decodeName returns the tree property name holding k read under parent.
// names lists the property names present, converted by the strategy, and is
// only consulted for fromSnakeCase.
func (s KeyStrategy) decodeName(parent Path, k Key, names func() map[string]string) string {
	var res string
	switch s.kind {
	case defaultKeys:
		return k.name
	case toSnakeCase:
		res = ToSnakeCase(k.name)
	case fromSnakeCase:
		res = k.name
		if n, ok := names()[k.name]; ok {
			res = n
		}
	case customKeys:
		res = s.customKey(parent, k).name
	default:
		panic(&ContractError{Op: "key", Path: parent.Append(k), Msg: "unknown key strategy " + s.String()})
	}
	if debug.Keys() {
		debug.Log("decode key", "path", parent.String(), "key", k.name, "from", res)
	}
	return res
}

// treeKey converts a property name found in the tree to the key a type
// declares, for listing keys.
func (s KeyStrategy) treeKey(name string) string {
	if s.kind == fromSnakeCase {
		return FromSnakeCase(name)
	}
	return name
}

func (s KeyStrategy) customKey(parent Path, k Key) Key {
	if s.custom == nil {
		panic(&ContractError{Op: "key", Path: parent.Append(k), Msg: "custom key strategy has no function"})
	}
	return s.custom(parent.Append(k))
}

func isUpper(r rune) bool {
	return unicode.IsUpper(r) || unicode.Is(unicode.Other_Uppercase, r)
}

// ToSnakeCase replaces each uppercase character with "_" followed by its
// lowercase mapping. Existing underscores and separators are kept, so
// "userID" becomes "user_i_d".
func ToSnakeCase(s string) string {
	lower := cases.Lower(language.Und)
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != utf8.RuneError && isUpper(r) {
			b.WriteByte('_')
			b.WriteString(lower.String(s[i : i+size]))
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// FromSnakeCase drops each "_" and replaces the character after it with its
// uppercase mapping. A trailing "_" is dropped.
func FromSnakeCase(s string) string {
	upper := cases.Upper(language.Und)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		j := strings.IndexByte(s[i:], '_')
		if j == -1 {
			b.WriteString(s[i:])
			break
		}
		b.WriteString(s[i : i+j])
		i += j + 1
		if i == len(s) {
			break
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			continue
		}
		b.WriteString(upper.String(s[i : i+size]))
		i += size
	}
	return b.String()
}
