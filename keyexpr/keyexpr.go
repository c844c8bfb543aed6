// Package keyexpr builds custom key strategies from expressions.
//
// An expression sees the key being converted and its position, and must
// evaluate to a string:
//
//	s, err := keyexpr.Compile(`len(path) == 1 ? upper(key) : snake(key)`)
//	enc := coding.NewEncoder(coding.WithKeyStrategy(s.KeyStrategy()))
//
// Variables:
//
//   - key: the key's string form
//   - path: the string forms of the keys from the root, ending with key
//   - depth: len(path)
//   - index, isIndex: the integer form of key, if it has one
//
// Besides the expr builtins, snake(s) and camel(s) apply the codec's snake
// case conversions.
package keyexpr

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/tony-coding/coding"
	"github.com/signadot/tony-coding/debug"
)

// Env is the environment of a key expression.
type Env struct {
	Key     string   `expr:"key"`
	Path    []string `expr:"path"`
	Depth   int      `expr:"depth"`
	Index   int      `expr:"index"`
	IsIndex bool     `expr:"isIndex"`
}

// Strategy is a compiled key expression.
type Strategy struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Strategy, error) {
	opts := append([]expr.Option{expr.Env(Env{}), expr.AsKind(reflect.String)}, exprOpts()...)
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("key expression %q: %w", src, err)
	}
	return &Strategy{src: src, prg: prg}, nil
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("snake", func(params ...any) (any, error) {
			return coding.ToSnakeCase(params[0].(string)), nil
		},
			new(func(string) string)),
		expr.Function("camel", func(params ...any) (any, error) {
			return coding.FromSnakeCase(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

func (s *Strategy) String() string {
	return s.src
}

// Rename evaluates the expression for the last key of p.
func (s *Strategy) Rename(p coding.Path) (coding.Key, error) {
	env := newEnv(p)
	res, err := expr.Run(s.prg, env)
	if err != nil {
		return coding.Key{}, fmt.Errorf("key expression at %s: %w", p, err)
	}
	name, ok := res.(string)
	if !ok {
		return coding.Key{}, fmt.Errorf("key expression at %s returned %T", p, res)
	}
	if debug.Keys() {
		debug.Log("key expression", "path", p.String(), "key", env.Key, "result", name)
	}
	return coding.NameKey(name), nil
}

// KeyStrategy returns a custom key strategy evaluating s. A key whose
// evaluation fails is kept unchanged and the failure is logged.
func (s *Strategy) KeyStrategy() coding.KeyStrategy {
	return coding.CustomKeys(func(p coding.Path) coding.Key {
		k, err := s.Rename(p)
		if err != nil {
			slog.Warn("keeping key", "error", err)
			last, _ := p.Last()
			return last
		}
		return k
	})
}

func newEnv(p coding.Path) Env {
	env := Env{
		Path:  make([]string, len(p)),
		Depth: len(p),
	}
	for i, k := range p {
		env.Path[i] = k.String()
	}
	if last, ok := p.Last(); ok {
		env.Key = last.String()
		env.Index, env.IsIndex = last.Index()
	}
	return env
}
