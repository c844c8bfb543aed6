package main

import (
	"fmt"
	"strings"

	"github.com/signadot/tony-coding/coding"
	"github.com/signadot/tony-coding/ir"

	"github.com/hengadev/errsx"
	"github.com/scott-cotton/cli"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		return err
	}
	var errs errsx.Map
	strategy := keyStrategy(&errs, cfg.Snake, cfg.Camel, cfg.Expr)
	if len(args) == 0 {
		errs.Set("args", fmt.Errorf("expected at least one name or path"))
	}
	paths := make([]coding.Path, len(args))
	for i, arg := range args {
		p, err := keyPath(arg)
		if err != nil {
			errs.Set(arg, err)
			continue
		}
		paths[i] = p
	}
	if !errs.IsEmpty() {
		return fmt.Errorf("%w: %w", cli.ErrUsage, errs.AsError())
	}
	for i, p := range paths {
		k, err := renameLast(strategy, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\t%s\n", args[i], k)
	}
	return nil
}

// keyPath reads a single name, or a path starting with "$".
func keyPath(arg string) (coding.Path, error) {
	if !strings.HasPrefix(arg, "$") {
		return coding.Path{coding.NameKey(arg)}, nil
	}
	p, err := ir.ParsePath(arg)
	if err != nil {
		return nil, err
	}
	var res coding.Path
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			res = append(res, coding.NameKey(*x.Field))
		case x.Index != nil:
			res = append(res, coding.IndexKey(*x.Index))
		}
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("path %q has no key", arg)
	}
	return res, nil
}

// renameLast returns the name strategy gives the last key of p by encoding
// a one property object at p.
func renameLast(strategy coding.KeyStrategy, p coding.Path) (string, error) {
	last, _ := p.Last()
	probe := ir.FromKeyVals([]ir.KeyVal{{Key: last.String(), Val: ir.Null()}})
	for i := len(p) - 2; i >= 0; i-- {
		k := p[i]
		if idx, ok := k.Index(); ok {
			vals := make([]*ir.Node, idx+1)
			for j := range vals {
				vals[j] = ir.Null()
			}
			vals[idx] = probe
			probe = ir.FromSlice(vals)
			continue
		}
		probe = ir.FromKeyVals([]ir.KeyVal{{Key: k.String(), Val: probe}})
	}
	v, err := coding.NewEncoder(coding.WithKeyStrategy(strategy)).Encode(probe, ir.NewContext())
	if err != nil {
		return "", err
	}
	y := v.(*ir.Node)
	for range p[:len(p)-1] {
		y = y.Values[len(y.Values)-1]
	}
	if len(y.Fields) != 1 {
		return "", fmt.Errorf("unexpected result %s", y.Type)
	}
	return y.Fields[0].String, nil
}
