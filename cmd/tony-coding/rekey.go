package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/tony-coding/coding"
	"github.com/signadot/tony-coding/ir"
	"github.com/signadot/tony-coding/libdiff"

	"github.com/fatih/color"
	"github.com/hengadev/errsx"
	"github.com/scott-cotton/cli"
)

func rekey(cfg *RekeyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rekey.Parse(cc, args)
	if err != nil {
		return err
	}
	var errs errsx.Map
	strategy := keyStrategy(&errs, cfg.Snake, cfg.Camel, cfg.Expr)
	if cfg.MergePatch && cfg.Diff {
		errs.Set("output", errors.New("specify at most one of -merge-patch -diff"))
	}
	if cfg.At != "" {
		if _, err := ir.ParsePath(cfg.At); err != nil {
			errs.Set("at", err)
		}
	}
	if !errs.IsEmpty() {
		return fmt.Errorf("%w: %w", cli.ErrUsage, errs.AsError())
	}
	if len(args) == 0 {
		return rekeyReader(cfg, cc.Out, os.Stdin, "-", strategy)
	}
	for i, file := range args {
		if i > 0 && cfg.outFormat(cfg.inFormat(file)) == yamlFormat {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := rekeyFile(cfg, cc.Out, file, strategy); err != nil {
			return err
		}
	}
	return nil
}

func rekeyFile(cfg *RekeyConfig, w io.Writer, file string, strategy coding.KeyStrategy) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := rekeyReader(cfg, w, f, file, strategy); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func rekeyReader(cfg *RekeyConfig, w io.Writer, r io.Reader, file string, strategy coding.KeyStrategy) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	inFmt := cfg.inFormat(file)
	doc, err := parseDoc(in, inFmt)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", inFmt, err)
	}
	res, err := rekeyDoc(doc, strategy, cfg.At)
	if err != nil {
		return err
	}
	outFmt := cfg.outFormat(inFmt)
	switch {
	case cfg.MergePatch:
		patch, err := libdiff.MergePatch(doc, res)
		if err != nil {
			return err
		}
		return writeDoc(w, patch, outFmt, cfg.textOpts(w)...)
	case cfg.Diff:
		from, err := renderDoc(doc, outFmt, ir.EncodeIndent("  "))
		if err != nil {
			return err
		}
		to, err := renderDoc(res, outFmt, ir.EncodeIndent("  "))
		if err != nil {
			return err
		}
		lines := libdiff.Lines(string(from), string(to))
		if !libdiff.Changed(lines) {
			theLog.Info("no keys changed", "file", file)
		}
		return writeLines(w, lines, cfg.colorOut(w))
	default:
		return writeDoc(w, res, outFmt, cfg.textOpts(w)...)
	}
}

// rekeyDoc passes the tree at path through a Decoder and then an Encoder
// using strategy, returning a new document.
func rekeyDoc(doc *ir.Node, strategy coding.KeyStrategy, path string) (*ir.Node, error) {
	if path == "" {
		path = "$"
	}
	sub, err := doc.GetPath(path)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, fmt.Errorf("nothing at %s", path)
	}
	var tree ir.Node
	if err := coding.NewDecoder().Decode(sub, &tree); err != nil {
		return nil, err
	}
	enc := coding.NewEncoder(coding.WithKeyStrategy(strategy))
	v, err := enc.Encode(&tree, ir.NewContext())
	if err != nil {
		return nil, err
	}
	res := doc.Clone()
	if err := res.SetPath(path, v.(*ir.Node)); err != nil {
		return nil, err
	}
	return res, nil
}

func parseDoc(d []byte, f textFormat) (*ir.Node, error) {
	if f == yamlFormat {
		return ir.FromYAML(d)
	}
	return ir.FromJSON(d)
}

func renderDoc(y *ir.Node, f textFormat, opts ...ir.TextOption) ([]byte, error) {
	if f == yamlFormat {
		return ir.ToYAML(y, opts...)
	}
	d, err := ir.ToJSON(y, opts...)
	if err != nil {
		return nil, err
	}
	if len(d) == 0 || d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	return d, nil
}

func writeDoc(w io.Writer, y *ir.Node, f textFormat, opts ...ir.TextOption) error {
	d, err := renderDoc(y, f, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func writeLines(w io.Writer, lines []libdiff.Line, colors bool) error {
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	for _, l := range lines {
		s := l.Op.Prefix() + l.Text
		if colors {
			switch l.Op {
			case libdiff.Delete:
				s = del.Sprint(s)
			case libdiff.Insert:
				s = ins.Sprint(s)
			}
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
