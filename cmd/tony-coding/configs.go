package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/tony-coding/ir"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type textFormat int

const (
	jsonFormat textFormat = iota
	yamlFormat
)

func (f textFormat) String() string {
	if f == yamlFormat {
		return "yaml"
	}
	return "json"
}

func parseFormat(v string) (textFormat, error) {
	switch strings.ToLower(v) {
	case "json", "j":
		return jsonFormat, nil
	case "yaml", "y", "yml":
		return yamlFormat, nil
	}
	return 0, fmt.Errorf("unknown format %q", v)
}

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent bool `cli:"name=indent desc='indent json output'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *textFormat

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**textFormat) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := parseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat picks the format of file from the flags, then its extension.
func (cfg *MainConfig) inFormat(file string) textFormat {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat
	case cfg.J:
		return jsonFormat
	case cfg.Y:
		return yamlFormat
	}
	switch filepath.Ext(file) {
	case ".yaml", ".yml":
		return yamlFormat
	}
	return jsonFormat
}

func (cfg *MainConfig) outFormat(in textFormat) textFormat {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.J:
		return jsonFormat
	case cfg.Y:
		return yamlFormat
	}
	return in
}

// colorOut reports whether output to w is colored: always with -color,
// otherwise when w is a terminal and -color was not given as false.
func (cfg *MainConfig) colorOut(w io.Writer) bool {
	if cfg.Color {
		color.NoColor = false
		return true
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) textOpts(w io.Writer) []ir.TextOption {
	var res []ir.TextOption
	if cfg.Indent {
		res = append(res, ir.EncodeIndent("  "))
	}
	if cfg.colorOut(w) {
		res = append(res, ir.EncodeColors(ir.NewColors()))
	}
	return res
}

type RekeyConfig struct {
	*MainConfig

	Snake bool   `cli:"name=snake desc='convert keys to snake case'"`
	Camel bool   `cli:"name=camel desc='convert keys from snake case'"`
	Expr  string `cli:"name=e aliases=expr desc='rename keys with an expression'"`

	At         string `cli:"name=at desc='only rekey the subtree at this path'"`
	MergePatch bool   `cli:"name=merge-patch desc='output the json merge patch from input to result'"`
	Diff       bool   `cli:"name=diff desc='output a line diff from input to result'"`

	Rekey *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Snake bool   `cli:"name=snake desc='convert keys to snake case'"`
	Camel bool   `cli:"name=camel desc='convert keys from snake case'"`
	Expr  string `cli:"name=e aliases=expr desc='rename keys with an expression'"`

	Keys *cli.Command
}
