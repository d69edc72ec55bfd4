package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sjson-format/go-sjson/debug"
	"github.com/sjson-format/go-sjson/encode"
	"github.com/sjson-format/go-sjson/gomap"
	"github.com/sjson-format/go-sjson/ir"
	"github.com/sjson-format/go-sjson/parse"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	C     bool `cli:"name=c aliases=compact desc='compact single-line output'"`
	Color bool `cli:"name=color desc='encode with color'"`
	Y     bool `cli:"name=y aliases=yaml desc='emit yaml instead of json'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer, forceColor bool) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.C {
		res = append(res, encode.Compact())
	}
	if cfg.Color || forceColor {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// readDoc parses one input argument, "-" meaning stdin.
func (cfg *MainConfig) readDoc(arg string) (*ir.Doc, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	doc, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	if debug.CLI() {
		debug.Logf("parsed %s (%d bytes) in %s\n", arg, len(d), time.Since(start))
	}
	return doc, nil
}

// writeDoc renders the subtree at h to w, as JSON or, with -y, as YAML.
func (cfg *MainConfig) writeDoc(w io.Writer, doc *ir.Doc, h ir.Handle, forceColor bool) error {
	if cfg.Y {
		v, err := gomap.ToAny(doc, h)
		if err != nil {
			return err
		}
		d, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	if err := encode.Encode(doc, h, w, cfg.encOpts(w, forceColor)...); err != nil {
		return err
	}
	_, err := w.Write([]byte("\n"))
	return err
}

type FmtConfig struct {
	*MainConfig
	Fmt *cli.Command
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	PatchFile string `cli:"name=p aliases=patch desc='RFC 6902 patch file'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Expr string `cli:"name=e aliases=expr desc='expression, document bound as doc'"`

	Eval *cli.Command
}
