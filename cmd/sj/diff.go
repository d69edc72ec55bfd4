package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sjson-format/go-sjson/encode"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diff compares the canonical (indented, uncolored) encodings of two
// documents, so input formatting differences never show up as changes.
func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	texts := [2]string{}
	for i, arg := range args {
		doc, err := cfg.readDoc(arg)
		if err != nil {
			return err
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(doc, doc.Root(), buf); err != nil {
			return err
		}
		texts[i] = buf.String()
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(texts[0], texts[1], true)
	diffs = diffCfg.DiffCleanupSemantic(diffs)

	useColor := cfg.Color
	if f, ok := cc.Out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		useColor = true
	}
	for _, d := range diffs {
		text := d.Text
		switch d.Type {
		case diffpatch.DiffDelete:
			if useColor {
				text = color.RedString("%s", text)
			} else {
				text = "-[" + text + "]"
			}
		case diffpatch.DiffInsert:
			if useColor {
				text = color.GreenString("%s", text)
			} else {
				text = "+[" + text + "]"
			}
		}
		if _, err := fmt.Fprint(cc.Out, text); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(cc.Out)
	return err
}
