package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sjson-format/go-sjson/encode"
	"github.com/sjson-format/go-sjson/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

// patch round-trips documents through their compact JSON encoding,
// applies the RFC 6902 patch there, and reparses the result.
func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: patch requires -p <patchfile>", cli.ErrUsage)
	}
	pd, err := os.ReadFile(cfg.PatchFile)
	if err != nil {
		return err
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", cfg.PatchFile, err)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := cfg.readDoc(arg)
		if err != nil {
			return err
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(doc, doc.Root(), buf, encode.Compact()); err != nil {
			return err
		}
		out, err := ops.Apply(buf.Bytes())
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		patched, err := parse.Parse(out)
		if err != nil {
			return err
		}
		if err := cfg.writeDoc(cc.Out, patched, patched.Root(), false); err != nil {
			return err
		}
	}
	return nil
}
