package main

import (
	"fmt"

	sjson "github.com/sjson-format/go-sjson"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path argument", cli.ErrUsage)
	}
	path := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := cfg.readDoc(arg)
		if err != nil {
			return err
		}
		h, err := sjson.GetPath(doc, doc.Root(), path)
		if err != nil {
			return fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
		if h.IsNone() {
			// absent paths print nothing and don't yell either
			continue
		}
		if err := cfg.writeDoc(cc.Out, doc, h, false); err != nil {
			return err
		}
	}
	return nil
}
