package main

import (
	"fmt"

	"github.com/sjson-format/go-sjson/debug"
	"github.com/sjson-format/go-sjson/gomap"
	"github.com/sjson-format/go-sjson/ir"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
)

// eval runs an expr program with the document bound as "doc" and prints
// the result as a document.
func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: eval requires -e <expr>", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := cfg.readDoc(arg)
		if err != nil {
			return err
		}
		v, err := gomap.ToAny(doc, doc.Root())
		if err != nil {
			return err
		}
		env := map[string]any{"doc": v}
		prg, err := expr.Compile(cfg.Expr, expr.Env(env))
		if err != nil {
			return fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
		res, err := expr.Run(prg, env)
		if err != nil {
			return fmt.Errorf("error evaluating %q on %s: %w", cfg.Expr, arg, err)
		}
		if debug.CLI() {
			debug.Logf("eval %q on %s -> %T\n", cfg.Expr, arg, res)
		}
		out := ir.New()
		h, err := gomap.FromAny(out, res)
		if err != nil {
			return err
		}
		out.SetRoot(h)
		if err := cfg.writeDoc(cc.Out, out, h, false); err != nil {
			return err
		}
	}
	return nil
}
