package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/oval/eval"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		cfg.Filter.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires an expression", cli.ErrUsage)
	}
	f, err := eval.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	ys, err := getObjFiles(cc, args[1:])
	if err != nil {
		return err
	}
	res, err := f.Select(ys)
	if err != nil {
		return err
	}
	if cfg.Count {
		fmt.Fprintln(cc.Out, len(res))
		return nil
	}
	return writeTrees(cfg.MainConfig, cc.Out, res)
}
