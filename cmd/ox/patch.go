package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/oval/encode"
	"github.com/signadot/oval/ir"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a json patch, and a file to which to apply it", cli.ErrUsage)
	}
	p, err := getishBytes(cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return err
	}
	target, err := getObjFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	res, err := ir.ApplyJSONPatch(target, p)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
