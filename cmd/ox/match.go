package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/oval"
	"github.com/signadot/oval/ir"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a match object", cli.ErrUsage)
	}
	m, err := getish(cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding match: %w", err)
	}
	ys, err := getObjFiles(cc, args[1:])
	if err != nil {
		return err
	}
	var res []*ir.Node
	for i, y := range ys {
		ok, err := oval.Match(y, m, oval.MatchHeader(!cfg.NoHeader), oval.MatchOperations(cfg.Ops))
		if err != nil {
			return fmt.Errorf("error matching tree %d: %w", i, err)
		}
		if !ok {
			continue
		}
		if cfg.Trim {
			y = oval.Trim(m, y)
		}
		res = append(res, y)
	}
	return writeTrees(cfg.MainConfig, cc.Out, res)
}
