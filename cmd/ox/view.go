package main

import (
	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	ys, err := getObjFiles(cc, args)
	if err != nil {
		return err
	}
	return writeTrees(cfg.MainConfig, cc.Out, ys)
}
