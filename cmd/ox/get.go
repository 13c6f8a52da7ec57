package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/oval"
	"github.com/signadot/oval/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an element path", cli.ErrUsage)
	}
	path := strings.Trim(args[0], "/")
	if path == "" {
		return fmt.Errorf("%w: invalid path %q", cli.ErrUsage, args[0])
	}
	ys, err := getObjFiles(cc, args[1:])
	if err != nil {
		return err
	}
	var res []*ir.Node
	for _, y := range ys {
		res = append(res, getPath(y, strings.Split(path, "/"), cfg.All)...)
	}
	if len(res) == 0 {
		return cli.ExitCodeErr(1)
	}
	return writeTrees(cfg.MainConfig, cc.Out, res)
}

func getPath(y *ir.Node, names []string, all bool) []*ir.Node {
	cur := []*ir.Node{y}
	for _, name := range names {
		var next []*ir.Node
		for _, c := range cur {
			if all {
				next = append(next, oval.Elements(c, name)...)
				continue
			}
			if e, ok := oval.FindElement(c, name); ok {
				next = append(next, e)
			}
		}
		cur = next
	}
	return cur
}
