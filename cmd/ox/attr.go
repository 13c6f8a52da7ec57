package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/oval"
)

func attr(cfg *AttrConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Attr.Parse(cc, args)
	if err != nil {
		cfg.Attr.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: attr requires one argument, an attribute name", cli.ErrUsage)
	}
	name := args[0]
	ys, err := getObjFiles(cc, args[1:])
	if err != nil {
		return err
	}
	found := false
	for _, y := range ys {
		elm := y
		if cfg.Elem != "" {
			e, ok := oval.FindElement(y, cfg.Elem)
			if !ok {
				continue
			}
			elm = e
		}
		v, ok := oval.AttrValue(elm, name)
		if !ok {
			if !oval.HasAttr(elm, name) {
				continue
			}
			// bare marker
			fmt.Fprintln(cc.Out, name)
			found = true
			continue
		}
		found = true
		fmt.Fprintln(cc.Out, v.Atom)
	}
	if !found {
		return cli.ExitCodeErr(1)
	}
	return nil
}
