package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/oval/ir"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	ys, err := getObjFiles(cc, args)
	if err != nil {
		return err
	}
	for i, y := range ys {
		d, err := ir.ToJSON(y)
		if err != nil {
			return fmt.Errorf("internal error: %w", err)
		}
		buf := &bytes.Buffer{}
		if err := json.Indent(buf, d, "", "  "); err != nil {
			return fmt.Errorf("internal error: %w", err)
		}
		buf.WriteByte('\n')
		if _, err := cc.Out.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("error writing tree %d: %w", i, err)
		}
	}
	return nil
}

// load reads a stream of IR JSON values, as written by dump.
func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var res []*ir.Node
	for _, file := range args {
		d, err := readPath(cc, file)
		if err != nil {
			return err
		}
		dec := json.NewDecoder(bytes.NewReader(d))
		for i := 0; dec.More(); i++ {
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return fmt.Errorf("error decoding %s value %d: %w", file, i, err)
			}
			y, err := ir.FromJSON(raw)
			if err != nil {
				return fmt.Errorf("error loading %s value %d: %w", file, i, err)
			}
			res = append(res, y)
		}
	}
	return writeTrees(cfg.MainConfig, cc.Out, res)
}
