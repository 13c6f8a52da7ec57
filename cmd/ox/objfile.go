package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/oval/encode"
	"github.com/signadot/oval/ir"
	"github.com/signadot/oval/parse"
)

func readPath(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// getObjFile reads the single tree in path.
func getObjFile(cc *cli.Context, path string) (*ir.Node, error) {
	d, err := readPath(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d)
}

// getObjFiles reads every tree of every file, stdin if there are none.
func getObjFiles(cc *cli.Context, files []string) ([]*ir.Node, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	var res []*ir.Node
	for _, file := range files {
		d, err := readPath(cc, file)
		if err != nil {
			return nil, err
		}
		ys, err := parse.ParseAll(d)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", file, err)
		}
		res = append(res, ys...)
	}
	return res, nil
}

// getish reads a tree given on the command line, as text with -s or
// from a file with -f.
func getish(s, f bool, cc *cli.Context, arg string) (*ir.Node, error) {
	if s && f {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	var (
		d   []byte
		err error
	)
	if f {
		d, err = readPath(cc, arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
	} else {
		d = []byte(arg)
	}
	return parse.Parse(d)
}

func getishBytes(s, f bool, cc *cli.Context, arg string) ([]byte, error) {
	if s && f {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	if f {
		return readPath(cc, arg)
	}
	return []byte(strings.TrimSpace(arg)), nil
}

func writeTrees(cfg *MainConfig, w io.Writer, ys []*ir.Node) error {
	opts := cfg.encOpts(w)
	for i, y := range ys {
		if err := encode.Encode(y, w, opts...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
	}
	return nil
}
