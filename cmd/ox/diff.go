package main

import (
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/scott-cotton/cli"

	"github.com/signadot/oval/encode"
	"github.com/signadot/oval/ir"
	"github.com/signadot/oval/libdiff"
	"github.com/signadot/oval/parse"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Loop == "" {
		if len(args) != 2 {
			return fmt.Errorf("%w: diff (without -loop) requires 2 args, got %v", cli.ErrUsage, args)
		}
		y1, err := getObjFile(cc, args[0])
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[0], err)
		}
		y2, err := getObjFile(cc, args[1])
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[1], err)
		}
		differs, err := diffInputs(cfg, cc.Out, y1, y2, false)
		if err != nil {
			return err
		}
		if differs {
			return cli.ExitCodeErr(1)
		}
		return nil
	}
	return diffLoop(cfg, cc)
}

func diffLoop(cfg *DiffConfig, cc *cli.Context) error {
	var last *ir.Node
	ticker := time.NewTicker(cfg.LoopEvery)
	defer ticker.Stop()
	diffCount := 0
	for i := 0; i != cfg.LoopLim; i++ {
		cmd := exec.Command("sh", "-c", cfg.Loop)
		r, err := cmd.StdoutPipe()
		if err != nil {
			return fmt.Errorf("unable to create pipe for command %q: %w", cfg.Loop, err)
		}
		cmd.WaitDelay = cfg.LoopEvery
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("unable to start %q: %w", cfg.Loop, err)
		}
		d, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		if err := cmd.Wait(); err != nil {
			return fmt.Errorf("command %q exited with an error: %w", cfg.Loop, err)
		}
		next, err := parse.Parse(d)
		if err != nil {
			return fmt.Errorf("error decoding command output: %w", err)
		}
		if last != nil {
			differs, err := diffInputs(cfg, cc.Out, last, next, diffCount > 0)
			if err != nil {
				return err
			}
			if differs {
				diffCount++
			}
		}
		last = next
		<-ticker.C
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, a, b *ir.Node, sep bool) (bool, error) {
	if cfg.Loop != "" {
		if sep {
			if _, err := w.Write([]byte("\n")); err != nil {
				return false, fmt.Errorf("unable to write separator: %w", err)
			}
		}
	}
	if cfg.Text {
		if ir.Equal(a, b) {
			return false, nil
		}
		if cfg.Reverse {
			a, b = b, a
		}
		d, err := libdiff.TextDiff(a, b)
		if err != nil {
			return false, err
		}
		_, err = io.WriteString(w, d)
		return true, err
	}
	cs := libdiff.Diff(a, b)
	if len(cs) == 0 {
		return false, nil
	}
	if cfg.Reverse {
		cs = libdiff.Reverse(cs)
	}
	if cfg.Loop != "" {
		when := time.Now().Format(time.RFC3339Nano)
		if _, err := fmt.Fprintf(w, "; difference found at %s\n", when); err != nil {
			return false, err
		}
	}
	if err := encode.Encode(libdiff.ToIR(cs), w, cfg.MainConfig.encOpts(w)...); err != nil {
		return false, err
	}
	return true, nil
}
