package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"

	"github.com/signadot/oval/ir"
	"github.com/signadot/oval/probe"
)

// stdio joins stdin and stdout into the probe stream.
type stdio struct {
	io.Reader
	io.Writer
}

func (stdio) Close() error {
	err := os.Stdin.Close()
	if e := os.Stdout.Close(); err == nil {
		err = e
	}
	return err
}

func loadReplays(cc *cli.Context, files []string) (*probe.Registry, error) {
	reg := probe.NewRegistry()
	for _, file := range files {
		d, err := readPath(cc, file)
		if err != nil {
			return nil, err
		}
		r, err := probe.LoadReplay(d)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", file, err)
		}
		r.Register(reg)
	}
	return reg, nil
}

func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Serve.Parse(cc, args)
	if err != nil {
		return err
	}
	fc := cfg.file()
	if cfg.Gops || fc.Serve.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			theLog.Warn("gops agent failed", "error", err)
		}
		defer agent.Close()
	}
	files := append(append([]string{}, fc.Serve.Replay...), args...)
	reg, err := loadReplays(cc, files)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			theLog.Info("shutting down")
			cancel()
		case <-ctx.Done():
		}
	}()

	log := theLog
	if fc.Serve.LogLevel != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(fc.Serve.LogLevel)); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		log = newLog(lvl)
	}
	return probe.Serve(ctx, stdio{Reader: cc.In, Writer: cc.Out}, reg, log)
}

func collect(cfg *CollectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Collect.Parse(cc, args)
	if err != nil {
		cfg.Collect.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Replay == "" {
		return fmt.Errorf("%w: collect requires -replay", cli.ErrUsage)
	}
	reg, err := loadReplays(cc, []string{cfg.Replay})
	if err != nil {
		return err
	}
	objs, err := getObjFiles(cc, args)
	if err != nil {
		return err
	}
	ctx := context.Background()
	var res []*ir.Node
	for i, obj := range objs {
		items, err := reg.Collect(ctx, obj)
		if err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
		res = append(res, items...)
	}
	return writeTrees(cfg.MainConfig, cc.Out, res)
}
