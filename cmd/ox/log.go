package main

import (
	"log/slog"
	"os"

	"github.com/signadot/oval/debug"
)

// stdout may carry the probe stream, so logs go to stderr.
var theLog = newLog(debug.LogLevel())

func newLog(lvl slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				if a.Value.String() == "INFO" {
					return slog.Attr{}
				}
			}
			return a
		},
	}))
}
