// Package debug holds environment controlled developer tracing.
package debug

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type debug struct {
	Parse   bool
	Project bool
	Match   bool
	Probe   bool
	Eval    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("OVAL_DEBUG_PARSE")
	d.Project = boolEnv("OVAL_DEBUG_PROJECT")
	d.Match = boolEnv("OVAL_DEBUG_MATCH")
	d.Probe = boolEnv("OVAL_DEBUG_PROBE")
	d.Eval = boolEnv("OVAL_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Project() bool {
	return d.Project
}
func Match() bool {
	return d.Match
}
func Probe() bool {
	return d.Probe
}
func Eval() bool {
	return d.Eval
}

// LogLevel returns the slog level named by OVAL_LOG_LEVEL, defaulting to
// info.
func LogLevel() slog.Level {
	var lvl slog.Level
	v := strings.TrimSpace(os.Getenv("OVAL_LOG_LEVEL"))
	if v == "" {
		return slog.LevelInfo
	}
	if err := lvl.UnmarshalText([]byte(v)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
