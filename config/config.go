// Package config loads the ox configuration file.
//
// The file is TOML:
//
//	[encode]
//	indent = 2
//	color = "auto"
//
//	[project]
//	strict = false
//	coerce = false
//
//	[serve]
//	replay = ["items/host1.ox"]
//	gops = false
//	log_level = "info"
//
// Every key is optional; missing keys keep the values of Default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/signadot/oval/encode"
	"github.com/signadot/oval/entity"
)

var (
	ErrLoad    = errors.New("load config")
	ErrInvalid = errors.New("invalid config")
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	Encode  Encode  `toml:"encode"`
	Project Project `toml:"project"`
	Serve   Serve   `toml:"serve"`
}

type Encode struct {
	Indent int    `toml:"indent" validate:"gte=0,lte=16"`
	Color  string `toml:"color" validate:"oneof=auto always never"`
}

type Project struct {
	Strict bool `toml:"strict"`
	Coerce bool `toml:"coerce"`
}

type Serve struct {
	// Replay lists files of recorded items.  Relative paths are
	// resolved against the directory of the config file.
	Replay   []string `toml:"replay" validate:"dive,required"`
	Gops     bool     `toml:"gops"`
	LogLevel string   `toml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

func Default() *Config {
	return &Config{
		Encode: Encode{Indent: 2, Color: ColorAuto},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Load reads the file at path over the defaults.
func Load(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return Decode(d, filepath.Dir(path))
}

// Decode parses d over the defaults.  Unknown keys are an error.  dir is
// the base of relative replay paths.
func Decode(d []byte, dir string) (*Config, error) {
	cfg := Default()
	meta, err := toml.Decode(string(d), cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	if undec := meta.Undecoded(); len(undec) != 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrLoad, strings.Join(keys, ", "))
	}
	for i, p := range cfg.Serve.Replay {
		p = strings.TrimSpace(p)
		if p != "" && !filepath.IsAbs(p) && dir != "" {
			p = filepath.Join(dir, p)
		}
		cfg.Serve.Replay[i] = p
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UseColor reports whether output should be colored, given whether it
// goes to a terminal.
func (e *Encode) UseColor(tty bool) bool {
	switch e.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return tty
}

func (e *Encode) Options(tty bool) []encode.EncodeOption {
	opts := []encode.EncodeOption{encode.EncodeIndent(e.Indent)}
	if e.UseColor(tty) {
		opts = append(opts, encode.EncodeColors(encode.NewColors()))
	}
	return opts
}

func (p *Project) Options() []entity.ProjectOpt {
	return []entity.ProjectOpt{entity.Strict(p.Strict), entity.Coerce(p.Coerce)}
}
