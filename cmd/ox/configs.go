package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/oval/config"
	"github.com/signadot/oval/encode"
)

type MainConfig struct {
	Color      bool   `cli:"name=color desc='encode with color'"`
	WireOut    bool   `cli:"name=wire desc='output in the single line wire form'"`
	ConfigFile string `cli:"name=config desc='configuration file (toml)'"`

	Out      string
	CloseOut func() error

	// File holds the configuration file settings, or the defaults.
	File *config.Config

	Main *cli.Command
}

func (cfg *MainConfig) loadFile() error {
	if cfg.ConfigFile == "" {
		cfg.File = config.Default()
		return nil
	}
	f, err := config.Load(cfg.ConfigFile)
	if err != nil {
		return err
	}
	cfg.File = f
	return nil
}

func (cfg *MainConfig) file() *config.Config {
	if cfg.File == nil {
		cfg.File = config.Default()
	}
	return cfg.File
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fc := cfg.file()
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.WireOut),
		encode.EncodeIndent(fc.Encode.Indent),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	if cfg.colorSet() {
		return res
	}
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd())
	}
	if fc.Encode.UseColor(tty) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colorSet reports whether -color was given explicitly.
func (cfg *MainConfig) colorSet() bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" {
			return opt.Value != nil
		}
	}
	return false
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	All bool `cli:"name=a desc='get every element with the name, not the first'"`

	Get *cli.Command
}

type AttrConfig struct {
	*MainConfig
	Elem string `cli:"name=e desc='read the attribute of this child element'"`

	Attr *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim     bool `cli:"name=trim desc='trim the results to the match'"`
	NoHeader bool `cli:"name=noheader desc='ignore root names and attributes'"`
	Ops      bool `cli:"name=ops desc='honor operation and datatype attributes of the match'"`
	String   bool `cli:"name=s desc='consider match a string argument'"`
	File     bool `cli:"name=f desc='consider match a file path'"`
}

type FilterConfig struct {
	*MainConfig
	Count bool `cli:"name=c desc='print the number of matching objects'"`

	Filter *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool   `cli:"name=r desc='reverse the diff'"`
	Text    bool   `cli:"name=t desc='line diff of the encoded trees'"`
	Loop    string `cli:"name=loop desc='command to produce objects to diff in a loop'"`
	LoopLim int    `cli:"name=loopLim desc='max number of times to loop'"`
	// set with -loopEvery
	LoopEvery time.Duration

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type LoadConfig struct {
	*MainConfig
	Load *cli.Command
}

type ProjectConfig struct {
	*MainConfig
	Strict  bool `cli:"name=strict desc='fail on entities which cannot be projected'"`
	Coerce  bool `cli:"name=coerce desc='project numeric entities as canonical text'"`
	Reverse bool `cli:"name=r desc='read object trees and write yaml documents'"`

	Project *cli.Command
}

type SchemaConfig struct {
	*MainConfig
	Schema *cli.Command
}

type ServeConfig struct {
	*MainConfig
	Gops bool `cli:"name=gops desc='start a gops agent'"`

	Serve *cli.Command
}

type CollectConfig struct {
	*MainConfig
	Replay string `cli:"name=replay desc='file of recorded items'"`

	Collect *cli.Command
}
