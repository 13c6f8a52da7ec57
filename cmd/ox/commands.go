package main

import (
	"time"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "ox").
		WithSynopsis("ox [opts] command [opts]").
		WithDescription("ox is a tool for working with OVAL object trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return oxMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			AttrCommand(cfg),
			MatchCommand(cfg),
			FilterCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			DumpCommand(cfg),
			LoadCommand(cfg),
			ProjectCommand(cfg),
			SchemaCommand(cfg),
			ServeCommand(cfg),
			CollectCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view object trees in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g", "ge").
		WithSynopsis("get [-a] <elem[/elem...]> [files]").
		WithDescription("get the elements of objects along a path of element names").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func AttrCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AttrConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Attr, "attr").
		WithAliases("a").
		WithSynopsis("attr [-e elem] <name> [files]").
		WithDescription("print attribute values of objects or of their elements").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return attr(cfg, cc, args)
		})
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "match").
		WithAliases("m").
		WithSynopsis("match [opts] <matchobj> [files]").
		WithDescription("print the trees which match a pattern tree").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Filter, "filter").
		WithAliases("f").
		WithSynopsis("filter [-c] <expr> [files]").
		WithDescription(filterDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
}

const filterDescription = `filter prints the objects for which an expression is true.

The expression sees
  name              the object name
  elements          map of element name to scalar text
  attrs             map of object attribute name to value
  text(e)           scalar text of element e
  attr(e, a)        attribute a of element e
  has(e)            whether element e is present
  hasattr(e, a)     whether element e carries attribute a
  count(e)          number of elements named e
  compare(e, op, p) entity operation op, such as "pattern match", on e
  getenv(v)         environment variable v

For example

  ox filter 'name == "rpminfo_object" && text("name") startsWith "http"' objs.ox`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, LoopEvery: time.Second, LoopLim: -1}
	loopEveryOpt := &cli.Opt{
		Name: "loopEvery",
		Type: cli.FuncOpt(cfg.mkLoopEvery()),
	}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, loopEveryOpt)
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff a b or diff -loop <cmd>").
		WithDescription("diff object trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func (cfg *DiffConfig) mkLoopEvery() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.LoopEvery = d
		return d, nil
	}
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [opts] <json-patch> <file>").
		WithDescription("apply an RFC 6902 JSON patch to the IR of a tree").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [files]").
		WithDescription("dump the IR of trees as JSON").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func LoadCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LoadConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Load, "load").
		WithSynopsis("load [ir-files]").
		WithDescription("load IR JSON files and render them as trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return load(cfg, cc, args)
		})
}

func ProjectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ProjectConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Project, "project").
		WithAliases("pr").
		WithSynopsis("project [-strict] [-coerce] [-r] [files]").
		WithDescription("project yaml entity documents to object trees, or back with -r").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return project(cfg, cc, args)
		})
}

func SchemaCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SchemaConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Schema, "schema").
		WithSynopsis("schema").
		WithDescription("print the JSON schema of yaml entity documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return schema(cfg, cc, args)
		})
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Serve, "serve").
		WithSynopsis("serve [-gops] [replay-files]").
		WithDescription("serve replay probes over stdin and stdout").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}

func CollectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CollectConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Collect, "collect").
		WithAliases("c").
		WithSynopsis("collect -replay <items> [object-files]").
		WithDescription("collect the recorded items matching objects").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return collect(cfg, cc, args)
		})
}
