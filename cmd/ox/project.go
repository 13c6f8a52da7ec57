package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/oval/entity"
	"github.com/signadot/oval/ir"
)

func project(cfg *ProjectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Project.Parse(cc, args)
	if err != nil {
		cfg.Project.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Reverse {
		return unproject(cfg, cc, args)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	fc := cfg.file()
	opts := []entity.ProjectOpt{
		entity.Strict(cfg.Strict || fc.Project.Strict),
		entity.Coerce(cfg.Coerce || fc.Project.Coerce),
	}
	var res []*ir.Node
	for _, file := range args {
		d, err := readPath(cc, file)
		if err != nil {
			return err
		}
		doc, err := entity.LoadYAML(d)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}
		y, err := entity.Project(doc.Type, doc.Object(), opts...)
		if err != nil {
			return fmt.Errorf("error projecting %s: %w", file, err)
		}
		res = append(res, y)
	}
	return writeTrees(cfg.MainConfig, cc.Out, res)
}

func unproject(cfg *ProjectConfig, cc *cli.Context, args []string) error {
	ys, err := getObjFiles(cc, args)
	if err != nil {
		return err
	}
	for i, y := range ys {
		typeName, obj, err := entity.FromNode(y)
		if err != nil {
			return fmt.Errorf("tree %d: %w", i, err)
		}
		d, err := yaml.Marshal(&entity.Document{Type: typeName, Contents: obj.Contents})
		if err != nil {
			return fmt.Errorf("tree %d: %w", i, err)
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	return nil
}
