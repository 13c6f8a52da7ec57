package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/oval/entity"
)

func schema(cfg *SchemaConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Schema.Parse(cc, args); err != nil {
		return err
	}
	d, err := entity.JSONSchema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cc.Out, "%s\n", d)
	return err
}
