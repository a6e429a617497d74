package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/yayaml-go/yayaml/eval"
	"github.com/yayaml-go/yayaml/schema"
)

func schemas(cfg *SchemasConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Schemas.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: schemas takes no arguments, got %v", cli.ErrUsage, args)
	}
	colors := cfg.colors(cc.Out)
	if cfg.Symbols {
		fmt.Fprintf(cc.Out, "available expression functions:\n")
		fmt.Fprintf(cc.Out, "\t- %s\n", colors.Color(NameColor, "parse"))
		fmt.Fprintf(cc.Out, "\t- %s\n", colors.Color(NameColor, "parsetag"))
		fmt.Fprintf(cc.Out, "\t- %s\n", colors.Color(NameColor, "tovalue"))
		for _, s := range eval.Symbols() {
			fmt.Fprintf(cc.Out, "\t- %s\n", colors.Color(NameColor, s.String()))
		}
		return nil
	}
	for _, name := range schema.Names() {
		s, err := schema.ByName(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\t%s\n", colors.Color(NameColor, name), colors.Color(DescColor, s.Name()))
	}
	return nil
}
