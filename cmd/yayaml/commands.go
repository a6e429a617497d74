package main

import (
	"github.com/scott-cotton/cli"
	"github.com/yayaml-go/yayaml/gomap"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Schema: "core", Depth: gomap.DefaultDepth}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "yayaml").
		WithSynopsis("yayaml [opts] command [opts]").
		WithDescription("yayaml converts between YAML and values under a YAML schema.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return yMain(cfg, cc, args)
		}).
		WithSubs(
			FromCommand(cfg),
			ToCommand(cfg),
			RoundTripCommand(cfg),
			SchemasCommand(cfg))
}

func FromCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FromConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.From, "from").
		WithAliases("f").
		WithSynopsis("from [-no-enumerate] [files]").
		WithDescription("resolve YAML documents and print them as JSON, one document per line").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return from(cfg, cc, args)
		})
}

func ToCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ToConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.To, "to").
		WithAliases("t").
		WithSynopsis("to [files]").
		WithDescription("read JSON values and write them as YAML documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return to(cfg, cc, args)
		})
}

func RoundTripCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RoundTripConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.RoundTrip, "roundtrip").
		WithAliases("rt").
		WithSynopsis("roundtrip [-q] [files]").
		WithDescription("parse and re-emit YAML keeping its format, showing what changed").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return roundTrip(cfg, cc, args)
		})
}

func SchemasCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SchemasConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Schemas, "schemas").
		WithSynopsis("schemas [-symbols]").
		WithDescription("list schema names, or the functions available to -e definitions").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return schemas(cfg, cc, args)
		})
}
