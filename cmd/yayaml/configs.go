package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/yayaml-go/yayaml"
	"github.com/yayaml-go/yayaml/eval"
	"github.com/yayaml-go/yayaml/schema"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='color output'"`
	Schema  string `cli:"name=schema aliases=s desc='schema: yaml11, core, json, failsafe'"`
	Eval    string `cli:"name=e desc='schema definition file with expressions'"`
	Depth   int    `cli:"name=depth desc='collection depth written when emitting'"`
	Verbose bool   `cli:"name=v desc='log member access failures'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

type FromConfig struct {
	*MainConfig
	NoEnumerate bool `cli:"name=no-enumerate desc='print all documents as one JSON array'"`

	From *cli.Command
}

type ToConfig struct {
	*MainConfig

	To *cli.Command
}

type RoundTripConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report whether the output differs'"`

	RoundTrip *cli.Command
}

type SchemasConfig struct {
	*MainConfig
	Symbols bool `cli:"name=symbols desc='list expression functions'"`

	Schemas *cli.Command
}

func (cfg *MainConfig) schema() (schema.Schema, error) {
	if cfg.Eval == "" {
		s, err := schema.ByName(cfg.Schema)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		return s, nil
	}
	def, err := eval.LoadFile(cfg.Eval)
	if err != nil {
		return nil, err
	}
	if def.Base == "" {
		def.Base = cfg.Schema
	}
	return def.Build()
}

func (cfg *MainConfig) logger() log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	if cfg.Verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowWarn())
}

func (cfg *MainConfig) tool() (*yayaml.Tool, error) {
	s, err := cfg.schema()
	if err != nil {
		return nil, err
	}
	tool := yayaml.DefaultTool()
	tool.Schema = s
	tool.Depth = cfg.Depth
	tool.Logger = cfg.logger()
	return tool, nil
}

// colors is nil unless -color is given or, without -color, w
// is a terminal.
func (cfg *MainConfig) colors(w io.Writer) *Colors {
	if cfg.Color {
		color.NoColor = false
		return NewColors()
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return NewColors()
	}
	return nil
}
