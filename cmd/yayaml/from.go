package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/scott-cotton/cli"
)

func from(cfg *FromConfig, cc *cli.Context, args []string) error {
	args, err := cfg.From.Parse(cc, args)
	if err != nil {
		return err
	}
	tool, err := cfg.tool()
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	var all []any
	for _, in := range ins {
		values, err := tool.FromYAML(in.data)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", in.name, err)
		}
		for _, v := range values {
			if cfg.NoEnumerate {
				all = append(all, jsonReady(v))
				continue
			}
			if err := writeJSON(cc, jsonReady(v)); err != nil {
				return err
			}
		}
	}
	if cfg.NoEnumerate {
		if all == nil {
			all = []any{}
		}
		return writeJSON(cc, all)
	}
	return nil
}

func writeJSON(cc *cli.Context, v any) error {
	d, err := json.Marshal(v)
	if err != nil {
		return err
	}
	d = append(d, '\n')
	_, err = cc.Out.Write(d)
	return err
}
