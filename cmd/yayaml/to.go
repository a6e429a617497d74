package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func to(cfg *ToConfig, cc *cli.Context, args []string) error {
	args, err := cfg.To.Parse(cc, args)
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
	var values []any
	for _, in := range ins {
		vs, err := readJSON(in.data)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", in.name, err)
		}
		values = append(values, vs...)
	}
	out, _, err := tool.ToYAML(values...)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(out)
	return err
}
