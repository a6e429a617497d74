package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

func yMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Depth < 0 {
		return fmt.Errorf("%w: -depth must not be negative", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type input struct {
	name string
	data []byte
}

// readInputs reads each named file, or standard input when there are none
// or the name is "-".
func readInputs(cc *cli.Context, files []string) ([]input, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	res := make([]input, 0, len(files))
	for _, file := range files {
		var (
			d   []byte
			err error
		)
		if file == "-" {
			d, err = io.ReadAll(cc.In)
		} else {
			d, err = os.ReadFile(file)
		}
		if err != nil {
			return nil, fmt.Errorf("could not read %q: %w", file, err)
		}
		res = append(res, input{name: file, data: d})
	}
	return res, nil
}
