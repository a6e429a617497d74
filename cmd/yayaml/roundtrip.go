package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/yayaml-go/yayaml/libdiff"
)

var lineColors = map[libdiff.Op]ColorAttr{
	libdiff.Equal:  EqualColor,
	libdiff.Insert: InsertColor,
	libdiff.Delete: DeleteColor,
}

// roundTrip exits with code 1 when some input does not come back
// unchanged.
func roundTrip(cfg *RoundTripConfig, cc *cli.Context, args []string) error {
	args, err := cfg.RoundTrip.Parse(cc, args)
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
	colors := cfg.colors(cc.Out)
	differs := false
	for _, in := range ins {
		out, _, err := tool.RoundTrip(in.data)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", in.name, err)
		}
		lines := libdiff.DiffString(string(in.data), string(out))
		if !libdiff.Changed(lines) {
			continue
		}
		differs = true
		if cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: differs\n", in.name)
			continue
		}
		fmt.Fprintf(cc.Out, "%s\n", colors.Color(NameColor, "--- "+in.name))
		for _, ln := range lines {
			fmt.Fprintln(cc.Out, colors.Color(lineColors[ln.Op], ln.String()))
		}
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}
