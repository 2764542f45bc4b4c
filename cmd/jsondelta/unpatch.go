package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/jsondelta/jsondelta/syntax"
)

func unpatchCommand() *cli.Command {
	return &cli.Command{
		Name:      "unpatch",
		Usage:     "run a delta backwards over a patched document",
		UsageText: "jsondelta unpatch [options] TARGET DELTA\n\nTARGET and DELTA are file paths; \"-\" reads stdin. Compact deltas are not invertible; use a symmetric delta.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "syntax",
				Value: "symmetric",
				Usage: "delta syntax: " + strings.Join(syntax.Names(), ", "),
			},
			&cli.StringFlag{
				Name:  "escape",
				Value: "$",
				Usage: "marker escape prefix",
			},
			&cli.BoolFlag{
				Name:  "yaml",
				Usage: "read and write YAML instead of JSON",
			},
			&cli.IntFlag{
				Name:  "indent",
				Value: 2,
				Usage: "output indent width, 0 for one-line output",
			},
		},
		Action: runUnpatch,
	}
}

func runUnpatch(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("unpatch requires 2 args, got %d", cmd.Args().Len())
	}
	d, err := newDiffer(cmd)
	if err != nil {
		return err
	}
	target, err := readObjFile(cmd.Args().Get(0))
	if err != nil {
		return err
	}
	delta, err := readObjFile(cmd.Args().Get(1))
	if err != nil {
		return err
	}
	out, err := d.UnpatchBytes(target, delta)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
