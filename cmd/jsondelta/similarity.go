package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func similarityCommand() *cli.Command {
	return &cli.Command{
		Name:      "similarity",
		Usage:     "score how similar two documents are, from 0 to 1",
		UsageText: "jsondelta similarity [options] A B",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "escape",
				Value: "$",
				Usage: "marker escape prefix",
			},
			&cli.BoolFlag{
				Name:  "yaml",
				Usage: "read YAML instead of JSON",
			},
		},
		Action: runSimilarity,
	}
}

func runSimilarity(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("similarity requires 2 args, got %d", cmd.Args().Len())
	}
	d, err := newDiffer(cmd)
	if err != nil {
		return err
	}
	a, err := getObjFile(d, cmd, cmd.Args().Get(0))
	if err != nil {
		return err
	}
	b, err := getObjFile(d, cmd, cmd.Args().Get(1))
	if err != nil {
		return err
	}
	fmt.Printf("%g\n", d.Similarity(a, b))
	return nil
}
