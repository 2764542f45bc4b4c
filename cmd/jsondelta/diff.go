package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/urfave/cli/v3"

	"github.com/jsondelta/jsondelta/syntax"
	"github.com/jsondelta/jsondelta/value"
)

func diffCommand() *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "compute the delta between two documents",
		UsageText: "jsondelta diff [options] A B\n\nA and B are file paths; \"-\" reads stdin. Exits 1 when the documents differ.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "syntax",
				Value: "compact",
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
			&cli.BoolFlag{
				Name:    "similarity",
				Aliases: []string{"s"},
				Usage:   "also print the similarity score to stderr",
			},
			&cli.StringFlag{
				Name:  "filter",
				Usage: "boolean expression over `key`; top-level keys where it is false are ignored",
			},
			&cli.StringFlag{
				Name:  "color",
				Value: "auto",
				Usage: "colorize output: auto, always, never",
			},
		},
		Action: runDiff,
	}
}

func runDiff(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("diff requires 2 args, got %d", cmd.Args().Len())
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
	if f := cmd.String("filter"); f != "" {
		prog, err := expr.Compile(f, expr.AsBool())
		if err != nil {
			return fmt.Errorf("bad -filter expression: %w", err)
		}
		if a, err = filterTopLevel(a, prog); err != nil {
			return err
		}
		if b, err = filterTopLevel(b, prog); err != nil {
			return err
		}
	}

	delta, s := d.Compare(a, b)
	if cmd.Bool("similarity") {
		fmt.Fprintf(os.Stderr, "similarity: %g\n", s)
	}

	marshaled := d.Marshal(delta)
	if colorEnabled(cmd.String("color")) {
		renderDelta(os.Stdout, marshaled, indentStr(cmd), cmd.String("escape"), cmd.String("syntax") == "symmetric")
	} else if err := cmdDumper(cmd).Dump(os.Stdout, marshaled); err != nil {
		return err
	}
	if !(delta.Type() == value.ObjectType && delta.Len() == 0) {
		return cli.Exit("", 1)
	}
	return nil
}

// filterTopLevel drops the top-level object keys the expression rejects.
// Non-object documents pass through.
func filterTopLevel(v *value.Value, prog *vm.Program) (*value.Value, error) {
	if v.Type() != value.ObjectType {
		return v, nil
	}
	out := value.NewObject()
	for _, k := range v.Keys() {
		if k.Kind() != value.StringKeyKind {
			out.Set(k, v.Get(k))
			continue
		}
		res, err := expr.Run(prog, map[string]any{"key": k.Str()})
		if err != nil {
			return nil, fmt.Errorf("-filter failed on key %q: %w", k.Str(), err)
		}
		if keep, _ := res.(bool); keep {
			out.Set(k, v.Get(k))
		}
	}
	return out, nil
}
