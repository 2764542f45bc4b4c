package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/urfave/cli/v3"

	"github.com/jsondelta/jsondelta/syntax"
)

func patchCommand() *cli.Command {
	return &cli.Command{
		Name:      "patch",
		Usage:     "apply a delta to a document",
		UsageText: "jsondelta patch [options] BASE DELTA\n\nBASE and DELTA are file paths; \"-\" reads stdin.",
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
				Name:  "rfc6902",
				Usage: "treat DELTA as an RFC 6902 JSON Patch",
			},
			&cli.BoolFlag{
				Name:  "merge",
				Usage: "treat DELTA as an RFC 7386 merge patch",
			},
		},
		Action: runPatch,
	}
}

func runPatch(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("patch requires 2 args, got %d", cmd.Args().Len())
	}
	base, err := readObjFile(cmd.Args().Get(0))
	if err != nil {
		return err
	}
	delta, err := readObjFile(cmd.Args().Get(1))
	if err != nil {
		return err
	}

	if cmd.Bool("rfc6902") || cmd.Bool("merge") {
		return runStandardPatch(cmd, base, delta)
	}

	d, err := newDiffer(cmd)
	if err != nil {
		return err
	}
	out, err := d.PatchBytes(base, delta)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

// runStandardPatch applies the two RFC patch formats. Both are JSON-only.
func runStandardPatch(cmd *cli.Command, base, delta []byte) error {
	if cmd.Bool("yaml") {
		return fmt.Errorf("-rfc6902 and -merge only work on JSON documents")
	}
	var out []byte
	var err error
	if cmd.Bool("merge") {
		out, err = jsonpatch.MergePatch(base, delta)
	} else {
		var p jsonpatch.Patch
		p, err = jsonpatch.DecodePatch(delta)
		if err != nil {
			return fmt.Errorf("bad RFC 6902 patch: %w", err)
		}
		out, err = p.Apply(base)
	}
	if err != nil {
		return err
	}
	if ind := indentStr(cmd); ind != "" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, out, "", ind); err == nil {
			out = buf.Bytes()
		}
	}
	_, err = fmt.Fprintf(os.Stdout, "%s\n", out)
	return err
}
