package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/jsondelta/jsondelta"
	"github.com/jsondelta/jsondelta/codec"
	"github.com/jsondelta/jsondelta/syntax"
	"github.com/jsondelta/jsondelta/value"
)

// readObjFile reads a whole document from path, or from stdin when path is
// "-".
func readObjFile(path string) ([]byte, error) {
	if path == "-" {
		d, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return d, nil
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func newDiffer(cmd *cli.Command) (*jsondelta.Differ, error) {
	name := cmd.String("syntax")
	if name == "" {
		name = "compact"
	}
	if _, ok := syntax.Builtin(name); !ok {
		return nil, fmt.Errorf("unknown syntax %q (have %s)", name, strings.Join(syntax.Names(), ", "))
	}
	esc := cmd.String("escape")
	if esc == "" {
		esc = "$"
	}
	opts := []jsondelta.Option{
		jsondelta.WithSyntax(name),
		jsondelta.WithEscape(esc),
	}
	if cmd.Bool("yaml") {
		opts = append(opts,
			jsondelta.WithLoader(codec.YAML{}),
			jsondelta.WithDumper(codec.YAML{}))
	} else {
		opts = append(opts, jsondelta.WithDumper(codec.JSON{Indent: indentStr(cmd)}))
	}
	return jsondelta.New(opts...), nil
}

func indentStr(cmd *cli.Command) string {
	n := int(cmd.Int("indent"))
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func cmdLoader(cmd *cli.Command) codec.Loader {
	if cmd.Bool("yaml") {
		return codec.YAML{}
	}
	return codec.JSON{}
}

func cmdDumper(cmd *cli.Command) codec.Dumper {
	if cmd.Bool("yaml") {
		return codec.YAML{}
	}
	return codec.JSON{Indent: indentStr(cmd)}
}

// getObjFile loads and unmarshals one document for value-level work.
func getObjFile(d *jsondelta.Differ, cmd *cli.Command, path string) (*value.Value, error) {
	raw, err := readObjFile(path)
	if err != nil {
		return nil, err
	}
	v, err := cmdLoader(cmd).Load(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return d.Unmarshal(v), nil
}
