package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	root := &cli.Command{
		Name:  "jsondelta",
		Usage: "structural diff and patch for JSON and YAML documents",
		Commands: []*cli.Command{
			diffCommand(),
			patchCommand(),
			unpatchCommand(),
			similarityCommand(),
		},
	}
	if err := root.Run(context.Background(), os.Args); err != nil {
		code := 2
		if ec, ok := err.(cli.ExitCoder); ok {
			code = ec.ExitCode()
		}
		if msg := err.Error(); msg != "" {
			fmt.Fprintf(os.Stderr, "jsondelta: %s\n", msg)
		}
		return code
	}
	return 0
}
