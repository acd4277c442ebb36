// Package main is the entry point for jsonconsole.
//
// jsonconsole keeps a list of employees in a single JSON file and exposes
// add, update, get, delete and list commands. Configuration is read from CLI
// flags, JSONCONSOLE_* environment variables and .jsonconsole.json.
package main

import (
	"os"
	"strings"

	"github.com/filippov-code/jsonconsole/internal/cli"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func main() {
	environ := os.Environ()
	env := make(map[string]string, len(environ))
	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}

	fd := os.Stderr.Fd()
	color := (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) && env["NO_COLOR"] == ""

	os.Exit(cli.Run(colorable.NewColorableStdout(), colorable.NewColorableStderr(), color, os.Args, env))
}
