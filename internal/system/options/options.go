// Released under an MIT license. See LICENSE.

// Package options parses the lis command line.
package options

import (
	"os"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "lis 0.1.0"

const usage = `lis

Usage:
  lis [--depth=N] SCRIPT
  lis [--depth=N] -c EXPRESSION
  lis [--depth=N] [-i]
  lis -h
  lis -v

Arguments:
  SCRIPT  Path to a lis script.

Options:
  -c, --command=EXPRESSION  Evaluate the specified expression.
  -d, --depth=N             Limit nested evaluations to N [default: 0].
  -i, --interactive         Invert interactive mode.
  -h, --help                Display this help.
  -v, --version             Print lis version.

If lis's stdin is a TTY, and lis was invoked with no script or command,
interactive features (line editing, history) are enabled. Otherwise, lines
are read from stdin without prompting.
`

// T (options) holds the parsed command line.
type T struct {
	Command     string
	Depth       int
	Interactive bool
	Script      string
}

// Parse parses the process's command line.
func Parse() (*T, error) {
	return ParseArgs(os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
}

// ParseArgs parses argv. Terminal indicates whether stdin is a terminal.
func ParseArgs(argv []string, terminal bool) (*T, error) {
	parser := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	opts, err := parser.ParseArgs(usage, argv, Version)
	if err != nil {
		return nil, err
	}

	o := &T{}

	o.Command, _ = opts.String("--command")
	o.Script, _ = opts.String("SCRIPT")

	depth, _ := opts.String("--depth")

	o.Depth, err = strconv.Atoi(depth)
	if err != nil {
		return nil, err
	}

	if o.Command == "" && o.Script == "" {
		o.Interactive = terminal
	}

	invert, _ := opts.Bool("--interactive")
	o.Interactive = o.Interactive != invert

	return o, nil
}
