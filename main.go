/*
Lis is a small Lisp. It has arbitrary precision integers, symbols, quoted
expressions and curried lambdas:

    (+ 1 2 3)
    (setq (x y) 5 7)
    (* x y)
    ((\ (a b) (- a b)) 10 4)
    (setq (inc) ((\ (a b) (+ a b)) 1))
    (inc 41)

Lis is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/michaelmacinnis/lis/internal/engine"
	"github.com/michaelmacinnis/lis/internal/system/options"
	"github.com/michaelmacinnis/lis/internal/ui"
)

func main() {
	opts, err := options.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	if !run(opts) {
		os.Exit(1)
	}
}

func run(opts *options.T) bool {
	e := engine.New(opts.Depth)

	switch {
	case opts.Command != "":
		return ui.Batch("-c", strings.NewReader(opts.Command), os.Stdout, os.Stderr, e)

	case opts.Script != "":
		f, err := os.Open(opts.Script)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())

			return false
		}
		defer f.Close()

		return ui.Batch(opts.Script, f, os.Stdout, os.Stderr, e)

	case opts.Interactive:
		if err := ui.Run(e); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())

			return false
		}

		return true
	}

	return ui.Batch("stdin", os.Stdin, os.Stdout, os.Stderr, e)
}
