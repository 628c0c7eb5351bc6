// Released under an MIT license. See LICENSE.

// Package commands provides the builtins registered in every lis environment.
package commands

import (
	"github.com/michaelmacinnis/lis/internal/common/interface/cell"
	"github.com/michaelmacinnis/lis/internal/common/struct/hash"
	"github.com/michaelmacinnis/lis/internal/common/type/fn"
)

//nolint:gochecknoglobals
var table = Builtins()

// Builtins returns a new table of every builtin.
func Builtins() *hash.T {
	h := hash.New()

	for k, v := range Functions() {
		h.Set(k, v)
	}

	for k, v := range Forms() {
		h.Set(k, v)
	}

	return h
}

// Forms returns the special forms. These take some operands unevaluated.
func Forms() map[string]cell.I {
	l := fn.NewNative("lambda", lambda, fn.All)

	return map[string]cell.I{
		"\\":     l,
		"lambda": l,
		"setq":   fn.NewNative("setq", setq, 1),
	}
}

// Functions returns the arithmetic reducers.
func Functions() map[string]cell.I {
	return map[string]cell.I{
		"*": fn.NewClosure("*", reduce(1, mul)),
		"+": fn.NewClosure("+", reduce(0, add)),
		"-": fn.NewClosure("-", reduce(0, sub)),
		"/": fn.NewClosure("/", reduce(1, div)),
	}
}

// Table returns the shared, read-only table of builtins.
func Table() *hash.T {
	return table
}
