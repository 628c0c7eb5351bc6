// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to builtins.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/lis/internal/common/failure"
	"github.com/michaelmacinnis/lis/internal/common/interface/cell"
	"github.com/michaelmacinnis/lis/internal/common/type/expr"
	"github.com/michaelmacinnis/lis/internal/common/type/sym"
)

// Variadic returns the first min to max arguments and the rest.
// It fails if fewer than min arguments were passed.
func Variadic(label string, actual *expr.T, min, max int) ([]cell.I, *expr.T, error) {
	expected := make([]cell.I, 0, max)

	for i := 0; i < max; i++ {
		if actual.Len() == 0 {
			if i < min {
				return nil, nil, mismatch(label, Count(min, "argument", "s"), i)
			}

			break
		}

		expected = append(expected, actual.Head())

		actual = actual.Tail()
	}

	return expected, actual, nil
}

// Count returns n followed by label, pluralized with p if n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

// Symbols returns the elements of the expression c as symbols.
func Symbols(label string, c cell.I) ([]*sym.T, error) {
	if !expr.Is(c) {
		return nil, failure.Wrap(failure.NotAnExpression, label)
	}

	e := expr.To(c)

	symbols := make([]*sym.T, e.Len())

	for i := range symbols {
		v := e.Index(i)
		if !sym.Is(v) {
			return nil, failure.Wrap(failure.NotASymbol, label)
		}

		symbols[i] = sym.To(v)
	}

	return symbols, nil
}

func mismatch(label, expected string, passed int) error {
	return failure.Wrap(
		failure.WrongArgCount,
		fmt.Sprintf("%s expected %s, passed %d", label, expected, passed),
	)
}
