// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lis/internal/common/failure"
	"github.com/michaelmacinnis/lis/internal/common/interface/cell"
	"github.com/michaelmacinnis/lis/internal/common/interface/scope"
	"github.com/michaelmacinnis/lis/internal/common/type/expr"
	"github.com/michaelmacinnis/lis/internal/common/type/fn"
	"github.com/michaelmacinnis/lis/internal/common/type/null"
	"github.com/michaelmacinnis/lis/internal/common/type/quoted"
	"github.com/michaelmacinnis/lis/internal/common/validate"
)

// lambda builds an unapplied lambda from a parameter list and a body.
// When more than two operands are passed, the last two are used.
func lambda(args *expr.T, _ scope.I) (cell.I, error) {
	if _, _, err := validate.Variadic("lambda", args, 2, 2); err != nil {
		return nil, err
	}

	n := args.Len()

	params, err := validate.Symbols("lambda parameters", unquote(args.Index(n-2)))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(params))
	for _, p := range params {
		if seen[p.String()] {
			return nil, failure.Wrap(failure.DuplicateParam, p.String())
		}

		seen[p.String()] = true
	}

	body := unquote(args.Index(n - 1))
	if !expr.Is(body) {
		return nil, failure.Wrap(failure.NotAnExpression, "lambda body")
	}

	return fn.NewLambda(params, expr.To(body), nil), nil
}

// setq binds each name in its first operand to the corresponding value in
// the caller's environment.
func setq(args *expr.T, e scope.I) (cell.I, error) {
	if _, _, err := validate.Variadic("setq", args, 2, 2); err != nil {
		return nil, err
	}

	names, err := validate.Symbols("setq variables", unquote(args.Head()))
	if err != nil {
		return nil, err
	}

	values := args.Tail()
	if len(names) != values.Len() {
		return nil, failure.Wrap(
			failure.WrongArgCount,
			"setq has "+validate.Count(len(names), "variable", "s")+
				" and "+validate.Count(values.Len(), "value", "s"),
		)
	}

	for i, k := range names {
		e.Put(k.String(), values.Index(i))
	}

	return null.Nil, nil
}

// unquote strips the quote from a quoted operand so that forms accept
// both (x y) and '(x y).
func unquote(c cell.I) cell.I {
	if quoted.Is(c) {
		return quoted.To(c).Inner()
	}

	return c
}
