// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed lis code.
package engine

import (
	"sort"

	"github.com/michaelmacinnis/lis/internal/common/failure"
	"github.com/michaelmacinnis/lis/internal/common/interface/cell"
	"github.com/michaelmacinnis/lis/internal/common/interface/literal"
	"github.com/michaelmacinnis/lis/internal/common/interface/scope"
	"github.com/michaelmacinnis/lis/internal/common/type/env"
	"github.com/michaelmacinnis/lis/internal/common/type/expr"
	"github.com/michaelmacinnis/lis/internal/common/type/fn"
	"github.com/michaelmacinnis/lis/internal/common/type/null"
	"github.com/michaelmacinnis/lis/internal/common/type/num"
	"github.com/michaelmacinnis/lis/internal/common/type/quoted"
	"github.com/michaelmacinnis/lis/internal/common/type/sym"
	"github.com/michaelmacinnis/lis/internal/engine/commands"
)

// DefaultDepth is the default limit on nested evaluations.
const DefaultDepth = 10000

// T (engine) is a facade in front of the machinery for evaluating lis code.
// It owns the root environment, so bindings persist across evaluations.
type T struct {
	depth int
	root  scope.I
}

// New creates a new T. A depth of zero or less selects DefaultDepth.
func New(depth int) *T {
	if depth <= 0 {
		depth = DefaultDepth
	}

	return &T{
		depth: depth,
		root:  NewEnv(nil),
	}
}

// Evaluate evaluates c in the root environment.
func (e *T) Evaluate(c cell.I) (cell.I, error) {
	m := &machine{limit: e.depth}

	return m.eval(c, e.root)
}

// Names returns every name visible in the root environment, in sorted order.
func (e *T) Names() []string {
	seen := map[string]bool{}

	for _, k := range commands.Table().Keys() {
		seen[k] = true
	}

	for _, k := range e.root.Names() {
		seen[k] = true
	}

	ks := make([]string, 0, len(seen))
	for k := range seen {
		ks = append(ks, k)
	}

	sort.Strings(ks)

	return ks
}

// Evaluate evaluates c in the environment s using the default depth limit.
func Evaluate(c cell.I, s scope.I) (cell.I, error) {
	m := &machine{limit: DefaultDepth}

	return m.eval(c, s)
}

// NewEnv creates an environment with every builtin visible in it.
func NewEnv(parent scope.I) scope.I {
	return env.New(parent, commands.Table())
}

// A machine holds the state of a single top-level evaluation.
type machine struct {
	depth int
	limit int
}

func (m *machine) eval(c cell.I, s scope.I) (cell.I, error) {
	m.depth++
	defer func() { m.depth-- }()

	if m.depth > m.limit {
		return nil, failure.DepthExceeded
	}

	switch t := c.(type) {
	case *num.T, *null.T:
		return c, nil
	case *sym.T:
		v := s.Get(t.String())
		if v == nil {
			return nil, failure.Wrap(failure.SymbolNotFound, t.String())
		}

		return v, nil
	case *quoted.T:
		return t.Inner(), nil
	case *expr.T:
		return m.list(t, s)
	case fn.I:
		return nil, failure.FunctionAsValue
	}

	return nil, failure.Errorf(failure.Eval, "cannot evaluate %s", c.Name())
}

// list evaluates the elements of x from left to right and applies the first
// to the rest. Operands a native asks for unevaluated are passed as is.
func (m *machine) list(x *expr.T, s scope.I) (cell.I, error) {
	n := x.Len()
	if n == 0 {
		return null.Nil, nil
	}

	head, err := m.eval(x.Head(), s)
	if err != nil {
		return nil, err
	}

	if n == 1 {
		return head, nil
	}

	unevaluated := fn.Quoted(head)

	args := make([]cell.I, n-1)
	for i := range args {
		v := x.Index(i + 1)

		if unevaluated < 0 || i < unevaluated {
			args[i] = v

			continue
		}

		args[i], err = m.eval(v, s)
		if err != nil {
			return nil, err
		}
	}

	return m.apply(head, expr.New(args...), s)
}

func (m *machine) apply(head cell.I, args *expr.T, s scope.I) (cell.I, error) {
	switch f := head.(type) {
	case *fn.Native:
		return f.Call(args, s)
	case *fn.Closure:
		return f.Call(args, s)
	case *fn.Lambda:
		return m.lambda(f, args, s)
	}

	return nil, failure.Wrap(failure.NotCallable, literal.String(head))
}

// lambda binds args to the parameters of f, last argument to last parameter.
// If parameters remain, the result is a partial lambda capturing the bindings.
// Otherwise the body is evaluated with the caller's environment s as parent.
func (m *machine) lambda(f *fn.Lambda, args *expr.T, s scope.I) (cell.I, error) {
	params := f.Params()
	if args.Len() > len(params) {
		return nil, failure.Wrap(failure.TooManyArguments, literal.String(f))
	}

	// The captured scope is copied so that a partial lambda can be reused.
	var w scope.I
	if captured := f.Scope(); captured != nil {
		w = captured.Clone()
	} else {
		w = NewEnv(nil)
	}

	for i := args.Len() - 1; i >= 0; i-- {
		last := len(params) - 1

		w.Put(params[last].String(), args.Index(i))

		params = params[:last]
	}

	if len(params) > 0 {
		return fn.NewLambda(params, f.Body(), w), nil
	}

	err := w.SetParent(s)
	if err != nil {
		return nil, err
	}

	return m.eval(f.Body(), w)
}
