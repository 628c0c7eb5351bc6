// Released under an MIT license. See LICENSE.

package fn

import (
	"strings"

	"github.com/michaelmacinnis/lis/internal/common/interface/cell"
	"github.com/michaelmacinnis/lis/internal/common/interface/scope"
	"github.com/michaelmacinnis/lis/internal/common/type/expr"
	"github.com/michaelmacinnis/lis/internal/common/type/sym"
)

// Lambda is a user-defined function.
//
// A lambda without a captured scope is unapplied. Applying it to fewer
// arguments than it has parameters produces a partial lambda that captures
// the bindings made so far.
type Lambda struct {
	body   *expr.T
	params []*sym.T
	scope  scope.I
}

// NewLambda creates a lambda. The scope s is nil for an unapplied lambda.
func NewLambda(params []*sym.T, body *expr.T, s scope.I) *Lambda {
	p := make([]*sym.T, len(params))
	copy(p, params)

	return &Lambda{body: body, params: p, scope: s}
}

// Equal returns true if the cell c is the same lambda as l.
func (l *Lambda) Equal(c cell.I) bool {
	p, ok := c.(*Lambda)

	return ok && p == l
}

// Literal returns the literal representation of the lambda l.
func (l *Lambda) Literal() string {
	names := make([]string, len(l.params))
	for i, p := range l.params {
		names[i] = p.Literal()
	}

	return `(\ (` + strings.Join(names, " ") + ") " + l.body.Literal() + ")"
}

// Name returns the name of the lambda type.
func (*Lambda) Name() string {
	return "lambda"
}

func (*Lambda) function() {}

// Methods specific to lambda.

// Body returns the body of the lambda l.
func (l *Lambda) Body() *expr.T {
	return l.body
}

// Params returns a copy of the parameters the lambda l is still waiting for.
func (l *Lambda) Params() []*sym.T {
	p := make([]*sym.T, len(l.params))
	copy(p, l.params)

	return p
}

// Partial returns true if some of the lambda l's arguments have been supplied.
func (l *Lambda) Partial() bool {
	return l.scope != nil
}

// Scope returns the scope captured by a partial lambda or nil.
func (l *Lambda) Scope() scope.I {
	return l.scope
}
