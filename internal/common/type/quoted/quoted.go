// Released under an MIT license. See LICENSE.

// Package quoted provides lis's quoted expression type.
package quoted

import (
	"github.com/michaelmacinnis/lis/internal/common/interface/cell"
	"github.com/michaelmacinnis/lis/internal/common/interface/literal"
	"github.com/michaelmacinnis/lis/internal/common/type/expr"
)

const name = "quoted"

// T (quoted) defers the evaluation of an expression.
type T struct {
	inner *expr.T
}

type quoted = T

// New creates a new quoted expression.
func New(inner *expr.T) *quoted {
	return &quoted{inner: inner}
}

// Equal returns true if c is a quoted expression wrapping an equal expression.
func (q *quoted) Equal(c cell.I) bool {
	return Is(c) && q.inner.Equal(To(c).inner)
}

// Inner returns the expression wrapped by the quoted expression q.
func (q *quoted) Inner() *expr.T {
	return q.inner
}

// Literal returns the literal representation of the quoted expression q.
func (q *quoted) Literal() string {
	return "'" + q.inner.Literal()
}

// Name returns the type name for the quoted expression q.
func (q *quoted) Name() string {
	return name
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t quoted

	// The quoted type is a cell.
	_ = cell.I(&t)

	// The quoted type has a literal representation.
	_ = literal.I(&t)
}
