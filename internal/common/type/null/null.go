// Released under an MIT license. See LICENSE.

// Package null provides lis's nil value.
package null

import (
	"github.com/michaelmacinnis/lis/internal/common/interface/cell"
	"github.com/michaelmacinnis/lis/internal/common/interface/literal"
)

const name = "nil"

// T (null) is the type of the empty or void result.
type T struct{}

type null = T

// Nil is the only null value.
var Nil cell.I = &null{} //nolint:gochecknoglobals

// Equal returns true if c is Nil.
func (n *null) Equal(c cell.I) bool {
	return Is(c)
}

// Literal returns the literal representation of Nil.
func (n *null) Literal() string {
	return "()"
}

// Name returns the type name for Nil.
func (n *null) Name() string {
	return name
}

// Is returns true if c is Nil.
func Is(c cell.I) bool {
	_, ok := c.(*null)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t null

	// The null type is a cell.
	_ = cell.I(&t)

	// The null type has a literal representation.
	_ = literal.I(&t)
}
