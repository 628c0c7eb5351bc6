// Released under an MIT license. See LICENSE.

// Package expr provides lis's expression (list) type.
package expr

import (
	"strings"

	"github.com/michaelmacinnis/lis/internal/common/interface/cell"
	"github.com/michaelmacinnis/lis/internal/common/interface/literal"
)

const name = "expression"

// T (expr) is an ordered sequence of cells. It is never modified once created.
type T struct {
	elements []cell.I
}

type expr = T

// New creates a new expr composed of all of the elements in elements.
func New(elements ...cell.I) *expr {
	e := make([]cell.I, len(elements))
	copy(e, elements)

	return &expr{elements: e}
}

// Equal returns true if c is an expr with elements that are equal to e's.
func (e *expr) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	o := To(c)
	if len(e.elements) != len(o.elements) {
		return false
	}

	for i, v := range e.elements {
		if !v.Equal(o.elements[i]) {
			return false
		}
	}

	return true
}

// Literal returns the literal representation of the expr e.
func (e *expr) Literal() string {
	var b strings.Builder

	b.WriteByte('(')

	for i, v := range e.elements {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(literal.String(v))
	}

	b.WriteByte(')')

	return b.String()
}

// Name returns the name for an expr type.
func (e *expr) Name() string {
	return name
}

// String returns the text representation of the expr e.
func (e *expr) String() string {
	return e.Literal()
}

// Methods specific to expr.

// Elements returns a copy of the elements of the expr e.
func (e *expr) Elements() []cell.I {
	c := make([]cell.I, len(e.elements))
	copy(c, e.elements)

	return c
}

// Head returns the first element of the expr e or nil if e is empty.
func (e *expr) Head() cell.I {
	if len(e.elements) == 0 {
		return nil
	}

	return e.elements[0]
}

// Index returns the element at position i in the expr e.
// An out of range index will cause a panic.
func (e *expr) Index(i int) cell.I {
	return e.elements[i]
}

// Len returns the number of elements in the expr e.
func (e *expr) Len() int {
	return len(e.elements)
}

// Tail returns an expr of all but the first element of the expr e.
// The tail shares storage with e.
func (e *expr) Tail() *expr {
	if len(e.elements) == 0 {
		return e
	}

	return &expr{elements: e.elements[1:len(e.elements):len(e.elements)]}
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t expr

	// The expr type is a cell.
	_ = cell.I(&t)

	// The expr type has a literal representation.
	_ = literal.I(&t)
}
