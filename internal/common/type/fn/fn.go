// Released under an MIT license. See LICENSE.

// Package fn provides lis's function types.
//
// There are exactly three kinds of function: natives, closures and lambdas.
// The set is closed; the evaluator dispatches on the concrete type.
package fn

import (
	"github.com/michaelmacinnis/lis/internal/common/interface/cell"
	"github.com/michaelmacinnis/lis/internal/common/interface/literal"
	"github.com/michaelmacinnis/lis/internal/common/interface/scope"
	"github.com/michaelmacinnis/lis/internal/common/type/expr"
)

// Proc is the signature shared by native and closure functions.
// It receives the arguments and the caller's environment.
type Proc func(args *expr.T, e scope.I) (cell.I, error)

// I (fn) is implemented only by *Native, *Closure and *Lambda.
type I interface {
	cell.I

	function()
}

// Operand evaluation modes for natives.
const (
	All  = -1 // Every operand is passed unevaluated.
	None = 0  // Every operand is evaluated before the call.
)

// Quoted returns the number of leading operands that the function c takes
// unevaluated. A negative count means all of them.
func Quoted(c cell.I) int {
	if n, ok := c.(*Native); ok {
		return n.quoted
	}

	return None
}

// Routine underlies the native and closure types.
type Routine struct {
	name   string
	proc   Proc
	quoted int
}

// Call invokes the routine with args in the environment e.
func (r *Routine) Call(args *expr.T, e scope.I) (cell.I, error) {
	return r.proc(args, e)
}

// Literal returns the literal representation of the routine r.
func (r *Routine) Literal() string {
	return "<builtin " + r.name + ">"
}

// String returns the routine r's name.
func (r *Routine) String() string {
	return r.name
}

// Native is a function implemented by a fixed Go function.
type Native struct {
	Routine
}

// NewNative creates a native function that receives its first quoted
// operands unevaluated. Special forms use this to receive names and bodies.
func NewNative(name string, proc Proc, quoted int) *Native {
	return &Native{Routine{name: name, proc: proc, quoted: quoted}}
}

// Equal returns true if the cell c is the same native as n.
func (n *Native) Equal(c cell.I) bool {
	p, ok := c.(*Native)

	return ok && p == n
}

// Name returns the name of the native type.
func (*Native) Name() string {
	return "native"
}

func (*Native) function() {}

// Closure is a function implemented by a Go closure over captured state.
type Closure struct {
	Routine
}

// NewClosure creates a closure function with the display name name.
func NewClosure(name string, proc Proc) *Closure {
	return &Closure{Routine{name: name, proc: proc}}
}

// Equal returns true if the cell c is the same closure as a.
// Closures have no structural equality; identity is the best available.
func (a *Closure) Equal(c cell.I) bool {
	p, ok := c.(*Closure)

	return ok && p == a
}

// Name returns the name of the closure type.
func (*Closure) Name() string {
	return "closure"
}

func (*Closure) function() {}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var n Native

	_ = I(&n)
	_ = literal.I(&n)

	var c Closure

	_ = I(&c)
	_ = literal.I(&c)

	var l Lambda

	_ = I(&l)
	_ = literal.I(&l)
}
