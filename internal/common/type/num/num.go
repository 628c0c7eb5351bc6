// Released under an MIT license. See LICENSE.

// Package num provides lis's arbitrary precision integer type.
package num

import (
	"math/big"

	"github.com/michaelmacinnis/lis/internal/common/interface/cell"
	"github.com/michaelmacinnis/lis/internal/common/interface/integer"
	"github.com/michaelmacinnis/lis/internal/common/interface/literal"
)

const name = "number"

// T (num) wraps Go's big.Int type.
type T big.Int

type num = T

// New creates a new num cell from a string of decimal digits.
func New(s string) (cell.I, error) {
	return Num(s)
}

// Num creates a new num from a string of decimal digits.
func Num(s string) (*num, error) {
	v := &big.Int{}

	if _, ok := v.SetString(s, 10); !ok {
		return nil, &Error{Text: s}
	}

	return Big(v), nil
}

// Int creates a num from the integer i.
func Int(i int64) *num {
	return Big(big.NewInt(i))
}

// Big wraps the *big.Int i as a num. The caller must not modify i afterwards.
func Big(i *big.Int) *num {
	return (*num)(i)
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Int().Cmp(To(c).Int()) == 0
}

// Int returns the value of the num n as a *big.Int.
func (n *num) Int() *big.Int {
	return (*big.Int)(n)
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the text of the num n.
func (n *num) String() string {
	return n.Int().String()
}

// Error reports text that is not a valid integer.
type Error struct {
	Text string
}

func (e *Error) Error() string {
	return "'" + e.Text + "' is not a valid integer"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type is an integer.
	_ = integer.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)
}
