// Released under an MIT license. See LICENSE.

// Package integer defines the interface for lis's numeric types.
package integer

import (
	"math/big"

	"github.com/michaelmacinnis/lis/internal/common/failure"
	"github.com/michaelmacinnis/lis/internal/common/interface/cell"
	"github.com/michaelmacinnis/lis/internal/common/interface/literal"
)

// I (integer) is anything that can be treated as an integer in lis.
type I interface {
	Int() *big.Int
}

type integer = I

// Value returns the *big.Int value for a cell, if possible.
// The returned value must not be modified.
func Value(c cell.I) (*big.Int, error) {
	i, ok := c.(integer)
	if !ok {
		// Not all cell types can be treated as numbers.
		return nil, failure.Wrap(failure.NotANumber, literal.String(c))
	}

	return i.Int(), nil
}
