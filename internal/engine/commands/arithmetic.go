// Released under an MIT license. See LICENSE.

package commands

import (
	"math/big"

	"github.com/michaelmacinnis/lis/internal/common/failure"
	"github.com/michaelmacinnis/lis/internal/common/interface/cell"
	"github.com/michaelmacinnis/lis/internal/common/interface/integer"
	"github.com/michaelmacinnis/lis/internal/common/interface/scope"
	"github.com/michaelmacinnis/lis/internal/common/type/expr"
	"github.com/michaelmacinnis/lis/internal/common/type/fn"
	"github.com/michaelmacinnis/lis/internal/common/type/num"
)

// An operation sets z to the result of combining x and y.
type operation func(z, x, y *big.Int) error

// reduce folds op over its arguments starting from seed:
// op(op(op(seed, a0), a1), ...). The seed is never taken from the arguments.
func reduce(seed int64, op operation) fn.Proc {
	return func(args *expr.T, _ scope.I) (cell.I, error) {
		acc := big.NewInt(seed)

		for i := 0; i < args.Len(); i++ {
			v, err := integer.Value(args.Index(i))
			if err != nil {
				return nil, err
			}

			err = op(acc, acc, v)
			if err != nil {
				return nil, err
			}
		}

		return num.Big(acc), nil
	}
}

func add(z, x, y *big.Int) error {
	z.Add(x, y)

	return nil
}

func div(z, x, y *big.Int) error {
	if y.Sign() == 0 {
		return failure.DivisionByZero
	}

	z.Quo(x, y)

	return nil
}

func mul(z, x, y *big.Int) error {
	z.Mul(x, y)

	return nil
}

func sub(z, x, y *big.Int) error {
	z.Sub(x, y)

	return nil
}
