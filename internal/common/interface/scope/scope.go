// Released under an MIT license. See LICENSE.

// Package scope defines the interface for lis environments.
package scope

import (
	"github.com/michaelmacinnis/lis/internal/common/interface/cell"
)

// I (scope) is a table of names that may be linked to a parent scope.
type I interface {
	cell.I

	Clone() I
	Get(k string) cell.I
	Names() []string
	Parent() I
	Put(k string, v cell.I)
	SetParent(p I) error
}
