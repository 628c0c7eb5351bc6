// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all lis values.
package cell

// I (cell) is the basic unit of storage in lis.
type I interface {
	Equal(c I) bool
	Name() string
}
