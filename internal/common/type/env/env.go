// Released under an MIT license. See LICENSE.

// Package env provides lis's environment type.
package env

import (
	"sync"

	"github.com/michaelmacinnis/lis/internal/common/failure"
	"github.com/michaelmacinnis/lis/internal/common/interface/cell"
	"github.com/michaelmacinnis/lis/internal/common/interface/scope"
	"github.com/michaelmacinnis/lis/internal/common/struct/hash"
)

const name = "environment"

// T (env) maps names to values and may be linked to a parent scope.
//
// Builtins are a read-only layer shared by every env created with the same
// table. A lookup checks the local names, then the builtins, then the parent,
// so each env behaves as if the builtins had been defined in it.
type T struct {
	sync.RWMutex
	builtins *hash.T
	local    *hash.T
	parent   scope.I
}

type env = T

// New creates a new env with the parent scope parent (which may be nil).
func New(parent scope.I, builtins *hash.T) scope.I {
	return &env{
		builtins: builtins,
		local:    hash.New(),
		parent:   parent,
	}
}

// Clone creates a copy of the env e that shares e's builtins and parent.
func (e *env) Clone() scope.I {
	return &env{
		builtins: e.builtins,
		local:    e.local.Copy(),
		parent:   e.Parent(),
	}
}

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	return Is(c) && e == To(c)
}

// Get retrieves the value associated with the name k in the env e or its
// ancestors. It returns nil if k is not bound.
func (e *env) Get(k string) cell.I {
	if e == nil {
		return nil
	}

	if v := e.local.Get(k); v != nil {
		return v
	}

	if v := e.builtins.Get(k); v != nil {
		return v
	}

	if p := e.Parent(); p != nil {
		return p.Get(k)
	}

	return nil
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// Names returns the names bound locally in the env e, in sorted order.
func (e *env) Names() []string {
	return e.local.Keys()
}

// Parent returns the parent scope or nil.
func (e *env) Parent() scope.I {
	e.RLock()
	defer e.RUnlock()

	return e.parent
}

// Put associates the name k with the cell v in the env e.
// Ancestors of e are never affected.
func (e *env) Put(k string, v cell.I) {
	e.local.Set(k, v)
}

// SetParent links the env e to the parent scope p.
// A parent can only be set once.
func (e *env) SetParent(p scope.I) error {
	e.Lock()
	defer e.Unlock()

	if e.parent != nil {
		return failure.ParentAlreadySet
	}

	e.parent = p

	return nil
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a cell.
	_ = cell.I(&t)

	// The env type is a scope.
	_ = scope.I(&t)
}
