// Released under an MIT license. See LICENSE.

// Package hash provides lis's name to value mapping type.
package hash

import (
	"sort"
	"sync"

	"github.com/michaelmacinnis/lis/internal/common/interface/cell"
)

// T (hash) maps names to values.
type T struct {
	sync.RWMutex
	m map[string]cell.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]cell.I{}}
}

// Copy creates a new hash with the same associations as h.
// Values are immutable so they are shared, not copied.
func (h *hash) Copy() *hash {
	if h == nil {
		return nil
	}

	h.RLock()
	defer h.RUnlock()

	fresh := &hash{m: make(map[string]cell.I, len(h.m))}
	for k, v := range h.m {
		fresh.m[k] = v
	}

	return fresh
}

// Get retrieves the value associated with the name k in the hash h.
func (h *hash) Get(k string) cell.I {
	if h == nil {
		return nil
	}

	h.RLock()
	defer h.RUnlock()

	return h.m[k]
}

// Keys returns the names in the hash h in sorted order.
func (h *hash) Keys() []string {
	if h == nil {
		return nil
	}

	h.RLock()
	defer h.RUnlock()

	keys := make([]string, 0, len(h.m))
	for k := range h.m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Set associates the name k with the cell v in the hash h.
func (h *hash) Set(k string, v cell.I) {
	h.Lock()
	defer h.Unlock()

	h.m[k] = v
}
