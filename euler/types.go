package euler

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrNotOpen is returned for a decomposition with articulation points.
	ErrNotOpen = errors.New("euler: ear decomposition is not open")

	// ErrNoEars is returned for a decomposition without ears.
	ErrNoEars = errors.New("euler: ear decomposition is empty")

	// ErrNoCycle is returned when neither the ear construction nor the
	// fallback searches produce a Hamiltonian cycle of the square.
	ErrNoCycle = errors.New("euler: no hamiltonian cycle found")

	// ErrInvariant wraps every internal consistency failure. It is only
	// ever used as a panic value.
	ErrInvariant = errors.New("euler: invariant violated")
)

// NodeSet is a set of node indices.
type NodeSet map[int]struct{}

// Contains reports whether v is in the set.
func (s NodeSet) Contains(v int) bool {
	_, ok := s[v]
	return ok
}

// Sorted returns the members in ascending order.
func (s NodeSet) Sorted() []int { return slices.Sorted(maps.Keys(s)) }

// invariant panics with a message wrapping ErrInvariant.
func invariant(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{ErrInvariant}, args...)...))
}
