package graph

import (
	"fmt"
	"math"
)

// Edge is an ordered pair of node indices. Equality is positional:
// Edge{1, 2} != Edge{2, 1}. Undirected call sites normalize with Normalize.
type Edge struct {
	U, V int
}

// Reverse returns (V, U).
func (e Edge) Reverse() Edge { return Edge{U: e.V, V: e.U} }

// Invert swaps the endpoints in place.
func (e *Edge) Invert() { e.U, e.V = e.V, e.U }

// Normalize returns the edge with the smaller index first.
func (e Edge) Normalize() Edge {
	if e.U > e.V {
		return e.Reverse()
	}
	return e
}

// String implements fmt.Stringer.
func (e Edge) String() string { return fmt.Sprintf("(%d, %d)", e.U, e.V) }

// EdgeWeight is the scalar stored in an AdjacencyMatrixGraph.
//
// Together with Add and Mul it forms the (min, +) semiring:
// Add(a, b) = min(a, b) and Mul(a, b) = a + b. Squaring a matrix under
// this semiring yields the cheapest two-hop connection between each pair.
type EdgeWeight float64

// Add is the idempotent semiring addition (minimum).
func (w EdgeWeight) Add(o EdgeWeight) EdgeWeight {
	return EdgeWeight(math.Min(float64(w), float64(o)))
}

// Mul is the semiring multiplication (plain sum).
func (w EdgeWeight) Mul(o EdgeWeight) EdgeWeight { return w + o }

// Cost returns the plain float64 value.
func (w EdgeWeight) Cost() float64 { return float64(w) }
