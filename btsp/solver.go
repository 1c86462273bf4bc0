package btsp

import (
	"github.com/katalvlaran/btsp/graph"
)

// Solver produces bottleneck tours. Approximation and exact.Solver
// implement it, so callers can swap one for the other.
type Solver interface {
	// SolveCycle returns a Hamiltonian cycle through every point of e.
	SolveCycle(e *graph.Euclidean) (Result, error)
	// SolvePath returns a Hamiltonian path from s to t.
	SolvePath(e *graph.Euclidean, s, t int) (Result, error)
}

// Approximation is the 2-approximation as a Solver. Options apply to
// every solve.
type Approximation struct {
	Options []Option
}

// NewApproximation returns an Approximation with the given options.
func NewApproximation(opts ...Option) *Approximation {
	return &Approximation{Options: opts}
}

// SolveCycle calls ApproximateBTSP.
func (a *Approximation) SolveCycle(e *graph.Euclidean) (Result, error) {
	return ApproximateBTSP(e, a.Options...)
}

// SolvePath calls ApproximateBTSPP.
func (a *Approximation) SolvePath(e *graph.Euclidean, s, t int) (Result, error) {
	return ApproximateBTSPP(e, s, t, a.Options...)
}

var _ Solver = (*Approximation)(nil)
