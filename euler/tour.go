package euler

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/btsp/ear"
)

// ErrNotPermutation is returned by ValidatePermutation.
var ErrNotPermutation = errors.New("euler: sequence is not a permutation")

// HamiltonCycle computes a Hamiltonian cycle in the square of the graph
// covered by the open decomposition d. The cycle is returned without
// repeating its first node.
//
// A decomposition with a single ear is already a Hamiltonian cycle of the
// graph itself and is returned directly. Otherwise the ears are oriented,
// node cuts contracted and G- toured. The cuts are spliced back inside
// longTour, which reports unplaceable cuts instead of panicking; the
// exported InsertNodeCuts is not part of this pipeline. The long tour is
// then shortcut. When the shortcut still repeats a node, three fallbacks
// run on the square in turn, each with a bounded step budget:
//
//   - reselect: a keep/skip search for one visit per node of the long tour;
//   - repair: 2-opt moves on the first visits of the shortcut walk until
//     every consecutive pair is adjacent in the square;
//   - rotate: Pósa rotation-extension from scratch.
//
// Errors: ErrNoEars, ErrNotOpen, ErrNoCycle.
func HamiltonCycle(d ear.Decomposition) ([]int, error) {
	if len(d.Ears) == 0 {
		return nil, ErrNoEars
	}
	if !d.Open() {
		return nil, fmt.Errorf("%w: articulation points %v", ErrNotOpen, d.ArticulationPoints)
	}

	// 1) Single ear: the cycle itself, without the repeated root.
	if len(d.Ears) == 1 {
		e := d.Ears[0]
		cycle := append([]int(nil), e[:len(e)-1]...)
		if err := ValidatePermutation(cycle, d.Nodes); err != nil {
			invariant("single ear %v: %v", e, err)
		}
		return cycle, nil
	}

	// 2) Orient ears and double edges.
	pair, err := NewGraphPair(d)
	if err != nil {
		return nil, err
	}

	// 3) Contract node cuts, tour G-, splice the cuts back.
	cuts := ReduceToGminus(pair.Digraph, pair.Graph)
	long, toured := longTour(pair.Graph.AdjacencyList(), cuts, pair.Digraph)

	// 4) Skip repeated visits.
	start := slices.Concat(d.Ears...)
	if toured {
		cycle := Shortcut(long, pair.Digraph.Clone())
		if ValidatePermutation(cycle, d.Nodes) == nil {
			return cycle, nil
		}
		start = cycle
	}

	// 5) Fallbacks on the square.
	g, err := ear.ToGraph(d)
	if err != nil {
		return nil, fmt.Errorf("euler: %w", err)
	}
	sq := g.Square()
	if toured {
		if cycle, ok := reselect(long, d.Nodes, sq); ok {
			return cycle, nil
		}
	}
	if cycle, ok := repair(firstVisits(start, d.Nodes), sq); ok {
		return cycle, nil
	}
	if cycle, ok := rotate(sq); ok {
		return cycle, nil
	}

	return nil, fmt.Errorf("%w: %d nodes, %d ears", ErrNoCycle, d.Nodes, len(d.Ears))
}

// ValidatePermutation checks that perm is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrNotPermutation, len(perm), n)
	}
	seen := make([]bool, n)
	for i, v := range perm {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: position %d holds %d", ErrNotPermutation, i, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: node %d repeated", ErrNotPermutation, v)
		}
		seen[v] = true
	}
	return nil
}
