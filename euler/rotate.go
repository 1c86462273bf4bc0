package euler

import (
	"math/rand"
	"slices"

	"github.com/katalvlaran/btsp/graph"
)

// rotate tries a few fixed seeds, each with a base budget plus a share per
// node.
const (
	rotationRestarts = 4
	rotateBase       = 1 << 16
	rotatePerNode    = 64
)

// rotate searches sq for a Hamiltonian cycle by Pósa rotation-extension.
//
// A path grows from node 0 towards the unvisited neighbour of its end with
// the fewest unvisited neighbours of its own (ties broken at random). When
// the end has no unvisited neighbour, or the path is complete but does not
// close, a random neighbour v of the end is chosen and the path suffix
// after v is reversed, giving a new end. Each restart gets a fixed seed and
// a linear step budget, so results are reproducible and a miss stays cheap.
//
// It reports false when every restart runs out of budget.
func rotate(sq graph.Traversable) ([]int, bool) {
	n := sq.NumberOfNodes()
	if n == 0 {
		return nil, false
	}
	adj := make([][]int, n)
	for u := range adj {
		adj[u] = slices.Collect(sq.Neighbours(u))
	}
	budget := rotateBase + rotatePerNode*n

	for seed := int64(1); seed <= rotationRestarts; seed++ {
		if cycle, ok := rotateOnce(adj, budget, rand.New(rand.NewSource(seed))); ok {
			return cycle, true
		}
	}
	return nil, false
}

func rotateOnce(adj [][]int, budget int, rng *rand.Rand) ([]int, bool) {
	n := len(adj)
	path := make([]int, 1, n)
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}
	pos[0] = 0

	free := func(v int) int {
		var c int
		for _, w := range adj[v] {
			if pos[w] < 0 {
				c++
			}
		}
		return c
	}

	for range budget {
		end := path[len(path)-1]
		if len(path) == n {
			if slices.Contains(adj[end], path[0]) {
				return path, true
			}
		} else {
			// 1) Extend.
			next, fewest, tie := -1, 0, 0.0
			for _, v := range adj[end] {
				if pos[v] >= 0 {
					continue
				}
				f, r := free(v), rng.Float64()
				if next < 0 || f < fewest || (f == fewest && r < tie) {
					next, fewest, tie = v, f, r
				}
			}
			if next >= 0 {
				pos[next] = len(path)
				path = append(path, next)
				continue
			}
		}

		// 2) Rotate.
		var pivots []int
		for _, v := range adj[end] {
			if len(path) < 2 || v != path[len(path)-2] {
				pivots = append(pivots, v)
			}
		}
		if len(pivots) == 0 {
			return nil, false
		}
		i := pos[pivots[rng.Intn(len(pivots))]]
		slices.Reverse(path[i+1:])
		for j := i + 1; j < len(path); j++ {
			pos[path[j]] = j
		}
	}
	return nil, false
}
