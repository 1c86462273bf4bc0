package exact

import (
	"math"

	"github.com/katalvlaran/btsp/graph"
)

// table holds the bottleneck DP over subsets that contain start.
type table struct {
	n      int
	start  int
	dp     [][]float64
	parent [][]int
}

// fill runs the DP from start over every subset of the n nodes.
func fill(e *graph.Euclidean, start int) *table {
	n := e.NumberOfNodes()
	all := 1<<n - 1
	t := &table{n: n, start: start, dp: make([][]float64, all+1), parent: make([][]int, all+1)}
	for mask := range t.dp {
		t.dp[mask] = make([]float64, n)
		t.parent[mask] = make([]int, n)
		for j := range n {
			t.dp[mask][j] = math.Inf(1)
			t.parent[mask][j] = -1
		}
	}
	t.dp[1<<start][start] = 0

	for mask := 0; mask <= all; mask++ {
		if mask&(1<<start) == 0 {
			continue
		}
		for j := range n {
			if j == start || mask&(1<<j) == 0 {
				continue
			}
			prev := mask ^ 1<<j
			for k := range n {
				if prev&(1<<k) == 0 || math.IsInf(t.dp[prev][k], 1) {
					continue
				}
				if c := max(t.dp[prev][k], e.Weight(k, j)); c < t.dp[mask][j] {
					t.dp[mask][j] = c
					t.parent[mask][j] = k
				}
			}
		}
	}
	return t
}

// walk reconstructs the path from start that covers all nodes and ends
// at last.
func (t *table) walk(last int) []int {
	path := make([]int, t.n)
	mask := 1<<t.n - 1
	for i := t.n - 1; i > 0; i-- {
		path[i] = last
		p := t.parent[mask][last]
		mask ^= 1 << last
		last = p
	}
	path[0] = t.start
	return path
}

// BottleneckCycle returns an optimal bottleneck Hamiltonian cycle through
// the points of e, starting at node 0, and its bottleneck value.
func BottleneckCycle(e *graph.Euclidean) ([]int, float64) {
	t := fill(e, 0)
	all := 1<<t.n - 1

	best, last := math.Inf(1), -1
	for j := 1; j < t.n; j++ {
		if c := max(t.dp[all][j], e.Weight(j, 0)); c < best {
			best, last = c, j
		}
	}
	return t.walk(last), best
}

// BottleneckPath returns an optimal bottleneck Hamiltonian path from s to
// t and its bottleneck value.
func BottleneckPath(e *graph.Euclidean, s, t int) ([]int, float64) {
	tab := fill(e, s)
	return tab.walk(t), tab.dp[1<<tab.n-1][t]
}
