package euler

import (
	"math/rand"
	"slices"

	"github.com/katalvlaran/btsp/graph"
)

// repair restarts with fixed seeds; each restart gets a base budget plus a
// share per node.
const (
	repairRestarts = 32
	repairBase     = 1 << 10
	repairPerNode  = 4
)

// repair turns the closed sequence seq, a permutation of the nodes of sq,
// into a Hamiltonian cycle of sq by 2-opt moves.
//
// A defect is a pair of consecutive nodes (a, b) that is not an edge of
// sq. Each step picks a defect at random and looks at every 2-opt move
// that replaces (a, b) and another tour pair (x, y) by (a, x) and (b, y)
// where a~x or b~y holds in sq. The move removing the most defects is
// applied; when none removes any, a random candidate is applied instead.
//
// It reports false when every restart runs out of budget.
//
// Complexity: O(restarts · budget · n) time worst case, O(n) space.
func repair(seq []int, sq graph.Traversable) ([]int, bool) {
	n := len(seq)
	if n == 0 || n != sq.NumberOfNodes() {
		return nil, false
	}
	adj := make([][]int, n)
	for u := range adj {
		adj[u] = slices.Collect(sq.Neighbours(u))
	}
	budget := repairBase + repairPerNode*n

	for seed := int64(1); seed <= repairRestarts; seed++ {
		if cycle, ok := repairOnce(seq, adj, sq, budget, rand.New(rand.NewSource(seed))); ok {
			return cycle, true
		}
	}
	return nil, false
}

// twoOpt is a candidate move: reverse the tour between positions i+1 and j.
type twoOpt struct {
	i, j, gain int
}

func repairOnce(seq []int, adj [][]int, sq graph.Graph, budget int, rng *rand.Rand) ([]int, bool) {
	n := len(seq)
	c := slices.Clone(seq)
	pos := make([]int, n)
	for i, v := range c {
		pos[v] = i
	}
	next := func(i int) int { return (i + 1) % n }
	defect := func(u, v int) int {
		if sq.Adjacent(u, v) {
			return 0
		}
		return 1
	}

	var (
		bad   []int
		cands []twoOpt
	)
	for range budget {
		// 1) Collect defects.
		bad = bad[:0]
		for i := range c {
			if defect(c[i], c[next(i)]) == 1 {
				bad = append(bad, i)
			}
		}
		if len(bad) == 0 {
			return c, true
		}

		// 2) Candidate moves around one defect.
		i := bad[rng.Intn(len(bad))]
		a, b := c[i], c[next(i)]
		cands = cands[:0]
		for _, x := range adj[a] {
			j := pos[x]
			if j == i || j == next(i) || c[next(j)] == a {
				continue
			}
			y := c[next(j)]
			cands = append(cands, twoOpt{i, j, 1 + defect(x, y) - defect(b, y)})
		}
		for _, y := range adj[b] {
			j := (pos[y] + n - 1) % n
			if j == i || j == next(i) || next(j) == i {
				continue
			}
			cands = append(cands, twoOpt{i, j, 1 + defect(c[j], y) - defect(a, c[j])})
		}
		if len(cands) == 0 {
			continue
		}

		// 3) Best gain, or a random move on a plateau.
		best := slices.MaxFunc(cands, func(p, q twoOpt) int { return p.gain - q.gain }).gain
		if best > 0 {
			cands = slices.DeleteFunc(cands, func(m twoOpt) bool { return m.gain < best })
		}
		m := cands[rng.Intn(len(cands))]
		reverseCyclic(c, pos, next(m.i), m.j)
	}
	return nil, false
}

// reverseCyclic reverses the cyclic segment c[l..r]. The complement is
// reversed instead when it is shorter, which gives the same cycle.
func reverseCyclic(c, pos []int, l, r int) {
	n := len(c)
	size := (r-l+n)%n + 1
	if 2*size > n {
		l, r = (r+1)%n, (l+n-1)%n
		size = n - size
	}
	for k := range size / 2 {
		p, q := (l+k)%n, (r-k+n)%n
		c[p], c[q] = c[q], c[p]
		pos[c[p]], pos[c[q]] = p, q
	}
}

// firstVisits keeps the first visit of every node in walk and appends the
// nodes never visited, giving a permutation of {0..n-1}.
func firstVisits(walk []int, n int) []int {
	seen := make([]bool, n)
	out := make([]int, 0, n)
	for _, v := range walk {
		if v >= 0 && v < n && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for v := range n {
		if !seen[v] {
			out = append(out, v)
		}
	}
	return out
}
