package euler

import (
	"github.com/katalvlaran/btsp/graph"
)

// The step budget of reselect is a fixed base plus a share per walk entry.
const (
	reselectBase    = 1 << 16
	reselectPerStep = 16
)

// reselect picks one visit of every node from the closed walk so that
// consecutive picks, including the last and the first, are adjacent in
// sq. It is a depth-first keep/skip search over walk positions: a visit
// may be kept when its node is not kept yet and it is adjacent to the
// previous pick, and skipped when the node is kept already or visited
// again later.
//
// It reports false when no selection exists or the step budget runs out.
//
// Complexity: O(budget) time, O(n + len(walk)) space.
func reselect(walk []int, n int, sq graph.Graph) ([]int, bool) {
	if len(walk) > 1 && walk[0] == walk[len(walk)-1] {
		walk = walk[:len(walk)-1]
	}

	left := make([]int, n)
	for _, v := range walk {
		left[v]++
	}
	var (
		kept   = make([]bool, n)
		out    = make([]int, 0, n)
		steps  int
		budget = reselectBase + reselectPerStep*len(walk)
	)

	var search func(p int) bool
	search = func(p int) bool {
		if steps++; steps > budget {
			return false
		}
		if p == len(walk) {
			return len(out) == n && (n < 2 || sq.Adjacent(out[len(out)-1], out[0]))
		}

		x := walk[p]
		left[x]--
		if !kept[x] && (len(out) == 0 || sq.Adjacent(out[len(out)-1], x)) {
			kept[x] = true
			out = append(out, x)
			if search(p + 1) {
				return true
			}
			out = out[:len(out)-1]
			kept[x] = false
		}
		if (kept[x] || left[x] > 0) && search(p+1) {
			return true
		}
		left[x]++
		return false
	}

	if !search(0) {
		return nil, false
	}
	return out, true
}
