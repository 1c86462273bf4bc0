package graph

import (
	"fmt"
	"iter"
	"slices"
)

// DfsTree is a rooted spanning tree recorded by DFS.
//
// Every reached node other than the root has exactly one parent.
// Reading the root's parent is a programming error and panics with
// ErrRootParent. Nodes the search never reached report parent -1.
type DfsTree struct {
	parent []int
	order  []int
	root   int
}

// Root returns the start node of the search.
func (t *DfsTree) Root() int { return t.root }

// Parent returns the tree parent of v.
func (t *DfsTree) Parent(v int) int {
	if v == t.root {
		panic(ErrRootParent)
	}
	return t.parent[v]
}

// ExplorationOrder returns the nodes in the order DFS first visited them.
func (t *DfsTree) ExplorationOrder() []int { return slices.Clone(t.order) }

// Reached reports whether v belongs to the tree.
func (t *DfsTree) Reached(v int) bool { return v == t.root || t.parent[v] >= 0 }

// NumberOfNodes returns the size of the underlying graph.
func (t *DfsTree) NumberOfNodes() int { return len(t.parent) }

// NumberOfEdges returns the number of tree edges.
func (t *DfsTree) NumberOfEdges() int { return len(t.order) - 1 }

// Connected reports whether the tree spans every node.
func (t *DfsTree) Connected() bool { return len(t.order) == len(t.parent) }

// Adjacent reports whether (u, v) is a tree edge in either direction.
func (t *DfsTree) Adjacent(u, v int) bool {
	n := len(t.parent)
	if checkNode(u, n) != nil || checkNode(v, n) != nil {
		return false
	}
	return (u != t.root && t.parent[u] == v) || (v != t.root && t.parent[v] == u)
}

// Edges yields the tree edges (parent(v), v) in exploration order.
func (t *DfsTree) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, v := range t.order[1:] {
			if !yield(Edge{U: t.parent[v], V: v}) {
				return
			}
		}
	}
}

// DFS runs an iterative depth-first search from root.
//
// Steps:
//  1. Push root.
//  2. Pop the top node; skip it if already visited.
//  3. Otherwise mark it, append it to the exploration order and push every
//     unvisited neighbour, recording the popped node as its parent.
//
// A node pushed several times keeps the parent of its latest push, which is
// the entry popped first, so the result is a proper DFS tree. Neighbours are
// pushed in iteration order and therefore explored in reverse.
//
// Complexity: O(V + E) time, O(V + E) stack in the worst case.
func DFS(g Traversable, root int) (*DfsTree, error) {
	n := g.NumberOfNodes()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if err := checkNode(root, n); err != nil {
		return nil, fmt.Errorf("dfs root %d: %w", root, err)
	}

	tree := &DfsTree{parent: make([]int, n), order: make([]int, 0, n), root: root}
	for i := range tree.parent {
		tree.parent[i] = -1
	}

	var (
		visited = make([]bool, n)
		stack   = []int{root}
		top     int
	)
	for len(stack) > 0 {
		top = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[top] {
			continue
		}
		visited[top] = true
		tree.order = append(tree.order, top)

		for nb := range g.Neighbours(top) {
			if !visited[nb] {
				stack = append(stack, nb)
				tree.parent[nb] = top
			}
		}
	}

	return tree, nil
}

// reachesAll reports whether a DFS from node 0 visits every node.
// An empty graph counts as connected.
func reachesAll(g Traversable) bool {
	if g.NumberOfNodes() == 0 {
		return true
	}
	tree, err := DFS(g, 0)
	if err != nil {
		return false
	}
	return tree.Connected()
}
