// Package exact computes optimal bottleneck tours by dynamic programming
// over subsets (Held–Karp with max in place of +).
//
// It is exponential in the number of points and meant for small instances:
// as a reference to measure the 2-approximation against, and as an
// alternative btsp.Solver when n ≤ MaxNodes.
//
//	dp[mask][j] = min over k of max(dp[mask\{j}][k], w(k, j))
//
// Complexity: O(n² · 2ⁿ) time, O(n · 2ⁿ) memory.
package exact
