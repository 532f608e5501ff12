// SPDX-License-Identifier: MIT
// Package: qubitmap/coupling
//
// bfs.go — unweighted all-pairs distances by one breadth-first sweep per source.
//
// Each sweep is a small walker (queue + depth slice) in the style of a
// level-order traversal; neighbors are expanded in ascending id order, so the
// resulting table is deterministic. Complexity: O(V·(V+E)) time, O(V²) space.

package coupling

// sweep holds the mutable state of one breadth-first traversal.
type sweep struct {
	adj   [][]int
	queue []int
	depth []int
}

// allPairs returns dist[a][b] for every pair, Unreachable where no path exists.
func allPairs(adj [][]int) [][]int {
	n := len(adj)
	dist := make([][]int, n)
	w := &sweep{adj: adj, queue: make([]int, 0, n)}
	for src := 0; src < n; src++ {
		dist[src] = w.run(src)
	}

	return dist
}

// run returns the hop count from src to every qubit.
func (w *sweep) run(src int) []int {
	w.depth = make([]int, len(w.adj))
	for i := range w.depth {
		w.depth[i] = Unreachable
	}
	w.queue = w.queue[:0]

	w.depth[src] = 0
	w.queue = append(w.queue, src)
	for head := 0; head < len(w.queue); head++ {
		cur := w.queue[head]
		for _, nbr := range w.adj[cur] {
			if w.depth[nbr] != Unreachable {
				continue
			}
			w.depth[nbr] = w.depth[cur] + 1
			w.queue = append(w.queue, nbr)
		}
	}

	return w.depth
}
