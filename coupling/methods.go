// SPDX-License-Identifier: MIT
// Package: qubitmap/coupling
//
// methods.go — mutation and read-only queries on Map.
//
// Locking:
//   • AddEdge holds mu for writing and invalidates the distance cache.
//   • Queries hold mu for reading; Distance/DistanceTable may upgrade once to
//     fill the cache (double-checked under the write lock).

package coupling

import (
	"fmt"
	"sort"
)

// AddEdge connects physical qubits a and b. Adding an existing edge is a no-op.
//
// Errors:
//   - ErrQubitOutOfRange if either endpoint is outside [0, Size()).
//   - ErrLoopNotAllowed if a == b.
//
// Complexity: O(Δ) for the sorted insertion into both buckets.
func (m *Map) AddEdge(a, b int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkQubit(a); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", a, b, err)
	}
	if err := m.checkQubit(b); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", a, b, err)
	}
	if a == b {
		return fmt.Errorf("AddEdge(%d,%d): %w", a, b, ErrLoopNotAllowed)
	}
	if containsSorted(m.adj[a], b) {
		return nil
	}

	m.adj[a] = insertSorted(m.adj[a], b)
	m.adj[b] = insertSorted(m.adj[b], a)
	m.edgeCount++
	m.dist = nil

	return nil
}

// Size returns the number of physical qubits.
func (m *Map) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.adj)
}

// EdgeCount returns the number of undirected edges.
func (m *Map) EdgeCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.edgeCount
}

// Neighbors returns the neighbors of q in ascending order. The slice is a copy.
// An out-of-range q yields nil.
func (m *Map) Neighbors(q int) []int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.checkQubit(q) != nil {
		return nil
	}
	out := make([]int, len(m.adj[q]))
	copy(out, m.adj[q])

	return out
}

// Degree returns the number of neighbors of q, or 0 for an out-of-range q.
func (m *Map) Degree(q int) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.checkQubit(q) != nil {
		return 0
	}

	return len(m.adj[q])
}

// Adjacent reports whether a and b share an edge.
func (m *Map) Adjacent(a, b int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.checkQubit(a) != nil || m.checkQubit(b) != nil {
		return false
	}

	return containsSorted(m.adj[a], b)
}

// Edges returns every edge once, with A < B, sorted by (A, B).
func (m *Map) Edges() []Edge {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Edge, 0, m.edgeCount)
	for a, bucket := range m.adj {
		for _, b := range bucket {
			if a < b {
				out = append(out, Edge{A: a, B: b})
			}
		}
	}

	return out
}

// IsComplete reports whether every qubit is adjacent to every other qubit,
// i.e. every degree equals Size()-1. A single-qubit map is complete.
func (m *Map) IsComplete() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.adj)
	for _, bucket := range m.adj {
		if len(bucket) != n-1 {
			return false
		}
	}

	return true
}

// Distance returns the shortest-path hop count between a and b.
//
// Errors:
//   - ErrQubitOutOfRange for an invalid endpoint.
//   - ErrDisconnected if b is not reachable from a.
//
// Complexity: O(1) once the table is cached; the first call after a mutation
// pays O(V·(V+E)) to rebuild it.
func (m *Map) Distance(a, b int) (int, error) {
	table := m.table()
	if a < 0 || a >= len(table) || b < 0 || b >= len(table) {
		return 0, fmt.Errorf("Distance(%d,%d): %w", a, b, ErrQubitOutOfRange)
	}
	d := table[a][b]
	if d == Unreachable {
		return 0, fmt.Errorf("Distance(%d,%d): %w", a, b, ErrDisconnected)
	}

	return d, nil
}

// DistanceTable returns a copy of the all-pairs hop-count table.
// Pairs in different components hold Unreachable.
func (m *Map) DistanceTable() [][]int {
	table := m.table()
	out := make([][]int, len(table))
	for i, row := range table {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}

	return out
}

// IsConnected reports whether every qubit can reach every other qubit.
func (m *Map) IsConnected() bool {
	for _, row := range m.table() {
		for _, d := range row {
			if d == Unreachable {
				return false
			}
		}
	}

	return true
}

// Diameter returns the longest shortest path in the map, or ErrDisconnected.
func (m *Map) Diameter() (int, error) {
	best := 0
	for a, row := range m.table() {
		for b, d := range row {
			if d == Unreachable {
				return 0, fmt.Errorf("Diameter: %d↛%d: %w", a, b, ErrDisconnected)
			}
			if d > best {
				best = d
			}
		}
	}

	return best, nil
}

// String renders the map as "coupling.Map{n=4 [0-1 0-3 1-2 2-3]}".
func (m *Map) String() string {
	edges := m.Edges()
	s := fmt.Sprintf("coupling.Map{n=%d [", m.Size())
	for i, e := range edges {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d-%d", e.A, e.B)
	}

	return s + "]}"
}

// table returns the cached distance table, rebuilding it if stale.
// Callers must treat the result as read-only.
func (m *Map) table() [][]int {
	m.mu.RLock()
	t := m.dist
	m.mu.RUnlock()
	if t != nil {
		return t
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dist == nil {
		m.dist = allPairs(m.adj)
	}

	return m.dist
}

func (m *Map) checkQubit(q int) error {
	if q < 0 || q >= len(m.adj) {
		return fmt.Errorf("qubit %d not in [0,%d): %w", q, len(m.adj), ErrQubitOutOfRange)
	}

	return nil
}

func containsSorted(s []int, v int) bool {
	i := sort.SearchInts(s, v)
	return i < len(s) && s[i] == v
}

func insertSorted(s []int, v int) []int {
	i := sort.SearchInts(s, v)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v

	return s
}
