// SPDX-License-Identifier: MIT
// Package: qubitmap/coupling
//
// types.go — Map, Edge, sentinel errors and constructors.
//
// Contract:
//   • Physical qubit ids are dense integers in [0, Size()).
//   • Edges are undirected and simple: no self-loops, duplicates are ignored.
//   • Adjacency buckets are kept sorted ascending so every traversal is deterministic.

package coupling

import (
	"errors"
	"fmt"
	"sync"
)

// Unreachable marks a pair of physical qubits in different components
// inside a distance table.
const Unreachable = -1

// Sentinel errors for coupling map construction and queries.
var (
	// ErrEmptyMap indicates a map with no physical qubits was requested.
	ErrEmptyMap = errors.New("coupling: map must have at least one qubit")

	// ErrQubitOutOfRange indicates a physical id outside [0, Size()).
	ErrQubitOutOfRange = errors.New("coupling: qubit out of range")

	// ErrLoopNotAllowed indicates an edge from a qubit to itself.
	ErrLoopNotAllowed = errors.New("coupling: self-loop not allowed")

	// ErrDisconnected indicates that no path exists between two qubits.
	ErrDisconnected = errors.New("coupling: qubits are disconnected")
)

// Edge is an undirected connection between two physical qubits.
type Edge struct {
	A int
	B int
}

// Canonical returns the edge with A < B.
func (e Edge) Canonical() Edge {
	if e.A > e.B {
		return Edge{A: e.B, B: e.A}
	}
	return e
}

// Map is the connectivity graph of a device.
//
// The zero value is not usable; construct with New or FromEdges.
type Map struct {
	mu sync.RWMutex

	// adj[q] lists the neighbors of q in ascending order.
	adj [][]int

	// edgeCount counts undirected edges.
	edgeCount int

	// dist caches all-pairs hop counts; nil means stale.
	dist [][]int
}

// New returns an edgeless Map over size physical qubits.
func New(size int) (*Map, error) {
	if size < 1 {
		return nil, fmt.Errorf("New: size=%d: %w", size, ErrEmptyMap)
	}

	return &Map{adj: make([][]int, size)}, nil
}

// FromEdges returns a Map over size physical qubits holding the given edges.
// The first invalid edge aborts construction.
//
// Complexity: O(size + |edges|·Δ) where Δ is the maximum degree.
func FromEdges(size int, edges []Edge) (*Map, error) {
	m, err := New(size)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = m.AddEdge(e.A, e.B); err != nil {
			return nil, fmt.Errorf("FromEdges: %w", err)
		}
	}

	return m, nil
}
