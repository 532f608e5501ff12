// SPDX-License-Identifier: MIT
// Package: qubitmap/interaction
//
// analyzer.go — per-qubit statistics over a circuit and a coupling map.

package interaction

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/qubitmap/circuit"
	"github.com/katalvlaran/qubitmap/coupling"
)

// ErrNilInput indicates a nil circuit or coupling map.
var ErrNilInput = errors.New("interaction: nil input")

// Stats bundles every statistic for one (circuit, device) pair.
type Stats struct {
	Priority          []int
	Connectivity      []int
	LogicalNeighbors  [][]int
	PhysicalNeighbors [][]int
	QPI               *Matrix
}

// Analyze computes all statistics at once.
func Analyze(cm *coupling.Map, c *circuit.Circuit) (*Stats, error) {
	if cm == nil || c == nil {
		return nil, fmt.Errorf("Analyze: %w", ErrNilInput)
	}
	qpi, err := WeightMatrix(c)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}

	return &Stats{
		Priority:          LogicalPriority(c),
		Connectivity:      PhysicalConnectivity(cm),
		LogicalNeighbors:  LogicalNeighbors(c),
		PhysicalNeighbors: PhysicalNeighbors(cm),
		QPI:               qpi,
	}, nil
}

// LogicalPriority returns, per logical qubit, the number of two-qubit
// operations it takes part in.
func LogicalPriority(c *circuit.Circuit) []int {
	prio := make([]int, c.NumQubits())
	for _, idx := range c.TwoQubitOps() {
		for _, q := range c.Ops[idx].Qubits {
			prio[q]++
		}
	}

	return prio
}

// PhysicalConnectivity returns the degree of every physical qubit.
func PhysicalConnectivity(cm *coupling.Map) []int {
	deg := make([]int, cm.Size())
	for q := range deg {
		deg[q] = cm.Degree(q)
	}

	return deg
}

// LogicalNeighbors returns, per logical qubit, the ascending set of logical
// qubits it shares at least one two-qubit operation with.
func LogicalNeighbors(c *circuit.Circuit) [][]int {
	n := c.NumQubits()
	seen := make([]map[int]struct{}, n)
	for i := range seen {
		seen[i] = make(map[int]struct{})
	}
	for _, idx := range c.TwoQubitOps() {
		a, b := c.Ops[idx].Qubits[0], c.Ops[idx].Qubits[1]
		seen[a][b] = struct{}{}
		seen[b][a] = struct{}{}
	}

	out := make([][]int, n)
	for q, set := range seen {
		out[q] = make([]int, 0, len(set))
		for nb := range set {
			out[q] = append(out[q], nb)
		}
		sort.Ints(out[q])
	}

	return out
}

// PhysicalNeighbors returns the ascending adjacency list of every physical qubit.
func PhysicalNeighbors(cm *coupling.Map) [][]int {
	out := make([][]int, cm.Size())
	for q := range out {
		out[q] = cm.Neighbors(q)
	}

	return out
}

// WeightMatrix builds the QPI matrix of c.
func WeightMatrix(c *circuit.Circuit) (*Matrix, error) {
	m, err := NewMatrix(c.NumQubits())
	if err != nil {
		return nil, fmt.Errorf("WeightMatrix: %w", err)
	}
	ops := c.TwoQubitOps()
	total := int64(len(ops))
	for k, idx := range ops {
		a, b := c.Ops[idx].Qubits[0], c.Ops[idx].Qubits[1]
		if err = m.AddSymmetric(a, b, total-int64(k)); err != nil {
			return nil, fmt.Errorf("WeightMatrix: op %d: %w", idx, err)
		}
	}

	return m, nil
}

// ArgMax returns the index of the largest value among those for which
// eligible returns true (nil means all). Ties go to the lowest index.
// It returns -1 when nothing is eligible.
func ArgMax(values []int, eligible func(int) bool) int {
	best := -1
	for i, v := range values {
		if eligible != nil && !eligible(i) {
			continue
		}
		if best == -1 || v > values[best] {
			best = i
		}
	}

	return best
}

// Contains reports whether the ascending slice s holds v.
func Contains(s []int, v int) bool {
	i := sort.SearchInts(s, v)
	return i < len(s) && s[i] == v
}
