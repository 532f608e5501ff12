// SPDX-License-Identifier: MIT

// Package qubitmap maps quantum circuits onto devices whose two-qubit gates
// only work between connected qubits.
//
// The work is split across small packages, leaves first:
//
//	coupling/    — device connectivity graph, BFS distance table
//	topology/    — line, ring, grid, full, star, T and chained layouts
//	circuit/     — operations, ASAP layers, OpenQASM 2.0 export
//	layout/      — logical↔physical bijection with ancilla padding
//	interaction/ — priority, degree and QPI statistics for placement
//	placement/   — beam-search initial mapping
//	router/      — lookahead swap insertion and result verification
//	transpile/   — placement → layout → routing in one call
//
// Quick start:
//
//	cm, _ := topology.Build(topology.Grid(3, 3))
//	c, _ := circuit.New(3, 0)
//	_ = c.CX(0, 2)
//	res, err := transpile.Run(ctx, cm, c, transpile.Options{Verify: true})
//
// Both algorithms are greedy heuristics: results are deterministic for a
// given input, not optimal.
package qubitmap
