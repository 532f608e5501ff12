// SPDX-License-Identifier: MIT

// Package interaction derives the statistics that guide initial placement:
//
//	LogicalPriority        two-qubit operation count per logical qubit
//	PhysicalConnectivity   degree per physical qubit
//	LogicalNeighbors       logical qubits sharing a two-qubit operation
//	PhysicalNeighbors      adjacency list per physical qubit
//	WeightMatrix           qubit-pair interaction (QPI) weights
//
// QPI weighting: with T two-qubit operations in program order, the k-th
// (0-based) operation between a and b adds T-k to entries (a,b) and (b,a).
// Early interactions therefore dominate, biasing placement toward satisfying
// near-term operations first.
//
// All functions are pure; none retain their arguments.
package interaction
