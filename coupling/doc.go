// SPDX-License-Identifier: MIT

// Package coupling models the connectivity graph of a quantum device: an
// undirected graph over physical qubit ids 0..Size()-1 in which an edge (a,b)
// means a two-operand operation may act directly on a and b.
//
// A Map answers the three questions every mapping algorithm asks:
//
//	Neighbors(q)   — which sites are one hop from q (ascending order)
//	Degree(q)      — how many such sites exist
//	Distance(a, b) — shortest-path hop count between a and b
//
// Distances come from a breadth-first sweep out of every source and are cached
// in a dense table until the next AddEdge. The table uses Unreachable (-1) for
// pairs in different components; Distance reports those as ErrDisconnected.
//
// Concurrency:
//
//	All methods are safe for concurrent use. Mutation (AddEdge) takes the write
//	lock and drops the distance cache; queries take the read lock.
//
// Quick example (4-qubit ring):
//
//	0───1
//	│   │
//	3───2
//
//	cm, _ := coupling.FromEdges(4, []coupling.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
//	d, _ := cm.Distance(0, 2) // 2
package coupling
