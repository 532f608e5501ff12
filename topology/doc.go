// SPDX-License-Identifier: MIT

// Package topology builds coupling maps for common device layouts.
//
// Every layout is a Constructor; Build lays the constructors out as disjoint
// blocks of consecutive physical ids, in call order, and returns the union as
// a *coupling.Map:
//
//	cm, err := topology.Build(topology.Ring(5))                      // 5-qubit ring
//	cm, err := topology.Build(topology.Distributed(3, 1, topology.Ring(4))) // 3 rings chained
//
// Available layouts:
//
//	Line(n)          path 0-1-…-(n-1)
//	Ring(n)          cycle, n ≥ 3
//	Grid(r, c)       4-neighbour grid, row-major ids
//	Full(n)          complete graph K_n
//	Star(n)          qubit 0 joined to every other qubit
//	TShape()         5-qubit T: 0-1, 1-2, 1-3, 3-4
//	Distributed(g, link, unit)
//	                 g copies of unit; copy k ≥ 1 is bridged to copy k-1 by
//	                 the edge (k·s, k·s−link), s = unit size
//
// Determinism: ids and edge emission order depend only on the arguments.
package topology
