// SPDX-License-Identifier: MIT

// Package circuit is the in-memory circuit model consumed and produced by the
// placement and routing packages.
//
// A Circuit is an ordered list of Operations over flat qubit and classical-bit
// indices, partitioned into named registers. Each Operation has a Kind:
//
//	KindSingle   one qubit (h, x, rz(θ), ...)
//	KindTwo      two distinct qubits (cx, cz, swap, ...); the only kind whose
//	             physical adjacency matters
//	KindBarrier  one or more qubits, no effect other than ordering
//	KindMeasure  one qubit into one classical bit
//
// Layers returns the dependency-respecting decomposition used by the router:
// every operation sits one layer below the latest earlier operation sharing a
// qubit or classical bit with it (as-soon-as-possible layering). Order returns
// the layers flattened; it is the "program order" that every index into Ops
// produced by this module refers to.
package circuit
