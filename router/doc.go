// SPDX-License-Identifier: MIT

// Package router rewrites a logical circuit into a physical one in which every
// two-qubit operation acts on adjacent device qubits, inserting swaps chosen
// by a lookahead score.
//
// A Session owns the whole mutable state of one run: the current layout,
// one dependency queue of pending two-qubit operations per logical qubit,
// and the output circuit. Route drives a Session over circuit.Layers; tests
// may call RouteLayer directly.
//
// Per layer:
//
//  1. Single-qubit, barrier and measurement operations are emitted at once,
//     operands remapped through the current layout.
//  2. Two-qubit operations on adjacent sites are emitted; the rest form the
//     active list.
//  3. While the active list is non-empty: emit what became adjacent, collect
//     candidate swaps on edges touching active operands (minus swaps already
//     applied in this layer), score each by walking the dependency queues of
//     the two logical qubits it moves, and apply the best one if its score is
//     positive.
//
// Scoring walks a queue in program order. Each two-qubit operation
// contributes old-distance minus new-distance. A negative contribution on an
// active operation disqualifies the swap; on any other operation it ends the
// walk. Ties go to the first candidate generated.
//
// Termination: at most MaxAttempts swap rounds per layer. A round without a
// positive swap is a stall; it clears the per-layer used-swap set, and
// StallLimit consecutive stalls abort the run. Both failures wrap
// ErrUnroutable. WithStallLimit(1) keeps the used set for the whole layer.
//
// Measurements: by default (ClbitDeclared) a measurement follows its logical
// qubit to the current site and keeps its declared classical bit. The
// ClbitByLayout mode measures the qubit's initial site instead and writes
// the classical bit of the logical qubit found there (see ResolveClbit);
// measurements declared on different bits that resolve to the same one fail
// with ErrClbitUnresolved.
package router
