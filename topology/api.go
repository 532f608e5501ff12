// SPDX-License-Identifier: MIT
// Package: qubitmap/topology
//
// api.go — Builder, Constructor and the Build orchestrator.
//
// Design contract:
//   • One orchestrator: Build(cons...). Runs constructors in order on a fresh Builder.
//   • Constructors allocate their own block of ids with Builder.Grow and never
//     touch ids below the returned offset, except Distributed, which bridges
//     blocks it allocated itself.
//   • Constructors validate parameters first and return sentinel errors; no panics.

package topology

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qubitmap/coupling"
)

// Sentinel errors for topology construction.
var (
	// ErrTooFewQubits indicates a size parameter below the layout's minimum.
	ErrTooFewQubits = errors.New("topology: parameter too small")

	// ErrBadLink indicates a Distributed bridge offset outside [1, unit size].
	ErrBadLink = errors.New("topology: bridge link out of range")

	// ErrNilConstructor indicates a nil Constructor was passed to Build or Distributed.
	ErrNilConstructor = errors.New("topology: nil constructor")
)

// Builder accumulates physical qubits and edges while constructors run.
type Builder struct {
	size  int
	edges []coupling.Edge
}

// Grow reserves n new physical ids and returns the first of them.
func (b *Builder) Grow(n int) int {
	off := b.size
	b.size += n

	return off
}

// Connect records an edge between two already reserved ids.
func (b *Builder) Connect(u, v int) error {
	if u < 0 || v < 0 || u >= b.size || v >= b.size {
		return fmt.Errorf("Connect(%d,%d): size=%d: %w", u, v, b.size, coupling.ErrQubitOutOfRange)
	}
	b.edges = append(b.edges, coupling.Edge{A: u, B: v})

	return nil
}

// Size returns the number of ids reserved so far.
func (b *Builder) Size() int { return b.size }

// Constructor appends one block to a Builder.
type Constructor func(b *Builder) error

// Build runs cons in order and returns the resulting coupling map.
// Constructor errors are wrapped with "Build: %w".
//
// Rationale:
//   - Constructors only reserve ids and record edges; the map is created once
//     at the end, so a failed constructor never leaves a half-built device.
//   - Blocks compose by offset, so Build(Line(3), Ring(4)) is two disjoint
//     components with ids 0..2 and 3..6.
//
// Complexity:
//   - O(K + V + E) for K constructors, plus FromEdges sorting each adjacency
//     list, O(E·log Δ).
//
// Concurrency:
//   - Pure function of its arguments; safe to call concurrently.
//
// Errors:
//   - ErrNilConstructor for a nil entry.
//   - ErrTooFewQubits or ErrBadLink from the constructors.
//   - coupling errors (self loops, ids out of range) from FromEdges.
func Build(cons ...Constructor) (*coupling.Map, error) {
	b := &Builder{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(b); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	cm, err := coupling.FromEdges(b.size, b.edges)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return cm, nil
}
