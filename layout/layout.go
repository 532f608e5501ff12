// SPDX-License-Identifier: MIT

// Package layout holds the placement mapping between logical and physical
// qubits.
//
// A Layout is always a total bijection over NumPhysical() sites. Logical ids
// below NumLogical() are circuit wires; the remaining ids are ancillas that
// occupy the unused physical sites, assigned to free sites in ascending
// physical order when the layout is built. Routing moves qubits only through
// Swap, so the bijection can never break.
package layout

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for layout construction and mutation.
var (
	// ErrCapacity indicates more logical qubits than physical sites.
	ErrCapacity = errors.New("layout: more logical than physical qubits")

	// ErrNotBijection indicates a repeated or missing logical/physical id.
	ErrNotBijection = errors.New("layout: mapping is not a bijection")

	// ErrQubitOutOfRange indicates an id outside the layout's range.
	ErrQubitOutOfRange = errors.New("layout: qubit out of range")
)

// Pair binds one logical qubit to one physical qubit.
type Pair struct {
	Logical  int
	Physical int
}

// String renders the pair as "l→p".
func (p Pair) String() string { return fmt.Sprintf("%d→%d", p.Logical, p.Physical) }

// Layout is a mutable logical↔physical bijection.
type Layout struct {
	numLogical int
	l2p        []int
	p2l        []int
}

// FromPairs builds a layout from a complete list of pairs for logical qubits
// 0..numLogical-1 on a device with numPhysical sites.
//
// Errors:
//   - ErrCapacity if numLogical > numPhysical or either is negative.
//   - ErrQubitOutOfRange for an id outside its range.
//   - ErrNotBijection for a repeated id or a missing logical qubit.
func FromPairs(pairs []Pair, numLogical, numPhysical int) (*Layout, error) {
	if numLogical < 0 || numPhysical < numLogical {
		return nil, fmt.Errorf("FromPairs: logical=%d physical=%d: %w", numLogical, numPhysical, ErrCapacity)
	}
	if len(pairs) != numLogical {
		return nil, fmt.Errorf("FromPairs: %d pairs for %d logical qubits: %w", len(pairs), numLogical, ErrNotBijection)
	}

	l := &Layout{
		numLogical: numLogical,
		l2p:        filled(numPhysical, -1),
		p2l:        filled(numPhysical, -1),
	}
	for _, p := range pairs {
		if p.Logical < 0 || p.Logical >= numLogical || p.Physical < 0 || p.Physical >= numPhysical {
			return nil, fmt.Errorf("FromPairs: pair %v: %w", p, ErrQubitOutOfRange)
		}
		if l.l2p[p.Logical] != -1 || l.p2l[p.Physical] != -1 {
			return nil, fmt.Errorf("FromPairs: pair %v repeats an id: %w", p, ErrNotBijection)
		}
		l.l2p[p.Logical] = p.Physical
		l.p2l[p.Physical] = p.Logical
	}

	anc := numLogical
	for phys := 0; phys < numPhysical; phys++ {
		if l.p2l[phys] == -1 {
			l.p2l[phys] = anc
			l.l2p[anc] = phys
			anc++
		}
	}

	return l, nil
}

// Trivial returns the identity layout i→i.
func Trivial(numLogical, numPhysical int) (*Layout, error) {
	if numLogical < 0 || numPhysical < numLogical {
		return nil, fmt.Errorf("Trivial: logical=%d physical=%d: %w", numLogical, numPhysical, ErrCapacity)
	}
	pairs := make([]Pair, numLogical)
	for i := range pairs {
		pairs[i] = Pair{Logical: i, Physical: i}
	}

	return FromPairs(pairs, numLogical, numPhysical)
}

// NumLogical returns the number of circuit (non-ancilla) logical qubits.
func (l *Layout) NumLogical() int { return l.numLogical }

// NumPhysical returns the number of physical sites.
func (l *Layout) NumPhysical() int { return len(l.p2l) }

// IsAncilla reports whether logical id q is padding rather than a circuit wire.
func (l *Layout) IsAncilla(q int) bool { return q >= l.numLogical }

// Physical returns the site holding logical qubit q, or -1 if q is out of range.
func (l *Layout) Physical(q int) int {
	if q < 0 || q >= len(l.l2p) {
		return -1
	}

	return l.l2p[q]
}

// Logical returns the logical qubit at site p, or -1 if p is out of range.
func (l *Layout) Logical(p int) int {
	if p < 0 || p >= len(l.p2l) {
		return -1
	}

	return l.p2l[p]
}

// Swap exchanges the logical qubits bound to sites a and b.
func (l *Layout) Swap(a, b int) error {
	n := len(l.p2l)
	if a < 0 || a >= n || b < 0 || b >= n {
		return fmt.Errorf("Swap(%d,%d): %w", a, b, ErrQubitOutOfRange)
	}
	la, lb := l.p2l[a], l.p2l[b]
	l.p2l[a], l.p2l[b] = lb, la
	l.l2p[la], l.l2p[lb] = b, a

	return nil
}

// Pairs returns the circuit-qubit bindings ordered by logical id.
func (l *Layout) Pairs() []Pair {
	out := make([]Pair, l.numLogical)
	for q := 0; q < l.numLogical; q++ {
		out[q] = Pair{Logical: q, Physical: l.l2p[q]}
	}

	return out
}

// Clone returns an independent copy.
func (l *Layout) Clone() *Layout {
	return &Layout{
		numLogical: l.numLogical,
		l2p:        append([]int(nil), l.l2p...),
		p2l:        append([]int(nil), l.p2l...),
	}
}

// Equal reports whether both layouts bind every id identically.
func (l *Layout) Equal(o *Layout) bool {
	if o == nil || l.numLogical != o.numLogical || len(l.p2l) != len(o.p2l) {
		return false
	}
	for i := range l.p2l {
		if l.p2l[i] != o.p2l[i] {
			return false
		}
	}

	return true
}

// Validate checks that both directions agree and cover every id exactly once.
func (l *Layout) Validate() error {
	n := len(l.p2l)
	if len(l.l2p) != n {
		return fmt.Errorf("Validate: %d logical vs %d physical slots: %w", len(l.l2p), n, ErrNotBijection)
	}
	for p, q := range l.p2l {
		if q < 0 || q >= n || l.l2p[q] != p {
			return fmt.Errorf("Validate: site %d holds %d: %w", p, q, ErrNotBijection)
		}
	}

	return nil
}

// String renders circuit bindings as "Layout{0→2 1→0}".
func (l *Layout) String() string {
	parts := make([]string, 0, l.numLogical)
	for _, p := range l.Pairs() {
		parts = append(parts, p.String())
	}

	return "Layout{" + strings.Join(parts, " ") + "}"
}

func filled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}

	return s
}
