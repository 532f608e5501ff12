// SPDX-License-Identifier: MIT
// Package: qubitmap/router
//
// score.go — swap candidates and the lookahead score.
//
// Complexity per round: O(A·Δ) candidates for A active operations and
// maximum degree Δ; each is scored in O(length of two dependency queues).

package router

import "github.com/katalvlaran/qubitmap/coupling"

// candidates lists the swaps on edges touching an active operand, in active
// order, first operand before second, neighbours ascending. Edges in used and
// repeats in either orientation are skipped.
func (s *Session) candidates(active []int, used map[coupling.Edge]struct{}) []coupling.Edge {
	seen := make(map[coupling.Edge]struct{})
	var out []coupling.Edge
	for _, idx := range active {
		for _, q := range s.in.Ops[idx].Qubits {
			p := s.current.Physical(q)
			for _, nb := range s.cm.Neighbors(p) {
				e := coupling.Edge{A: p, B: nb}
				key := e.Canonical()
				if _, ok := used[key]; ok {
					continue
				}
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				out = append(out, e)
			}
		}
	}

	return out
}

// bestSwap returns the highest-scoring harmless candidate if its score is
// positive. The first candidate wins ties.
func (s *Session) bestSwap(active []int, used map[coupling.Edge]struct{}) (coupling.Edge, bool) {
	inActive := make(map[int]bool, len(active))
	for _, idx := range active {
		inActive[idx] = true
	}

	var (
		best  coupling.Edge
		top   int
		found bool
	)
	for _, sw := range s.candidates(active, used) {
		score, harmful := s.score(sw, inActive)
		if harmful {
			continue
		}
		if !found || score > top {
			best, top, found = sw, score, true
		}
	}

	return best, found && top > 0
}

// score sums the lookahead gain of sw over the queues of both logical qubits
// it moves. harmful is true if sw lengthens an active operation.
func (s *Session) score(sw coupling.Edge, inActive map[int]bool) (total int, harmful bool) {
	for _, p := range [2]int{sw.A, sw.B} {
		q := s.current.Logical(p)
		if s.current.IsAncilla(q) {
			continue
		}
		gain, bad := s.walk(s.queues[q], sw, inActive)
		if bad {
			return 0, true
		}
		total += gain
	}

	return total, false
}

// walk accumulates the distance gain of sw along queue until the first
// operation it would lengthen.
func (s *Session) walk(queue []int, sw coupling.Edge, inActive map[int]bool) (gain int, harmful bool) {
	for _, idx := range queue {
		d := s.delta(idx, sw)
		if d < 0 {
			if inActive[idx] {
				return gain, true
			}
			break
		}
		gain += d
	}

	return gain, false
}

// delta returns how much closer sw brings the operands of op idx.
func (s *Session) delta(idx int, sw coupling.Edge) int {
	q := s.in.Ops[idx].Qubits
	a, b := s.current.Physical(q[0]), s.current.Physical(q[1])
	before := s.dist[a][b]

	return before - s.dist[across(a, sw)][across(b, sw)]
}

// across returns where site p ends up after sw.
func across(p int, sw coupling.Edge) int {
	switch p {
	case sw.A:
		return sw.B
	case sw.B:
		return sw.A
	default:
		return p
	}
}
