// SPDX-License-Identifier: MIT
// Package: qubitmap/placement
//
// place.go — Place entry point and the beam-search state.

package placement

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/qubitmap/circuit"
	"github.com/katalvlaran/qubitmap/coupling"
	"github.com/katalvlaran/qubitmap/interaction"
	"github.com/katalvlaran/qubitmap/layout"
)

// candidate is one partial mapping in the frontier.
type candidate struct {
	pairs []layout.Pair
	key   string
	score int64
	// site[p] is the logical qubit at physical p, or -1.
	site []int
	// placed[l] is true once logical l is assigned.
	placed []bool
}

// extend returns a child of c with (l, p) appended.
func (c *candidate) extend(l, p int, gain int64) *candidate {
	child := &candidate{
		pairs:  make([]layout.Pair, len(c.pairs), len(c.pairs)+1),
		key:    c.key + "(" + strconv.Itoa(l) + "," + strconv.Itoa(p) + ")",
		score:  c.score + gain,
		site:   append([]int(nil), c.site...),
		placed: append([]bool(nil), c.placed...),
	}
	copy(child.pairs, c.pairs)
	child.pairs = append(child.pairs, layout.Pair{Logical: l, Physical: p})
	child.site[p] = l
	child.placed[l] = true

	return child
}

// searcher carries the mutable state of one Place call.
type searcher struct {
	opts  Options
	stats *interaction.Stats

	// rank maps a candidate key to its cumulative score; it mirrors the frontier.
	rank     map[string]int64
	frontier []*candidate
	pruned   int
}

// Place computes an initial mapping of c's qubits onto cm.
//
// Rationale:
//   - Logical qubits are placed by descending priority, each on a free site
//     next to its placed neighbours that maximises the interaction weight
//     with them; ties branch into a beam of at most BeamWidth candidates.
//   - A complete device returns the identity mapping, as every mapping is
//     equally good there.
//
// Complexity:
//   - O(N · W · (N·Δ + M)) for N logical qubits, M physical qubits, beam
//     width W and maximum degree Δ.
//
// Concurrency:
//   - The rank table and frontier live in one call; concurrent calls on
//     shared read-only inputs are safe.
//
// Errors:
//   - ErrNilInput, ErrCapacity, ErrOptionViolation.
//   - The context error if Ctx is cancelled between rounds.
func Place(cm *coupling.Map, c *circuit.Circuit, opts ...Option) (*Result, error) {
	if cm == nil || c == nil {
		return nil, ErrNilInput
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n, m := c.NumQubits(), cm.Size()
	ctx, span := tracer.Start(o.Ctx, "placement.Place",
		trace.WithAttributes(
			attribute.Int("logical_qubits", n),
			attribute.Int("physical_qubits", m),
			attribute.Int("beam_width", o.BeamWidth),
		))
	defer span.End()
	o.Ctx = ctx

	if n > m {
		err := fmt.Errorf("Place: %d logical > %d physical: %w", n, m, ErrCapacity)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if n == 0 {
		return &Result{Pairs: []layout.Pair{}, Candidates: 1}, nil
	}
	if cm.IsComplete() {
		pairs := make([]layout.Pair, n)
		for i := range pairs {
			pairs[i] = layout.Pair{Logical: i, Physical: i}
		}
		span.SetAttributes(attribute.Bool("complete_device", true))
		return &Result{Pairs: pairs, Candidates: 1, Complete: true}, nil
	}

	stats, err := interaction.Analyze(cm, c)
	if err != nil {
		return nil, fmt.Errorf("Place: %w", err)
	}
	s := &searcher{opts: o, stats: stats, rank: make(map[string]int64)}

	res, err := s.run(n, m)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.Int64("score", res.Score),
		attribute.Int("candidates", res.Candidates),
		attribute.Int("pruned", res.Pruned),
	)

	return res, nil
}

// run seeds the frontier, expands it once per remaining logical qubit and
// selects the best complete mapping.
func (s *searcher) run(n, m int) (*Result, error) {
	remaining := make([]bool, n)
	for i := range remaining {
		remaining[i] = true
	}
	isRemaining := func(q int) bool { return remaining[q] }

	seedL := interaction.ArgMax(s.stats.Priority, nil)
	seedP := interaction.ArgMax(s.stats.Connectivity, nil)
	remaining[seedL] = false

	root := &candidate{site: filled(m, -1), placed: make([]bool, n)}
	root = root.extend(seedL, seedP, 0)
	s.frontier = []*candidate{root}
	s.rank[root.key] = root.score

	for round := 1; round < n; round++ {
		select {
		case <-s.opts.Ctx.Done():
			return nil, s.opts.Ctx.Err()
		default:
		}

		curr := interaction.ArgMax(s.stats.Priority, isRemaining)
		remaining[curr] = false
		if err := s.expand(curr); err != nil {
			return nil, fmt.Errorf("Place: round %d (logical %d): %w", round, curr, err)
		}
		recordFrontier(s.opts.Ctx, len(s.frontier))
	}

	best := s.frontier[0]
	for _, cand := range s.frontier[1:] {
		if s.rank[cand.key] > s.rank[best.key] {
			best = cand
		}
	}

	return &Result{
		Pairs:      best.pairs,
		Score:      s.rank[best.key],
		Candidates: len(s.frontier),
		Pruned:     s.pruned,
	}, nil
}

// expand replaces every frontier entry by its children for logical qubit curr.
func (s *searcher) expand(curr int) error {
	next := make([]*candidate, 0, len(s.frontier))
	pos := make(map[string]int, len(s.frontier))
	for _, cand := range s.frontier {
		delete(s.rank, cand.key)

		sites, gain, err := s.choose(cand, curr)
		if err != nil {
			return err
		}
		for _, p := range sites {
			child := cand.extend(curr, p, gain)
			s.rank[child.key] = child.score
			if i, dup := pos[child.key]; dup {
				next[i] = child
				continue
			}
			pos[child.key] = len(next)
			next = append(next, child)
		}
	}

	s.frontier = s.prune(next)

	return nil
}

// choose returns the physical sites to branch on for curr and the score each
// branch gains.
func (s *searcher) choose(cand *candidate, curr int) ([]int, int64, error) {
	free := func(p int) bool { return cand.site[p] == -1 }
	nbrs := s.stats.LogicalNeighbors[curr]

	qbn := make(map[int]int64)
	for _, pr := range cand.pairs {
		if !interaction.Contains(nbrs, pr.Logical) {
			continue
		}
		w := s.stats.QPI.At(pr.Logical, curr)
		for _, p := range s.stats.PhysicalNeighbors[pr.Physical] {
			if free(p) {
				qbn[p] += w
			}
		}
	}

	if len(qbn) == 0 {
		// no placed neighbour, or every neighbour is boxed in
		p := interaction.ArgMax(s.stats.Connectivity, free)
		if p == -1 {
			return nil, 0, ErrCapacity
		}
		return []int{p}, 0, nil
	}

	sites := make([]int, 0, len(qbn))
	var top int64
	for p, v := range qbn {
		if len(sites) == 0 || v > top {
			top = v
			sites = sites[:0]
		}
		if v == top {
			sites = append(sites, p)
		}
	}
	sort.Ints(sites)
	if top == 0 {
		return sites[:1], 0, nil
	}

	return sites, top, nil
}

// prune keeps at most BeamWidth candidates, highest score first, and drops
// the rest from the rank table.
func (s *searcher) prune(next []*candidate) []*candidate {
	width := s.opts.BeamWidth
	if len(next) <= width {
		return next
	}
	sort.SliceStable(next, func(i, j int) bool { return next[i].score > next[j].score })
	for _, cand := range next[width:] {
		delete(s.rank, cand.key)
	}
	dropped := len(next) - width
	s.pruned += dropped
	recordPruned(s.opts.Ctx, dropped)
	s.opts.Logger.Debug("placement: frontier pruned",
		slog.Int("kept", width),
		slog.Int("dropped", dropped),
		slog.Int64("best_score", next[0].score),
	)

	return next[:width]
}

func filled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}

	return s
}
