// SPDX-License-Identifier: MIT
// Package: qubitmap/router
//
// session.go — Session construction, per-layer routing and Route.
//
// Contract:
//   • A Session is single-writer; it is not safe for concurrent use.
//   • The current layout and the emitted swaps change in lockstep.
//   • The input circuit and the initial layout are never mutated.

package router

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/qubitmap/circuit"
	"github.com/katalvlaran/qubitmap/coupling"
	"github.com/katalvlaran/qubitmap/layout"
)

// Session holds the state of one routing run: the current layout, the
// per-qubit dependency queues and the output built so far.
//
// Within a layer a swap is not re-selected once applied, except that a
// stalled round clears the used set before retrying (see RouteLayer).
// WithStallLimit(1) disables the retry.
type Session struct {
	cm   *coupling.Map
	in   *circuit.Circuit
	opts Options
	dist [][]int

	initial *layout.Layout
	current *layout.Layout

	// queues[q] lists the pending two-qubit operations on logical q, in
	// circuit.Order.
	queues [][]int

	out    *circuit.Circuit
	swaps  int
	layers int
	stats  []LayerStats

	// claimed maps a resolved classical bit to the declared one of the
	// first measurement written into it; ClbitByLayout only.
	claimed map[int]int
}

// NewSession checks the preconditions and prepares a run of c on cm starting
// from initial. initial must cover c.NumQubits() logical and cm.Size()
// physical qubits. Options are applied before any argument is inspected.
//
// Rationale:
//   - All fatal conditions surface here, before any output is built, so a
//     failed run never returns a partial circuit.
//   - Two-qubit operations spanning disconnected sites are rejected up front
//     instead of exhausting the attempt ceiling later.
//
// Complexity:
//   - O(V·(V+E)) for the distance table, plus O(N) over the operations.
//
// Concurrency:
//   - The returned Session is single-writer. initial and c are copied or only
//     read, so the caller may reuse them.
//
// Errors:
//   - ErrOptionViolation for an invalid Option.
//   - ErrPrecondition for nil input, a register or capacity mismatch, an
//     invalid layout or an unreachable two-qubit operation.
func NewSession(cm *coupling.Map, c *circuit.Circuit, initial *layout.Layout, opts ...Option) (*Session, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if cm == nil || c == nil || initial == nil {
		return nil, fmt.Errorf("NewSession: nil input: %w", ErrPrecondition)
	}
	if len(c.QRegs) != 1 {
		return nil, fmt.Errorf("NewSession: %d qubit registers, want 1: %w", len(c.QRegs), ErrPrecondition)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("NewSession: %v: %w", err, ErrPrecondition)
	}
	n, m := c.NumQubits(), cm.Size()
	if n > m {
		return nil, fmt.Errorf("NewSession: %d logical > %d physical: %w", n, m, ErrPrecondition)
	}
	if initial.NumLogical() != n || initial.NumPhysical() != m {
		return nil, fmt.Errorf("NewSession: layout %d/%d, circuit %d, device %d: %w",
			initial.NumLogical(), initial.NumPhysical(), n, m, ErrPrecondition)
	}
	if err := initial.Validate(); err != nil {
		return nil, fmt.Errorf("NewSession: %v: %w", err, ErrPrecondition)
	}

	s := &Session{
		cm:      cm,
		in:      c,
		opts:    o,
		dist:    cm.DistanceTable(),
		initial: initial.Clone(),
		current: initial.Clone(),
		queues:  make([][]int, n),
		out:     c.EmptyLike(m),
		claimed: make(map[int]int),
	}
	for _, idx := range c.TwoQubitOps() {
		a, b := c.Ops[idx].Qubits[0], c.Ops[idx].Qubits[1]
		if s.dist[initial.Physical(a)][initial.Physical(b)] == coupling.Unreachable {
			return nil, fmt.Errorf("NewSession: op %d %s(%d,%d) spans disconnected sites: %w",
				idx, c.Ops[idx].Name, a, b, ErrPrecondition)
		}
		s.queues[a] = append(s.queues[a], idx)
		s.queues[b] = append(s.queues[b], idx)
	}

	return s, nil
}

// Layout returns a copy of the current layout.
func (s *Session) Layout() *layout.Layout { return s.current.Clone() }

// Circuit returns the output built so far. The caller must not modify it
// while the session is in use.
func (s *Session) Circuit() *circuit.Circuit { return s.out }

// Swaps returns the number of swaps inserted so far.
func (s *Session) Swaps() int { return s.swaps }

// Pending returns a copy of logical q's dependency queue.
func (s *Session) Pending(q int) []int {
	if q < 0 || q >= len(s.queues) {
		return nil
	}

	return append([]int(nil), s.queues[q]...)
}

// RouteLayer routes one layer of operation indices. Layers must be supplied
// in circuit.Layers order.
//
// Single-qubit ops, barriers and measurements are emitted first, then every
// adjacent two-qubit op. The rest form the active list, and rounds of
// "flush, pick the best harmless swap, apply" run until it is empty. A swap
// applied in this layer is not offered again; when a round finds no positive
// swap (a stall) that used set is cleared and the round retried, up to
// StallLimit consecutive stalls. With StallLimit 1 the used set is never
// cleared and the first stall aborts the layer.
//
// Rationale:
//   - Layer-at-a-time routing lets tests drive and inspect a single layer.
//   - Attempt and stall guards turn non-termination into ErrUnroutable.
//
// Complexity:
//   - O(R·A·Δ·Q) for R rounds, A active ops, maximum degree Δ and queue
//     length Q; R ≤ MaxAttempts.
//
// Concurrency:
//   - Not safe for concurrent use; mutates the session layout and queues.
//
// Errors:
//   - ErrUnroutable when MaxAttempts or StallLimit is exceeded.
//   - ErrClbitUnresolved under ClbitByLayout (see ResolveClbit).
func (s *Session) RouteLayer(layer []int) (LayerStats, error) {
	st := LayerStats{Index: s.layers, Ops: len(layer)}

	var active []int
	for _, idx := range layer {
		if s.in.Ops[idx].Kind == circuit.KindTwo {
			if s.adjacent(idx) {
				s.emitTwo(idx)
			} else {
				active = append(active, idx)
			}
			continue
		}
		if err := s.emitDirect(idx); err != nil {
			return st, fmt.Errorf("RouteLayer %d: %w", st.Index, err)
		}
	}
	st.Blocked = len(active)

	used := make(map[coupling.Edge]struct{})
	stalls := 0
	for {
		active = s.flush(active)
		if len(active) == 0 {
			break
		}
		if st.Attempts >= s.opts.MaxAttempts {
			return st, fmt.Errorf("RouteLayer %d: %d active after %d attempts: %w",
				st.Index, len(active), st.Attempts, ErrUnroutable)
		}
		st.Attempts++

		sw, ok := s.bestSwap(active, used)
		if !ok {
			st.Stalls++
			stalls++
			if stalls >= s.opts.StallLimit {
				return st, fmt.Errorf("RouteLayer %d: stalled %d times with %d active: %w",
					st.Index, stalls, len(active), ErrUnroutable)
			}
			clear(used)
			continue
		}
		stalls = 0
		s.applySwap(sw)
		used[sw.Canonical()] = struct{}{}
		st.Swaps++
	}

	s.layers++
	s.stats = append(s.stats, st)
	recordLayer(s.opts.Ctx, st)
	s.opts.Logger.Debug("router: layer routed",
		slog.Int("layer", st.Index),
		slog.Int("ops", st.Ops),
		slog.Int("blocked", st.Blocked),
		slog.Int("swaps", st.Swaps),
		slog.Int("attempts", st.Attempts),
	)

	return st, nil
}

// Result returns the outcome so far.
func (s *Session) Result() *Result {
	return &Result{
		Circuit:    s.out,
		Initial:    s.initial.Clone(),
		Final:      s.current.Clone(),
		Swaps:      s.swaps,
		Layers:     s.layers,
		LayerStats: append([]LayerStats(nil), s.stats...),
		Clbits:     s.opts.Clbits,
	}
}

// Route routes every layer of c on cm starting from initial and returns the
// routed circuit with the final layout.
//
// Rationale:
//   - Thin driver over NewSession and RouteLayer; the span and the metrics
//     are recorded here and per layer.
//
// Complexity:
//   - O(V·(V+E)) setup plus the sum of RouteLayer costs over all layers.
//
// Concurrency:
//   - Each call owns its Session; concurrent calls on shared read-only
//     inputs are safe.
//
// Errors:
//   - Everything NewSession and RouteLayer return, wrapped as "Route: %w".
//   - The context error if Ctx is cancelled between layers.
func Route(cm *coupling.Map, c *circuit.Circuit, initial *layout.Layout, opts ...Option) (*Result, error) {
	s, err := NewSession(cm, c, initial, opts...)
	if err != nil {
		return nil, fmt.Errorf("Route: %w", err)
	}

	ctx, span := tracer.Start(s.opts.Ctx, "router.Route",
		trace.WithAttributes(
			attribute.Int("logical_qubits", c.NumQubits()),
			attribute.Int("physical_qubits", cm.Size()),
			attribute.Int("ops", c.Len()),
		))
	defer span.End()
	s.opts.Ctx = ctx

	for _, layer := range c.Layers() {
		if err = ctx.Err(); err != nil {
			break
		}
		if _, err = s.RouteLayer(layer); err != nil {
			break
		}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("Route: %w", err)
	}
	span.SetAttributes(
		attribute.Int("swaps", s.swaps),
		attribute.Int("layers", s.layers),
	)

	return s.Result(), nil
}

// adjacent reports whether op idx currently acts on neighbouring sites.
func (s *Session) adjacent(idx int) bool {
	q := s.in.Ops[idx].Qubits
	return s.dist[s.current.Physical(q[0])][s.current.Physical(q[1])] == 1
}

// flush emits every now-adjacent operation of active and returns the rest.
func (s *Session) flush(active []int) []int {
	rest := active[:0]
	for _, idx := range active {
		if s.adjacent(idx) {
			s.emitTwo(idx)
			continue
		}
		rest = append(rest, idx)
	}

	return rest
}

// emitTwo appends two-qubit op idx on its current sites and pops it from both
// operands' queues.
func (s *Session) emitTwo(idx int) {
	op := s.in.Ops[idx].Clone()
	for i, q := range op.Qubits {
		s.queues[q] = pop(s.queues[q], idx)
		op.Qubits[i] = s.current.Physical(q)
	}
	s.out.Ops = append(s.out.Ops, op)
}

// emitDirect appends a single-qubit, barrier or measurement op remapped
// through the current layout. Under ClbitByLayout a measurement stays on
// its initial site instead and takes the classical bit from ResolveClbit.
func (s *Session) emitDirect(idx int) error {
	op := s.in.Ops[idx].Clone()
	if op.Kind == circuit.KindMeasure && s.opts.Clbits == ClbitByLayout {
		q, declared := op.Qubits[0], op.Clbits[0]
		cl, fallback, err := ResolveClbit(q, s.initial, s.current, s.in.NumClbits())
		if err != nil {
			return fmt.Errorf("op %d: %w", idx, err)
		}
		if fallback {
			s.opts.Logger.Warn("router: measurement clbit resolved by fallback",
				slog.Int("op", idx),
				slog.Int("qubit", q),
				slog.Int("clbit", cl),
			)
		}
		if prev, ok := s.claimed[cl]; ok && prev != declared {
			return fmt.Errorf("op %d: qubit %d resolved to clbit %d, already written for clbit %d: %w",
				idx, q, cl, prev, ErrClbitUnresolved)
		}
		s.claimed[cl] = declared
		op.Qubits[0] = s.initial.Physical(q)
		op.Clbits[0] = cl
		s.out.Ops = append(s.out.Ops, op)

		return nil
	}
	for i, q := range op.Qubits {
		op.Qubits[i] = s.current.Physical(q)
	}
	s.out.Ops = append(s.out.Ops, op)

	return nil
}

// applySwap exchanges the logical qubits at sw's sites and emits the swap.
func (s *Session) applySwap(sw coupling.Edge) {
	// both sites are in range: they come from the device adjacency
	_ = s.current.Swap(sw.A, sw.B)
	s.out.Ops = append(s.out.Ops, circuit.Operation{
		Name:     circuit.NameSwap,
		Kind:     circuit.KindTwo,
		Qubits:   []int{sw.A, sw.B},
		Inserted: true,
	})
	s.swaps++
}

// pop removes idx from queue, normally its head.
func pop(queue []int, idx int) []int {
	for i, v := range queue {
		if v != idx {
			continue
		}
		if i == 0 {
			return queue[1:]
		}
		return append(queue[:i], queue[i+1:]...)
	}

	return queue
}
