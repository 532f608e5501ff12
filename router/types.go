// SPDX-License-Identifier: MIT
// Package: qubitmap/router
//
// types.go — options, results and sentinel errors.

package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/qubitmap/circuit"
	"github.com/katalvlaran/qubitmap/layout"
)

// Defaults for the termination guards.
const (
	DefaultMaxAttempts = 1000
	DefaultStallLimit  = 2
)

// Sentinel errors for routing.
var (
	// ErrPrecondition is returned when the input cannot be routed at all:
	// nil input, more than one qubit register, more logical qubits than
	// device qubits, a layout that does not fit, or a two-qubit operation
	// whose operands sit in different connected components.
	ErrPrecondition = errors.New("router: precondition violated")

	// ErrUnroutable is returned when a layer exceeds the attempt ceiling or
	// stalls StallLimit times in a row.
	ErrUnroutable = errors.New("router: layer could not be routed")

	// ErrClbitUnresolved is returned under ClbitByLayout when both steps of
	// the classical-bit resolution land outside the classical register, or
	// when measurements declared on different classical bits resolve to the
	// same one.
	ErrClbitUnresolved = errors.New("router: classical bit unresolved")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("router: invalid option supplied")

	// ErrVerification is returned by Verify when a routed circuit breaks
	// adjacency, per-qubit order or measurement bookkeeping.
	ErrVerification = errors.New("router: verification failed")
)

// ClbitPolicy selects how a measurement's classical bit is chosen.
type ClbitPolicy uint8

const (
	// ClbitDeclared measures logical q on its current site and keeps the
	// classical bit written in the input circuit.
	ClbitDeclared ClbitPolicy = iota

	// ClbitByLayout measures the site q was placed on initially and writes
	// the classical bit of whichever logical qubit sits there now, resolved
	// by ResolveClbit. It assumes logical k is recorded in clbit k.
	ClbitByLayout
)

// String returns "declared" or "layout".
func (p ClbitPolicy) String() string {
	switch p {
	case ClbitDeclared:
		return "declared"
	case ClbitByLayout:
		return "layout"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

// ParseClbitPolicy maps "declared" and "layout" to a policy; "" is
// ClbitDeclared.
func ParseClbitPolicy(s string) (ClbitPolicy, error) {
	switch s {
	case "declared", "":
		return ClbitDeclared, nil
	case "layout":
		return ClbitByLayout, nil
	default:
		return 0, fmt.Errorf("%w: unknown clbit policy %q", ErrOptionViolation, s)
	}
}

// Option configures a Session.
type Option func(*Options)

// Options holds the resolved configuration of one run.
type Options struct {
	// Ctx allows cancellation between layers.
	Ctx context.Context

	// MaxAttempts caps swap rounds per layer; must be ≥ 1.
	MaxAttempts int

	// StallLimit is the number of consecutive rounds without a positive
	// swap tolerated in one layer; must be ≥ 1.
	StallLimit int

	// Clbits selects measurement remapping.
	Clbits ClbitPolicy

	// Logger receives per-layer debug records and fallback warnings.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns the defaults: background context,
// DefaultMaxAttempts, DefaultStallLimit, ClbitDeclared, slog.Default().
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxAttempts: DefaultMaxAttempts,
		StallLimit:  DefaultStallLimit,
		Clbits:      ClbitDeclared,
		Logger:      slog.Default(),
	}
}

// WithContext sets the cancellation context; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxAttempts sets the per-layer attempt ceiling.
// n < 1 is recorded as ErrOptionViolation.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max attempts must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxAttempts = n
	}
}

// WithStallLimit sets how many consecutive stalled rounds abort a layer.
// n < 1 is recorded as ErrOptionViolation.
func WithStallLimit(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: stall limit must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.StallLimit = n
	}
}

// WithClbitPolicy selects measurement remapping.
func WithClbitPolicy(p ClbitPolicy) Option {
	return func(o *Options) {
		if p != ClbitByLayout && p != ClbitDeclared {
			o.err = fmt.Errorf("%w: %s", ErrOptionViolation, p)
			return
		}
		o.Clbits = p
	}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// LayerStats describes the routing of one layer.
type LayerStats struct {
	Index    int // position in circuit.Layers
	Ops      int // operations in the layer
	Blocked  int // two-qubit operations not adjacent on arrival
	Swaps    int // swaps inserted
	Attempts int // swap rounds consumed
	Stalls   int // rounds without a positive swap
}

// Result is the outcome of Route.
type Result struct {
	// Circuit is the routed circuit over the device's physical qubits.
	Circuit *circuit.Circuit

	// Initial and Final are the layouts before the first and after the last layer.
	Initial *layout.Layout
	Final   *layout.Layout

	// Swaps is the number of inserted swaps.
	Swaps int

	// Layers is the number of layers routed.
	Layers int

	// LayerStats holds one entry per layer.
	LayerStats []LayerStats

	// Clbits is the policy the measurements were emitted under.
	Clbits ClbitPolicy
}
