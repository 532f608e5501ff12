// SPDX-License-Identifier: MIT
// Package: qubitmap/placement
//
// types.go — options, result and sentinel errors.

package placement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/qubitmap/layout"
)

// DefaultBeamWidth caps the number of partial mappings kept per round.
const DefaultBeamWidth = 32

// Sentinel errors for placement.
var (
	// ErrNilInput is returned for a nil coupling map or circuit.
	ErrNilInput = errors.New("placement: nil input")

	// ErrCapacity is returned when the circuit has more qubits than the device.
	ErrCapacity = errors.New("placement: circuit larger than device")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("placement: invalid option supplied")
)

// Option configures Place.
type Option func(*Options)

// Options holds the resolved configuration of one Place call.
type Options struct {
	// Ctx allows cancellation between expansion rounds.
	Ctx context.Context

	// BeamWidth caps the frontier; must be ≥ 1.
	BeamWidth int

	// Logger receives debug records about pruning.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns the defaults: background context, DefaultBeamWidth,
// slog.Default().
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		BeamWidth: DefaultBeamWidth,
		Logger:    slog.Default(),
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

// WithBeamWidth sets the frontier cap. w < 1 is recorded as ErrOptionViolation.
func WithBeamWidth(w int) Option {
	return func(o *Options) {
		if w < 1 {
			o.err = fmt.Errorf("%w: beam width must be ≥ 1 (%d)", ErrOptionViolation, w)
			return
		}
		o.BeamWidth = w
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

// Result is the outcome of Place.
type Result struct {
	// Pairs holds one pair per logical qubit, in assignment order.
	Pairs []layout.Pair

	// Score is the cumulative QBN score of the chosen mapping.
	Score int64

	// Candidates is the number of complete mappings ranked at the end.
	Candidates int

	// Pruned counts partial mappings dropped by the beam cap.
	Pruned int

	// Complete is true when the device shortcut returned the identity.
	Complete bool
}

// Layout converts the result into a layout over numPhysical sites.
func (r *Result) Layout(numPhysical int) (*layout.Layout, error) {
	return layout.FromPairs(r.Pairs, len(r.Pairs), numPhysical)
}
