// SPDX-License-Identifier: MIT
// Package: qubitmap/transpile
//
// transpile.go — placement → layout application → routing.

package transpile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/qubitmap/circuit"
	"github.com/katalvlaran/qubitmap/coupling"
	"github.com/katalvlaran/qubitmap/layout"
	"github.com/katalvlaran/qubitmap/placement"
	"github.com/katalvlaran/qubitmap/router"
)

var tracer = otel.Tracer("qubitmap.transpile")

// Sentinel errors for the pipeline.
var (
	// ErrNilInput is returned for a nil coupling map or circuit.
	ErrNilInput = errors.New("transpile: nil input")

	// ErrCapacity is returned when the circuit does not fit the device.
	ErrCapacity = errors.New("transpile: number of qubits greater than device")
)

// Options configures Run. The zero value runs placement and routing with
// their defaults.
type Options struct {
	// Placement options are forwarded to placement.Place.
	Placement []placement.Option

	// Router options are forwarded to router.Route.
	Router []router.Option

	// Trivial skips placement and starts from the identity layout.
	Trivial bool

	// Verify runs router.Verify on the routed circuit.
	Verify bool

	// Logger, when set, is handed to both stages before their own options.
	Logger *slog.Logger
}

// Result bundles the outcome of every stage.
type Result struct {
	// Placement is nil when Options.Trivial is set.
	Placement *placement.Result

	// Routed holds the output circuit and the initial and final layouts.
	Routed *router.Result
}

// Circuit returns the routed circuit.
func (r *Result) Circuit() *circuit.Circuit { return r.Routed.Circuit }

// ApplyLayout checks capacity and expands pairs into a layout over every
// device qubit, padding the unused sites with ancillas.
func ApplyLayout(cm *coupling.Map, c *circuit.Circuit, pairs []layout.Pair) (*layout.Layout, error) {
	if cm == nil || c == nil {
		return nil, ErrNilInput
	}
	if c.NumQubits() > cm.Size() {
		return nil, fmt.Errorf("ApplyLayout: %d > %d: %w", c.NumQubits(), cm.Size(), ErrCapacity)
	}
	l, err := layout.FromPairs(pairs, c.NumQubits(), cm.Size())
	if err != nil {
		return nil, fmt.Errorf("ApplyLayout: %w", err)
	}

	return l, nil
}

// Run maps c onto cm.
//
// Errors: ErrNilInput, ErrCapacity, and whatever placement or routing return
// (wrapped; test with errors.Is against their sentinels).
func Run(ctx context.Context, cm *coupling.Map, c *circuit.Circuit, opts Options) (*Result, error) {
	if cm == nil || c == nil {
		return nil, ErrNilInput
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := tracer.Start(ctx, "transpile.Run")
	defer span.End()

	res, err := run(ctx, cm, c, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.Bool("trivial", opts.Trivial),
		attribute.Int("swaps", res.Routed.Swaps),
	)

	return res, nil
}

func run(ctx context.Context, cm *coupling.Map, c *circuit.Circuit, opts Options) (*Result, error) {
	if c.NumQubits() > cm.Size() {
		return nil, fmt.Errorf("Run: %d > %d: %w", c.NumQubits(), cm.Size(), ErrCapacity)
	}

	res := &Result{}
	var pairs []layout.Pair
	if opts.Trivial {
		pairs = make([]layout.Pair, c.NumQubits())
		for q := range pairs {
			pairs[q] = layout.Pair{Logical: q, Physical: q}
		}
	} else {
		popts := []placement.Option{placement.WithContext(ctx)}
		if opts.Logger != nil {
			popts = append(popts, placement.WithLogger(opts.Logger))
		}
		placed, err := placement.Place(cm, c, append(popts, opts.Placement...)...)
		if err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
		res.Placement = placed
		pairs = placed.Pairs
	}

	initial, err := ApplyLayout(cm, c, pairs)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	ropts := []router.Option{router.WithContext(ctx)}
	if opts.Logger != nil {
		ropts = append(ropts, router.WithLogger(opts.Logger))
	}
	routed, err := router.Route(cm, c, initial, append(ropts, opts.Router...)...)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	res.Routed = routed

	if opts.Verify {
		if err = router.Verify(cm, c, routed); err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
	}

	return res, nil
}
