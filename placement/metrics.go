// SPDX-License-Identifier: MIT
// Package: qubitmap/placement
//
// metrics.go — OpenTelemetry instruments. Without an installed provider the
// global tracer and meter are no-ops.

package placement

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	tracer = otel.Tracer("qubitmap.placement")
	meter  = otel.Meter("qubitmap.placement")
)

var (
	frontierWidth metric.Int64Histogram
	prunedTotal   metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		frontierWidth, err = meter.Int64Histogram(
			"qubitmap_placement_frontier_width",
			metric.WithDescription("Partial mappings alive after each expansion round"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		prunedTotal, err = meter.Int64Counter(
			"qubitmap_placement_pruned_total",
			metric.WithDescription("Partial mappings dropped by the beam cap"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func recordFrontier(ctx context.Context, width int) {
	if err := initMetrics(); err != nil {
		return
	}
	frontierWidth.Record(ctx, int64(width))
}

func recordPruned(ctx context.Context, n int) {
	if err := initMetrics(); err != nil {
		return
	}
	prunedTotal.Add(ctx, int64(n))
}
