// SPDX-License-Identifier: MIT
// Package: qubitmap/router
//
// metrics.go — OpenTelemetry instruments, created on first use.

package router

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	tracer = otel.Tracer("qubitmap.router")
	meter  = otel.Meter("qubitmap.router")
)

var (
	swapsTotal       metric.Int64Counter
	layersTotal      metric.Int64Counter
	attemptsPerLayer metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		swapsTotal, err = meter.Int64Counter(
			"qubitmap_router_swaps_total",
			metric.WithDescription("Swaps inserted by routing"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		layersTotal, err = meter.Int64Counter(
			"qubitmap_router_layers_total",
			metric.WithDescription("Layers routed"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		attemptsPerLayer, err = meter.Int64Histogram(
			"qubitmap_router_attempts_per_layer",
			metric.WithDescription("Swap rounds consumed per layer"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordLayer records the counters of one routed layer.
func recordLayer(ctx context.Context, st LayerStats) {
	if err := initMetrics(); err != nil {
		return
	}
	layersTotal.Add(ctx, 1)
	swapsTotal.Add(ctx, int64(st.Swaps))
	attemptsPerLayer.Record(ctx, int64(st.Attempts))
}
