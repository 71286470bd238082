package prune

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("wordgraph.prune")
	meter  = otel.Meter("wordgraph.prune")
)

var (
	pruneTotal    metric.Int64Counter
	prunedArcs    metric.Int64Counter
	pruneDuration metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		pruneTotal, err = meter.Int64Counter(
			"wordgraph_prune_total",
			metric.WithDescription("Number of prune calls"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		prunedArcs, err = meter.Int64Counter(
			"wordgraph_pruned_arcs_total",
			metric.WithDescription("Arcs marked pruned across all prune calls"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		pruneDuration, err = meter.Float64Histogram(
			"wordgraph_prune_duration_seconds",
			metric.WithDescription("Duration of prune calls"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

func recordPrune(ctx context.Context, d time.Duration, pruned int, reset bool) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.Bool("reset", reset))
	pruneTotal.Add(ctx, 1, attrs)
	prunedArcs.Add(ctx, int64(pruned), attrs)
	pruneDuration.Record(ctx, d.Seconds(), attrs)
}

func startPruneSpan(ctx context.Context, threshold float64, arcs int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "prune.Prune",
		trace.WithAttributes(
			attribute.Float64("prune.threshold", threshold),
			attribute.Int("wordgraph.arcs", arcs),
		),
	)
}
