package nbest

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
	tracer = otel.Tracer("wordgraph.nbest")
	meter  = otel.Meter("wordgraph.nbest")
)

var (
	searchDuration metric.Float64Histogram
	iterations     metric.Int64Counter
	expansions     metric.Int64Counter
	evictions      metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		searchDuration, err = meter.Float64Histogram(
			"wordgraph_nbest_duration_seconds",
			metric.WithDescription("Duration of k-best searches"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		iterations, err = meter.Int64Counter(
			"wordgraph_nbest_iterations_total",
			metric.WithDescription("Frontier pops across all k-best searches"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		expansions, err = meter.Int64Counter(
			"wordgraph_nbest_expansions_total",
			metric.WithDescription("Partial hypotheses pushed onto the open frontier"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		evictions, err = meter.Int64Counter(
			"wordgraph_nbest_evictions_total",
			metric.WithDescription("Hypotheses dropped by frontier overflow"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

// searchStats is the per-call tally reported to metrics and the span.
type searchStats struct {
	iterations int
	expansions int
	evictions  int
	results    int
}

func recordSearch(ctx context.Context, d time.Duration, st searchStats, canceled bool) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.Bool("canceled", canceled))
	searchDuration.Record(ctx, d.Seconds(), attrs)
	iterations.Add(ctx, int64(st.iterations), attrs)
	expansions.Add(ctx, int64(st.expansions), attrs)
	evictions.Add(ctx, int64(st.evictions), attrs)
}

func startSearchSpan(ctx context.Context, k, stackSize, arcs int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "nbest.Search",
		trace.WithAttributes(
			attribute.Int("nbest.k", k),
			attribute.Int("nbest.stack_size", stackSize),
			attribute.Int("wordgraph.arcs", arcs),
		),
	)
}

func setSearchSpanResult(span trace.Span, st searchStats) {
	span.SetAttributes(
		attribute.Int("nbest.iterations", st.iterations),
		attribute.Int("nbest.expansions", st.expansions),
		attribute.Int("nbest.evictions", st.evictions),
		attribute.Int("nbest.results", st.results),
	)
}
