// internal/engine/telemetry.go
package engine

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	tracer = otel.Tracer("invrep.engine")
	meter  = otel.Meter("invrep.engine")
)

var (
	predictLatency  metric.Float64Histogram
	candidatesFound metric.Int64Counter
	optimizeLatency metric.Float64Histogram
	selectedTotal   metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once. They stay no-ops unless a
// meter provider is installed.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error
		predictLatency, err = meter.Float64Histogram(
			"invrep_predict_duration_seconds",
			metric.WithDescription("Duration of one predict call"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
		candidatesFound, err = meter.Int64Counter(
			"invrep_candidates_found_total",
			metric.WithDescription("Candidate inverted repeats produced by predict"),
		)
		if err != nil {
			metricsErr = err
			return
		}
		optimizeLatency, err = meter.Float64Histogram(
			"invrep_optimize_duration_seconds",
			metric.WithDescription("Duration of one optimize call"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
		selectedTotal, err = meter.Int64Counter(
			"invrep_selected_found_total",
			metric.WithDescription("Inverted repeats kept by optimize"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func recordPredict(ctx context.Context, d time.Duration, found int) {
	if err := initMetrics(); err != nil {
		return
	}
	predictLatency.Record(ctx, d.Seconds())
	candidatesFound.Add(ctx, int64(found))
}

func recordOptimize(ctx context.Context, d time.Duration, selected int, ok bool) {
	if err := initMetrics(); err != nil {
		return
	}
	optimizeLatency.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.Bool("success", ok)))
	selectedTotal.Add(ctx, int64(selected))
}
