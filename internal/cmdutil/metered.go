package cmdutil

import (
	"context"
	"time"

	"invrep/internal/engine"
	"invrep/internal/metrics"
	"invrep/internal/pipeline"
)

// Metered wraps a Predictor and times every Predict call.
type Metered struct {
	pipeline.Predictor
	Metrics *metrics.Metrics
}

// Predict forwards to the wrapped Predictor.
func (m Metered) Predict(ctx context.Context, seqID string, seq []byte) []engine.Repeat {
	t0 := time.Now()
	out := m.Predictor.Predict(ctx, seqID, seq)
	m.Metrics.ObservePredict(time.Since(t0))
	return out
}
