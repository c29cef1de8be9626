// internal/engine/engine.go
package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"invrep/core/optimize"
	"invrep/core/repeat"
	"invrep/core/scoring"
)

// Config holds the scan parameters.
type Config struct {
	MinScore      int
	MinMatchesRun int
	Offset        int

	Match     int
	Mismatch  int
	GapOpen   int
	GapExtend int
}

// DefaultConfig matches repeat.DefaultOptions and scoring.DefaultNucleotide.
func DefaultConfig() Config {
	return Config{
		MinScore:      10,
		MinMatchesRun: 4,
		Offset:        1,
		Match:         1,
		Mismatch:      -2,
		GapOpen:       -5,
		GapExtend:     -2,
	}
}

// Engine is safe for concurrent use: every call owns its scan state.
type Engine struct {
	cfg Config
	log *slog.Logger
}

// New returns an Engine. A nil logger discards output.
func New(c Config, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{cfg: c, log: log}
}

func (e *Engine) options() repeat.Options {
	return repeat.Options{
		MinScore:      e.cfg.MinScore,
		MinMatchesRun: e.cfg.MinMatchesRun,
		Offset:        e.cfg.Offset,
		Scheme: scoring.Compose(
			scoring.Invariant[scoring.Complementary]{Pairs: scoring.Complementary{Match: e.cfg.Match, Mismatch: e.cfg.Mismatch}},
			scoring.Affine{Open: e.cfg.GapOpen, Extend: e.cfg.GapExtend},
		),
	}
}

// Predict returns the candidates found in s, in s's coordinates.
func (e *Engine) Predict(ctx context.Context, seqID string, s []byte) []Repeat {
	ctx, span := tracer.Start(ctx, "invrep.predict", trace.WithAttributes(
		attribute.String("invrep.sequence_id", seqID),
		attribute.Int("invrep.length", len(s)),
	))
	defer span.End()

	start := time.Now()
	irs, scores := repeat.PredictWith(s, e.options())
	out := make([]Repeat, len(irs))
	for i := range irs {
		out[i] = Repeat{InvertedRepeat: irs[i], Score: scores[i]}
	}
	elapsed := time.Since(start)

	span.SetAttributes(attribute.Int("invrep.candidates", len(out)))
	recordPredict(ctx, elapsed, len(out))
	e.log.Debug("predicted", "sequence_id", seqID, "length", len(s),
		"candidates", len(out), "elapsed", elapsed)
	return out
}

// Optimize marks the best-scoring consistent subset of rec's repeats as
// selected and sets rec.Total.
func (e *Engine) Optimize(ctx context.Context, rec *Record) error {
	ctx, span := tracer.Start(ctx, "invrep.optimize", trace.WithAttributes(
		attribute.String("invrep.sequence_id", rec.SequenceID),
		attribute.Int("invrep.candidates", len(rec.Repeats)),
	))
	defer span.End()

	start := time.Now()
	cands := make([]repeat.InvertedRepeat, len(rec.Repeats))
	scores := make([]int, len(rec.Repeats))
	for i, r := range rec.Repeats {
		cands[i] = r.InvertedRepeat
		scores[i] = r.Score
	}
	res, err := optimize.Optimize(cands, scores)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		recordOptimize(ctx, time.Since(start), 0, false)
		return fmt.Errorf("optimize %s: %w", rec.SequenceID, err)
	}

	for i := range rec.Repeats {
		rec.Repeats[i].Selected = false
	}
	for _, id := range res.IDs {
		rec.Repeats[id].Selected = true
	}
	rec.Optimized = true
	rec.Total = res.Score

	elapsed := time.Since(start)
	span.SetAttributes(
		attribute.Int("invrep.selected", len(res.IDs)),
		attribute.Int("invrep.total", res.Score),
	)
	recordOptimize(ctx, elapsed, len(res.IDs), true)
	e.log.Debug("optimized", "sequence_id", rec.SequenceID, "candidates", len(cands),
		"selected", len(res.IDs), "total", res.Score, "windows", res.Windows, "elapsed", elapsed)
	return nil
}
