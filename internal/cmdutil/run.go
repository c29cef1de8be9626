package cmdutil

import (
	"context"

	"invrep/internal/engine"
	"invrep/internal/output"
	"invrep/internal/pipeline"
)

// Reported counts the repeats a default writer prints for rec.
func Reported(rec engine.Record) int { return len(output.Visible(rec, false)) }

// RunStream runs the shared pipeline and streams every record via send.
// It returns the number of reported repeats and the first error encountered.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	seqFiles []string,
	pred pipeline.Predictor,
	send func(engine.Record) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachRecord(ctx, cfg, seqFiles, pred, func(rec engine.Record) error {
		if err := send(rec); err != nil {
			return err
		}
		total += Reported(rec)
		return nil
	})
	return total, err
}

// RunRecords is RunStream for records that already carry candidates. With
// optimize set each record goes through selection first.
func RunRecords(
	ctx context.Context,
	recs []engine.Record,
	pred pipeline.Predictor,
	optimize bool,
	send func(engine.Record) error,
) (int, error) {
	total := 0
	for i := range recs {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		rec := recs[i]
		if optimize {
			if err := pred.Optimize(ctx, &rec); err != nil {
				return total, err
			}
		}
		if err := send(rec); err != nil {
			return total, err
		}
		total += Reported(rec)
	}
	return total, nil
}
