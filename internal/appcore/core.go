// Package appcore runs one command end to end: input, engine, writer, and
// the mapping of outcomes to exit codes.
package appcore

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"

	"invrep/internal/candidates"
	"invrep/internal/cmdutil"
	"invrep/internal/config"
	"invrep/internal/engine"
	"invrep/internal/metrics"
	"invrep/internal/pipeline"
	"invrep/internal/runutil"
	"invrep/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitFailure  = 3
	ExitCanceled = 130
)

// Options describe one run.
type Options struct {
	SeqFiles []string

	// Candidates names a jsonl file of precomputed repeats; when set,
	// SeqFiles is ignored.
	Candidates string

	Optimize bool
	Pretty   bool

	Config  config.Config
	RunID   string
	Command string
}

// Run executes o and returns the process exit code.
func Run(parent context.Context, stdout io.Writer, o Options, log *slog.Logger) int {
	cfg := o.Config
	outw := bufio.NewWriter(stdout)

	chunkSize, overlap, warns := runutil.ValidateChunking(cfg.Run.ChunkSize, cfg.Run.Overlap)
	for _, w := range warns {
		log.Warn(w)
	}
	thr := runutil.EffectiveThreads(cfg.Run.Threads)

	var preloaded []engine.Record
	if o.Candidates != "" {
		recs, err := candidates.ReadPath(parent, o.Candidates)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return ExitCanceled
			}
			log.Error("read candidates", "err", err)
			return ExitUsage
		}
		preloaded = recs
	}

	eng := engine.New(engine.Config{
		MinScore:      cfg.Scan.MinScore,
		MinMatchesRun: cfg.Scan.MinMatchesRun,
		Offset:        cfg.Scan.Offset,
		Match:         cfg.Scan.Match,
		Mismatch:      cfg.Scan.Mismatch,
		GapOpen:       cfg.Scan.GapOpen,
		GapExtend:     cfg.Scan.GapExtend,
	}, log)
	m := metrics.New()
	pred := cmdutil.Metered{Predictor: eng, Metrics: m}

	wf := NewRecordWriterFactory(cfg.Output, o.Pretty, o.RunID, o.Command)
	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	send := func(rec engine.Record) error {
		m.ObserveRecord(len(rec.Repeats), len(rec.Selected()))
		log.Debug("record done",
			"sequence_id", rec.SequenceID,
			"length", rec.Length,
			"candidates", len(rec.Repeats),
			"total", rec.Total,
		)
		select {
		case inCh <- rec:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	var (
		total int
		perr  error
	)
	if o.Candidates != "" {
		total, perr = cmdutil.RunRecords(ctx, preloaded, pred, o.Optimize, send)
	} else {
		total, perr = cmdutil.RunStream(ctx, pipeline.Config{
			Threads:   thr,
			ChunkSize: chunkSize,
			Overlap:   overlap,
			DedupeCap: cfg.Run.DedupeCap,
			Optimize:  o.Optimize,
			NeedSeq:   wf.NeedSeq(),
		}, o.SeqFiles, pred, send)
	}

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		log.Error("write output", "err", werr)
		return ExitFailure
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		log.Error("flush output", "err", e)
		return ExitFailure
	}

	if err := m.WriteTextfile(cfg.Metrics.File); err != nil {
		log.Error("write metrics", "file", cfg.Metrics.File, "err", err)
		return ExitFailure
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitCanceled
		}
		log.Error("run failed", "err", perr)
		return ExitFailure
	}
	log.Info("run complete", "reported", total)
	if total == 0 {
		return cfg.Run.NoMatchExitCode
	}
	return ExitOK
}
