// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"invrep/core/fasta"
	"invrep/internal/engine"
	"invrep/internal/runutil"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads   int  // worker goroutines (>=1)
	ChunkSize int  // FASTA window; 0 disables chunking
	Overlap   int  // overlap between consecutive windows
	DedupeCap int  // per-record duplicate filter bound; 0 selects the default
	Optimize  bool // run selection on every record before visiting it
	NeedSeq   bool // fill Record.Seq
}

// Predictor finds candidates in one window and selects among a record's
// candidates.
type Predictor interface {
	Predict(ctx context.Context, seqID string, seq []byte) []engine.Repeat
	Optimize(ctx context.Context, rec *engine.Record) error
}

// pending collects the chunk results of one record.
type pending struct {
	id      string
	file    string
	length  int
	parts   [][]engine.Repeat
	offsets []int
	seq     []byte // nil unless the sequence is kept
	step    int    // distance between consecutive window starts
	left    atomic.Int32
	done    chan struct{}
}

func newPending(c fasta.Chunk, file string, chunks, step int, needSeq bool) *pending {
	p := &pending{
		id:      c.RecordID,
		file:    file,
		length:  c.RecordLen,
		parts:   make([][]engine.Repeat, chunks),
		offsets: make([]int, chunks),
		step:    step,
		done:    make(chan struct{}),
	}
	if needSeq {
		p.seq = make([]byte, c.RecordLen)
	}
	p.left.Store(int32(chunks))
	return p
}

// finish stores one window's result. Each window copies only the bases up
// to the next window start, so concurrent copies never overlap.
func (p *pending) finish(c fasta.Chunk, found []engine.Repeat) {
	p.parts[c.Index] = found
	p.offsets[c.Index] = c.Offset
	if p.seq != nil {
		part := c.Seq
		if !c.Last && p.step < len(part) {
			part = part[:p.step]
		}
		copy(p.seq[c.Offset:], part)
	}
	if p.left.Add(-1) == 0 {
		close(p.done)
	}
}

// merge shifts chunk-local repeats into record coordinates and keeps the
// first occurrence of each distinct repeat.
func (p *pending) merge(dedupeCap int) engine.Record {
	rec := engine.Record{SequenceID: p.id, SourceFile: p.file, Length: p.length, Seq: p.seq}
	seen := runutil.NewLRUSet[string](dedupeCap)
	for i, part := range p.parts {
		for _, r := range part {
			r.Shift(p.offsets[i])
			if seen.Add(r.String()) {
				continue
			}
			rec.Repeats = append(rec.Repeats, r)
		}
	}
	return rec
}

type job struct {
	rec   *pending
	chunk fasta.Chunk
}

// ForEachRecord scans seqFiles in order and calls visit once per FASTA
// record, in input order, including records without candidates. It stops
// at the first error: an unreadable file, a Predictor or visit failure, or
// ctx cancellation.
func ForEachRecord(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	pred Predictor,
	visit func(engine.Record) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan job, cfg.Threads*2)
	records := make(chan *pending, cfg.Threads*2)

	// Feed work
	g.Go(func() error {
		defer close(records)
		defer close(jobs)
		var cur *pending
		for _, fa := range seqFiles {
			err := fasta.ScanPath(gctx, fa, cfg.ChunkSize, cfg.Overlap, func(c fasta.Chunk) error {
				if c.Index == 0 {
					chunks := len(fasta.Windows(c.RecordLen, cfg.ChunkSize, cfg.Overlap))
					cur = newPending(c, fa, chunks, cfg.ChunkSize-cfg.Overlap, cfg.NeedSeq)
					select {
					case records <- cur:
					case <-gctx.Done():
						return gctx.Err()
					}
				}
				select {
				case jobs <- job{rec: cur, chunk: c}:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
			if err != nil {
				return fmt.Errorf("%s: %w", fa, err)
			}
		}
		return nil
	})

	// Workers
	for w := 0; w < cfg.Threads; w++ {
		g.Go(func() error {
			for j := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}
				j.rec.finish(j.chunk, pred.Predict(gctx, j.chunk.ID(), j.chunk.Seq))
			}
			return nil
		})
	}

	// Collector
	g.Go(func() error {
		for p := range records {
			select {
			case <-p.done:
			case <-gctx.Done():
				return gctx.Err()
			}
			rec := p.merge(cfg.DedupeCap)
			if cfg.Optimize {
				if err := pred.Optimize(gctx, &rec); err != nil {
					return err
				}
			}
			if err := visit(rec); err != nil {
				return err
			}
		}
		return nil
	})

	return g.Wait()
}
