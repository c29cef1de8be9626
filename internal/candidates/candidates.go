// Package candidates loads precomputed repeats (the jsonl output of the
// predict command) so they can be optimized without scanning again.
package candidates

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"invrep/core/fasta"
	"invrep/core/repeat"
	"invrep/internal/engine"
	"invrep/pkg/api"
)

const maxLine = 16 << 20

// ReadPath opens path (plain, gzip, or "-" for stdin) and calls Read.
func ReadPath(ctx context.Context, path string) ([]engine.Record, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	recs, err := Read(ctx, rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Read decodes one api.RepeatV1 per line and groups the repeats by
// (source file, sequence id), in order of first appearance. Blank lines
// and lines starting with '#' are skipped. Record lengths are the largest
// repeat end seen.
func Read(ctx context.Context, r io.Reader) ([]engine.Record, error) {
	type key struct{ file, id string }
	var (
		out   []engine.Record
		index = map[key]int{}
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLine)
	line := 0
	for sc.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		var v api.RepeatV1
		if err := json.Unmarshal([]byte(text), &v); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rep, err := FromAPI(v)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		k := key{v.SourceFile, v.SequenceID}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, engine.Record{SequenceID: v.SequenceID, SourceFile: v.SourceFile})
		}
		out[i].Repeats = append(out[i].Repeats, rep)
		if end := rep.Bounds().End; end > out[i].Length {
			out[i].Length = end
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FromAPI rebuilds a repeat from its wire form. Selection flags are
// dropped; the bounds must agree with the segments.
func FromAPI(v api.RepeatV1) (engine.Repeat, error) {
	if v.SequenceID == "" {
		return engine.Repeat{}, fmt.Errorf("%w: missing sequence_id", repeat.ErrInvariantViolation)
	}
	segs := make([]repeat.Segment, 0, len(v.Segments))
	for _, s := range v.Segments {
		segs = append(segs, repeat.Segment{
			Left:  repeat.Range{Start: s.LeftStart, End: s.LeftEnd},
			Right: repeat.Range{Start: s.RightStart, End: s.RightEnd},
		})
	}
	ir, err := repeat.NewInvertedRepeat(segs)
	if err != nil {
		return engine.Repeat{}, err
	}
	if b := ir.Bounds(); b.Start < 0 || (v.End != 0 && (b.Start != v.Start || b.End != v.End)) {
		return engine.Repeat{}, fmt.Errorf("%w: bounds [%d,%d) disagree with segments %v",
			repeat.ErrInvariantViolation, v.Start, v.End, ir)
	}
	return engine.Repeat{InvertedRepeat: ir, Score: v.Score}, nil
}
