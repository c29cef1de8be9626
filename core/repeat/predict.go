package repeat

import (
	"fmt"

	"invrep/core/align"
	"invrep/core/scoring"
	"invrep/core/seq"
)

// Options tunes PredictWith.
type Options struct {
	MinScore      int            // keep alignments scoring at least this
	MinMatchesRun int            // longest contiguous Match run required
	Offset        int            // minimum distance between paired positions; raised to 1
	Scheme        scoring.Scheme // nil selects scoring.DefaultNucleotide
}

// DefaultOptions mirrors the command-line defaults.
func DefaultOptions() Options {
	return Options{MinScore: 10, MinMatchesRun: 4, Offset: 1}
}

// Predict finds inverted repeats in s with the default nucleotide scheme.
// The i-th score belongs to the i-th repeat.
func Predict(s []byte, minScore, minMatchesRun int) ([]InvertedRepeat, []int) {
	return PredictWith(s, Options{MinScore: minScore, MinMatchesRun: minMatchesRun, Offset: 1})
}

// PredictWith aligns s against its own reverse over one half of the
// comparison matrix and turns every retained alignment whose longest Match
// run reaches opts.MinMatchesRun into an InvertedRepeat built from its
// Match runs. It panics if a produced repeat is malformed.
func PredictWith(s []byte, opts Options) ([]InvertedRepeat, []int) {
	if len(s) == 0 {
		return nil, nil
	}
	sc := opts.Scheme
	if sc == nil {
		sc = scoring.DefaultNucleotide()
	}
	offset := opts.Offset
	if offset < 1 {
		offset = 1
	}

	fwd := seq.Bytes(s)
	alignments := align.Local(seq.Reverse(fwd), fwd, sc, align.Triangle(offset), align.NewAllOptimal(opts.MinScore))

	var (
		repeats []InvertedRepeat
		scores  []int
	)
	for _, a := range alignments {
		if a.LongestRun(scoring.Match) < opts.MinMatchesRun {
			continue
		}
		ir, err := fromAlignment(a, len(s))
		if err != nil {
			panic(fmt.Sprintf("repeat: alignment %+v: %v", a, err))
		}
		repeats = append(repeats, ir)
		scores = append(scores, a.Score)
	}
	return repeats, scores
}

// fromAlignment maps the Match runs of a (reverse(s) vs s) alignment back
// to s: a run of n at (row, col) pairs [col, col+n) with [L-row-n, L-row).
func fromAlignment(a align.Alignment, n int) (InvertedRepeat, error) {
	var segs []Segment
	r, c := a.Row, a.Col
	for _, st := range a.Steps {
		if st.Op == scoring.Match {
			seg, err := NewSegment(
				Range{Start: c, End: c + st.Len},
				Range{Start: n - r - st.Len, End: n - r},
			)
			if err != nil {
				return InvertedRepeat{}, err
			}
			segs = append(segs, seg)
		}
		dr, dc := st.Op.Consumes()
		r += dr * st.Len
		c += dc * st.Len
	}
	return NewInvertedRepeat(segs)
}
