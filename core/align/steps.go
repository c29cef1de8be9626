package align

import (
	"invrep/core/scoring"
	"invrep/core/seq"
)

// Step is one run-length encoded alignment operation.
type Step struct {
	Op  scoring.Op
	Len int
}

// Seed is a local alignment endpoint in matrix coordinates.
type Seed struct {
	Row   int
	Col   int
	Score int
}

// Alignment is a traced local alignment. Row and Col are the 0-based
// positions of its first symbol in the first and second sequence.
type Alignment struct {
	Row   int
	Col   int
	Score int
	Steps []Step
}

// End returns the exclusive end positions in both sequences.
func (a Alignment) End() (row, col int) {
	row, col = a.Row, a.Col
	for _, s := range a.Steps {
		dr, dc := s.Op.Consumes()
		row += dr * s.Len
		col += dc * s.Len
	}
	return row, col
}

// Mirror is the same alignment seen with the two sequences exchanged.
func (a Alignment) Mirror() Alignment {
	steps := make([]Step, len(a.Steps))
	for i, s := range a.Steps {
		steps[i] = Step{Op: s.Op.Mirror(), Len: s.Len}
	}
	return Alignment{Row: a.Col, Col: a.Row, Score: a.Score, Steps: steps}
}

// LongestRun returns the length of the longest single run of op.
func (a Alignment) LongestRun(op scoring.Op) int {
	best := 0
	for _, s := range a.Steps {
		if s.Op == op && s.Len > best {
			best = s.Len
		}
	}
	return best
}

// appendStep adds n units of op, growing the last run when it has the same op.
func appendStep(steps []Step, op scoring.Op, n int) []Step {
	if n <= 0 {
		return steps
	}
	if k := len(steps); k > 0 && steps[k-1].Op == op {
		steps[k-1].Len += n
		return steps
	}
	return append(steps, Step{Op: op, Len: n})
}

// Coalesce merges adjacent runs with identical ops and drops empty runs.
func Coalesce(steps []Step) []Step {
	out := make([]Step, 0, len(steps))
	for _, s := range steps {
		out = appendStep(out, s.Op, s.Len)
	}
	return out
}

// Disambiguate resolves every Equivalent run of a into concrete Match and
// Mismatch runs by re-scoring each position with sc.
func Disambiguate(a Alignment, s1, s2 seq.Sequence, sc scoring.SymbolScorer) Alignment {
	out := make([]Step, 0, len(a.Steps))
	r, c := a.Row, a.Col
	for _, s := range a.Steps {
		if s.Op != scoring.Equivalent {
			out = appendStep(out, s.Op, s.Len)
			dr, dc := s.Op.Consumes()
			r += dr * s.Len
			c += dc * s.Len
			continue
		}
		for k := 0; k < s.Len; k++ {
			op, _ := sc.Score(r, s1.At(r), c, s2.At(c))
			out = appendStep(out, op, 1)
			r++
			c++
		}
	}
	a.Steps = out
	return a
}
