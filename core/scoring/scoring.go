// Package scoring classifies symbol pairs and prices gaps for the aligner.
//
// A Scheme is the composition of an independent SymbolScorer and GapScorer;
// any symbol scorer works with any gap scorer (see Compose).
package scoring

import "fmt"

// Op is the operation of one alignment step.
type Op uint8

const (
	GapFirst   Op = iota // consumes the first sequence only (vertical move)
	GapSecond            // consumes the second sequence only (horizontal move)
	Match
	Mismatch
	Equivalent // Match or Mismatch, not yet resolved
)

func (o Op) String() string {
	switch o {
	case GapFirst:
		return "gap1"
	case GapSecond:
		return "gap2"
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	case Equivalent:
		return "equiv"
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}

// Consumes reports how many symbols of the first and second sequence one
// unit of o advances over.
func (o Op) Consumes() (first, second int) {
	switch o {
	case GapFirst:
		return 1, 0
	case GapSecond:
		return 0, 1
	default:
		return 1, 1
	}
}

// Mirror swaps the gap ops, which is what exchanging the two sequences does.
func (o Op) Mirror() Op {
	switch o {
	case GapFirst:
		return GapSecond
	case GapSecond:
		return GapFirst
	}
	return o
}

// SymbolScorer classifies a pair of symbols at absolute positions and scores it.
type SymbolScorer interface {
	Score(pos1 int, a byte, pos2 int, b byte) (Op, int)
}

// GapScorer prices gaps. First(pos) is the (open, extend) score of a step
// that consumes position pos of the first sequence against a gap; Second is
// the same for the second sequence. Penalties are negative: a gap of length
// L opened at p scores open + extend*(L-1).
type GapScorer interface {
	First(pos int) (open, extend int)
	Second(pos int) (open, extend int)
}

// Scheme is the capability the scanner needs.
type Scheme interface {
	SymbolScorer
	GapScorer
}

// Composed joins a symbol scorer and a gap scorer into a Scheme.
type Composed[S SymbolScorer, G GapScorer] struct {
	Symbols S
	Gaps    G
}

// Compose builds a Scheme out of any symbol scorer and any gap scorer.
func Compose[S SymbolScorer, G GapScorer](s S, g G) Composed[S, G] {
	return Composed[S, G]{Symbols: s, Gaps: g}
}

func (c Composed[S, G]) Score(pos1 int, a byte, pos2 int, b byte) (Op, int) {
	return c.Symbols.Score(pos1, a, pos2, b)
}

func (c Composed[S, G]) First(pos int) (int, int)  { return c.Gaps.First(pos) }
func (c Composed[S, G]) Second(pos int) (int, int) { return c.Gaps.Second(pos) }

// DefaultNucleotide is the scheme used for inverted-repeat detection:
// complementarity +1/-2, gap open -5, gap extend -2.
func DefaultNucleotide() Composed[Invariant[Complementary], Affine] {
	return Compose(Invariant[Complementary]{Pairs: Complementary{Match: 1, Mismatch: -2}}, Affine{Open: -5, Extend: -2})
}
