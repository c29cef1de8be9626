package scoring

// PairScorer is a position-invariant symbol scorer.
type PairScorer interface {
	Pair(a, b byte) (Op, int)
}

// Invariant adapts a PairScorer to SymbolScorer by ignoring positions.
type Invariant[P PairScorer] struct {
	Pairs P
}

func (i Invariant[P]) Score(_ int, a byte, _ int, b byte) (Op, int) {
	return i.Pairs.Pair(a, b)
}

// Exact scores identical symbols as Match.
type Exact struct {
	Match    int
	Mismatch int
}

func (e Exact) Pair(a, b byte) (Op, int) {
	if a == b {
		return Match, e.Match
	}
	return Mismatch, e.Mismatch
}

// Complementary scores Watson-Crick and G-U wobble pairs as Match:
// A-T, A-U, G-C, G-U (either order, case-insensitive).
type Complementary struct {
	Match    int
	Mismatch int
}

var pairs [256][256]bool

func init() {
	set := func(a, b byte) {
		for _, x := range []byte{a, a | 0x20} {
			for _, y := range []byte{b, b | 0x20} {
				pairs[x][y] = true
				pairs[y][x] = true
			}
		}
	}
	set('A', 'T')
	set('A', 'U')
	set('G', 'C')
	set('G', 'U')
}

// Pairs reports whether a and b are complementary.
func Pairs(a, b byte) bool { return pairs[a][b] }

func (c Complementary) Pair(a, b byte) (Op, int) {
	if pairs[a][b] {
		return Match, c.Match
	}
	return Mismatch, c.Mismatch
}
