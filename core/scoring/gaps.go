package scoring

// Affine is a position-invariant gap scorer used for both sequences.
type Affine struct {
	Open   int
	Extend int
}

func (a Affine) First(int) (int, int)  { return a.Open, a.Extend }
func (a Affine) Second(int) (int, int) { return a.Open, a.Extend }

// Cost is one position's gap price.
type Cost struct {
	Open   int
	Extend int
}

// Positional prices gaps per position of each sequence. Positions past the
// end of a table fall back to Default.
type Positional struct {
	FirstCosts  []Cost
	SecondCosts []Cost
	Default     Cost
}

func (p Positional) First(pos int) (int, int) {
	if pos >= 0 && pos < len(p.FirstCosts) {
		c := p.FirstCosts[pos]
		return c.Open, c.Extend
	}
	return p.Default.Open, p.Default.Extend
}

func (p Positional) Second(pos int) (int, int) {
	if pos >= 0 && pos < len(p.SecondCosts) {
		c := p.SecondCosts[pos]
		return c.Open, c.Extend
	}
	return p.Default.Open, p.Default.Extend
}
