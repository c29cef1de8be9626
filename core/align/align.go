package align

import (
	"invrep/core/scoring"
	"invrep/core/seq"
)

// Local scans s1 against s2, traces every seed the storage keeps, lets the
// storage collapse the traced set when it wants to, and resolves the
// Equivalent runs into Match and Mismatch runs.
func Local(s1, s2 seq.Sequence, sc scoring.Scheme, region Region, store Storage) []Alignment {
	m := NewTraceMatrix()
	Scan(s1, s2, sc, region, Fanout{m, store})

	seeds := store.Seeds()
	out := make([]Alignment, 0, len(seeds))
	for _, s := range seeds {
		out = append(out, m.Trace(s))
	}
	if c, ok := store.(Collapser); ok {
		out = c.Collapse(out)
	}
	for i := range out {
		out[i] = Disambiguate(out[i], s1, s2, sc)
	}
	return out
}
