package align

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"invrep/core/scoring"
	"invrep/core/seq"
)

func TestCoalesce(t *testing.T) {
	in := []Step{
		{Op: scoring.Match, Len: 2},
		{Op: scoring.Match, Len: 3},
		{Op: scoring.GapFirst, Len: 0},
		{Op: scoring.Mismatch, Len: 1},
		{Op: scoring.Match, Len: 1},
		{Op: scoring.Match, Len: 1},
	}
	assert.Equal(t, []Step{
		{Op: scoring.Match, Len: 5},
		{Op: scoring.Mismatch, Len: 1},
		{Op: scoring.Match, Len: 2},
	}, Coalesce(in))
}

func TestDisambiguateSplitsEquivalentRuns(t *testing.T) {
	s1 := seq.Bytes("AACGAT")
	s2 := seq.Bytes("AATGAT")
	a := Alignment{Row: 0, Col: 0, Score: 3, Steps: []Step{{Op: scoring.Equivalent, Len: 6}}}
	got := Disambiguate(a, s1, s2, scoring.Invariant[scoring.Exact]{Pairs: scoring.Exact{Match: 1, Mismatch: -1}})
	assert.Equal(t, []Step{
		{Op: scoring.Match, Len: 2},
		{Op: scoring.Mismatch, Len: 1},
		{Op: scoring.Match, Len: 3},
	}, got.Steps)
	assert.Equal(t, 3, got.Score)
}

func TestDisambiguateAcrossGaps(t *testing.T) {
	s1 := seq.Bytes("AAGCC")
	s2 := seq.Bytes("AACC")
	a := Alignment{Steps: []Step{
		{Op: scoring.Equivalent, Len: 2},
		{Op: scoring.GapFirst, Len: 1},
		{Op: scoring.Equivalent, Len: 2},
	}}
	got := Disambiguate(a, s1, s2, scoring.Invariant[scoring.Exact]{Pairs: scoring.Exact{Match: 1, Mismatch: -1}})
	assert.Equal(t, []Step{
		{Op: scoring.Match, Len: 2},
		{Op: scoring.GapFirst, Len: 1},
		{Op: scoring.Match, Len: 2},
	}, got.Steps)
	assert.Equal(t, 2, got.LongestRun(scoring.Match))
}

func TestMirror(t *testing.T) {
	a := Alignment{Row: 1, Col: 4, Score: 7, Steps: []Step{
		{Op: scoring.Match, Len: 2},
		{Op: scoring.GapFirst, Len: 1},
		{Op: scoring.GapSecond, Len: 3},
	}}
	m := a.Mirror()
	assert.Equal(t, 4, m.Row)
	assert.Equal(t, 1, m.Col)
	assert.Equal(t, scoring.GapSecond, m.Steps[1].Op)
	assert.Equal(t, scoring.GapFirst, m.Steps[2].Op)
	assert.Equal(t, a, m.Mirror())
}
