// internal/engine/engine_test.go
package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invrep/core/repeat"
)

const hairpin = "GATTACAG" + "CCCC" + "CTGTAATC"

func TestPredictHairpin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinScore = 6
	eng := New(cfg, nil)

	got := eng.Predict(context.Background(), "s", []byte(hairpin))
	require.NotEmpty(t, got)
	assert.Equal(t, 8, got[0].Score)
	assert.Equal(t, repeat.Range{Start: 0, End: 20}, got[0].Bounds())
	assert.False(t, got[0].Selected)
}

func TestPredictUsesConfiguredScores(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Match = 3
	cfg.MinScore = 20
	got := New(cfg, nil).Predict(context.Background(), "s", []byte(hairpin))
	require.NotEmpty(t, got)
	assert.Equal(t, 24, got[0].Score)
}

func TestOptimizeMarksSelection(t *testing.T) {
	span := func(start, end int) repeat.InvertedRepeat {
		mid := start + (end-start)/2
		arm := mid - start
		return repeat.MustInvertedRepeat(repeat.Segment{
			Left:  repeat.Range{Start: start, End: mid},
			Right: repeat.Range{Start: end - arm, End: end},
		})
	}
	rec := &Record{SequenceID: "r", Length: 40, Repeats: []Repeat{
		{InvertedRepeat: span(0, 10), Score: 2},
		{InvertedRepeat: span(5, 15), Score: 3},
		{InvertedRepeat: span(20, 30), Score: 4},
	}}

	require.NoError(t, New(DefaultConfig(), nil).Optimize(context.Background(), rec))
	assert.True(t, rec.Optimized)
	assert.Equal(t, 7, rec.Total)
	assert.False(t, rec.Repeats[0].Selected)
	assert.True(t, rec.Repeats[1].Selected)
	assert.True(t, rec.Repeats[2].Selected)
	assert.Len(t, rec.Selected(), 2)
}

func TestOptimizeEmptyRecord(t *testing.T) {
	rec := &Record{SequenceID: "empty"}
	require.NoError(t, New(DefaultConfig(), nil).Optimize(context.Background(), rec))
	assert.True(t, rec.Optimized)
	assert.Zero(t, rec.Total)
	assert.Empty(t, rec.Selected())
}
