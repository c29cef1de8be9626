package repeat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hairpin = "GATTACAG" + "CCCC" + "CTGTAATC"

func TestPredictEmpty(t *testing.T) {
	repeats, scores := Predict(nil, 1, 0)
	assert.Empty(t, repeats)
	assert.Empty(t, scores)
}

func TestPredictHairpin(t *testing.T) {
	repeats, scores := Predict([]byte(hairpin), 6, 4)
	require.Equal(t, len(repeats), len(scores))
	require.NotEmpty(t, repeats)

	assert.Equal(t, 8, scores[0])
	assert.Equal(t, []Segment{seg(0, 8, 12, 20)}, repeats[0].Segments())
	assert.Equal(t, Range{Start: 0, End: 20}, repeats[0].Bounds())
	assert.Equal(t, 4, repeats[0].Loop())
}

func TestPredictLowercaseAndRNA(t *testing.T) {
	repeats, scores := Predict([]byte("gauuacag"+"cccc"+"cuguaauc"), 6, 4)
	require.NotEmpty(t, repeats)
	assert.Equal(t, 8, scores[0])
	assert.Equal(t, []Segment{seg(0, 8, 12, 20)}, repeats[0].Segments())
}

func TestPredictMinMatchesRunFilters(t *testing.T) {
	repeats, _ := Predict([]byte(hairpin), 6, 9)
	assert.Empty(t, repeats)
}

func TestPredictMinScoreFilters(t *testing.T) {
	repeats, _ := Predict([]byte(hairpin), 9, 0)
	assert.Empty(t, repeats)
}

func TestPredictArmsAreComplementary(t *testing.T) {
	s := []byte("TTTT" + hairpin + "AAAGGG" + "CGCGTATA" + "TTTT" + "TATACGCG")
	repeats, scores := Predict(s, 5, 4)
	require.Equal(t, len(repeats), len(scores))
	require.NotEmpty(t, repeats)

	comp := map[byte]byte{'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G'}
	for _, ir := range repeats {
		for _, sg := range ir.Segments() {
			require.Equal(t, sg.Left.Len(), sg.Right.Len())
			require.LessOrEqual(t, sg.Left.End, sg.Right.Start)
			for k := 0; k < sg.Left.Len(); k++ {
				a := s[sg.Left.Start+k]
				b := s[sg.Right.End-1-k]
				assert.Equal(t, comp[a], b, "%s: %c at %d vs %c at %d", ir, a, sg.Left.Start+k, b, sg.Right.End-1-k)
			}
		}
	}
}

func TestPredictWithOffsetKeepsArmsApart(t *testing.T) {
	s := []byte(hairpin)
	repeats, _ := PredictWith(s, Options{MinScore: 3, MinMatchesRun: 3, Offset: 6})
	for _, ir := range repeats {
		for _, sg := range ir.Segments() {
			assert.GreaterOrEqual(t, sg.Right.Start-(sg.Left.End-1), 6)
		}
	}
}
