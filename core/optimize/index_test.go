package optimize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"invrep/core/repeat"
)

func TestNewIndexGroupsAnchors(t *testing.T) {
	cands := []repeat.InvertedRepeat{span(5, 15), span(0, 10), span(5, 11), span(0, 10)}
	idx := NewIndex(cands)

	assert.Equal(t, []Anchor{{Pos: 0, IDs: []int{1, 3}}, {Pos: 5, IDs: []int{0, 2}}}, idx.Starts)
	assert.Equal(t, []Anchor{
		{Pos: 10, IDs: []int{1, 3}},
		{Pos: 11, IDs: []int{2}},
		{Pos: 15, IDs: []int{0}},
	}, idx.Ends)

	assert.Equal(t, 1, idx.StartIndex(0))
	assert.Equal(t, 0, idx.StartIndex(3))
	assert.Equal(t, 2, idx.EndIndex(0))
	assert.Equal(t, 1, idx.EndIndex(2))
	assert.Equal(t, []repeat.Range{{Start: 0, End: 5}, {Start: 5, End: 10}}, idx.Blocks(1))
}

func TestBisect(t *testing.T) {
	a := []Anchor{{Pos: 2}, {Pos: 4}, {Pos: 4}, {Pos: 9}}
	tests := []struct {
		pos, lo, hi int
		left, right int
	}{
		{pos: 0, lo: 0, hi: 4, left: 0, right: 0},
		{pos: 4, lo: 0, hi: 4, left: 1, right: 3},
		{pos: 5, lo: 0, hi: 4, left: 3, right: 3},
		{pos: 10, lo: 0, hi: 4, left: 4, right: 4},
		{pos: 4, lo: 2, hi: 4, left: 2, right: 3},
		{pos: 9, lo: 0, hi: 2, left: 2, right: 2},
		{pos: 1, lo: 3, hi: 3, left: 3, right: 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.left, BisectLeft(a, tt.pos, tt.lo, tt.hi), "left %+v", tt)
		assert.Equal(t, tt.right, BisectRight(a, tt.pos, tt.lo, tt.hi), "right %+v", tt)
	}
}
