package repeat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(ls, le, rs, re int) Segment {
	return Segment{Left: Range{Start: ls, End: le}, Right: Range{Start: rs, End: re}}
}

func TestNewSegment(t *testing.T) {
	tests := []struct {
		name        string
		left, right Range
		ok          bool
	}{
		{"valid", Range{0, 3}, Range{5, 8}, true},
		{"touching arms", Range{0, 3}, Range{3, 6}, true},
		{"unequal arms", Range{0, 3}, Range{5, 9}, false},
		{"right before left end", Range{0, 3}, Range{2, 5}, false},
		{"right before left", Range{6, 8}, Range{0, 2}, false},
		{"empty arms", Range{4, 4}, Range{6, 6}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSegment(tt.left, tt.right)
			if !tt.ok {
				require.ErrorIs(t, err, ErrInvariantViolation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.left, s.Left)
			assert.Equal(t, tt.right, s.Right)
		})
	}
}

func TestNewInvertedRepeat(t *testing.T) {
	ir, err := NewInvertedRepeat([]Segment{seg(0, 3, 20, 23), seg(5, 7, 15, 17), seg(7, 9, 12, 14)})
	require.NoError(t, err)
	assert.Equal(t, Range{Start: 0, End: 23}, ir.Bounds())
	assert.Len(t, ir.Segments(), 3)
	assert.Equal(t, 7, ir.Stem())
	assert.Equal(t, 3, ir.Loop())
	assert.Equal(t, []Range{{0, 3}, {5, 7}, {7, 9}, {12, 14}, {15, 17}, {20, 23}}, ir.Blocks())
}

func TestNewInvertedRepeatRejects(t *testing.T) {
	tests := map[string][]Segment{
		"empty":               nil,
		"unordered":           {seg(5, 7, 15, 17), seg(0, 3, 20, 23)},
		"overlapping lefts":   {seg(0, 3, 20, 23), seg(2, 4, 15, 17)},
		"overlapping rights":  {seg(0, 3, 20, 23), seg(5, 7, 19, 21)},
		"bad inner segment":   {seg(0, 3, 20, 23), seg(5, 8, 15, 17)},
		"crossing inner arms": {seg(0, 3, 20, 23), seg(10, 13, 9, 12)},
	}
	for name, segs := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewInvertedRepeat(segs)
			assert.ErrorIs(t, err, ErrInvariantViolation)
		})
	}
}

func TestSegmentsAreCopied(t *testing.T) {
	in := []Segment{seg(0, 2, 8, 10)}
	ir := MustInvertedRepeat(in...)
	in[0] = seg(1, 2, 3, 4)
	out := ir.Segments()
	out[0] = seg(1, 2, 3, 4)
	assert.Equal(t, seg(0, 2, 8, 10), ir.Segments()[0])
}

func TestShiftRoundTrip(t *testing.T) {
	orig := MustInvertedRepeat(seg(3, 6, 30, 33), seg(8, 10, 20, 22))
	ir := MustInvertedRepeat(orig.Segments()...)

	ir.Shift(1000)
	assert.Equal(t, Range{Start: 1003, End: 1033}, ir.Bounds())
	assert.Equal(t, seg(1008, 1010, 1020, 1022), ir.Segments()[1])

	ir.Shift(-1000)
	assert.Equal(t, orig.Bounds(), ir.Bounds())
	assert.Equal(t, orig.Segments(), ir.Segments())
}

func TestShiftLeavesCopiesAlone(t *testing.T) {
	a := MustInvertedRepeat(seg(0, 2, 8, 10))
	b := a
	b.Shift(5)
	assert.Equal(t, seg(0, 2, 8, 10), a.Segments()[0])
	assert.Equal(t, seg(5, 7, 13, 15), b.Segments()[0])
}

func TestMustInvertedRepeatPanics(t *testing.T) {
	assert.Panics(t, func() { MustInvertedRepeat() })
}
