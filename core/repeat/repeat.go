// Package repeat models inverted repeats and extracts them from a sequence.
package repeat

import (
	"fmt"
	"strings"
)

// Range is a half-open interval [Start, End).
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int { return r.End - r.Start }

func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Segment is one pair of complementary arms. Both arms have the same
// length and the left arm ends at or before the right arm starts.
type Segment struct {
	Left  Range
	Right Range
}

// NewSegment validates left.Start < left.End <= right.Start < right.End and
// equal arm lengths.
func NewSegment(left, right Range) (Segment, error) {
	if left.Len() != right.Len() {
		return Segment{}, fmt.Errorf("%w: arms %v and %v differ in length", ErrInvariantViolation, left, right)
	}
	if left.Start >= left.End {
		return Segment{}, fmt.Errorf("%w: empty arm %v", ErrInvariantViolation, left)
	}
	if left.End > right.Start {
		return Segment{}, fmt.Errorf("%w: arms %v and %v overlap or are out of order", ErrInvariantViolation, left, right)
	}
	return Segment{Left: left, Right: right}, nil
}

// Len is the arm length.
func (s Segment) Len() int { return s.Left.Len() }

func (s Segment) shift(k int) Segment {
	return Segment{
		Left:  Range{Start: s.Left.Start + k, End: s.Left.End + k},
		Right: Range{Start: s.Right.Start + k, End: s.Right.End + k},
	}
}

// InvertedRepeat is a non-empty list of properly nested segments, outermost
// first. The only mutation allowed after construction is Shift.
type InvertedRepeat struct {
	segments []Segment
	bounds   Range
}

// NewInvertedRepeat validates every segment and the nesting of consecutive
// ones: each left arm ends at or before the next left arm starts, and each
// right arm starts at or after the next right arm ends.
func NewInvertedRepeat(segments []Segment) (InvertedRepeat, error) {
	if len(segments) == 0 {
		return InvertedRepeat{}, fmt.Errorf("%w: inverted repeat without segments", ErrInvariantViolation)
	}
	for i, s := range segments {
		if _, err := NewSegment(s.Left, s.Right); err != nil {
			return InvertedRepeat{}, fmt.Errorf("segment %d: %w", i, err)
		}
		if i == 0 {
			continue
		}
		prev := segments[i-1]
		if prev.Left.End > s.Left.Start || prev.Right.Start < s.Right.End {
			return InvertedRepeat{}, fmt.Errorf("%w: segment %d (%v %v) is not nested in segment %d (%v %v)",
				ErrInvariantViolation, i, s.Left, s.Right, i-1, prev.Left, prev.Right)
		}
	}
	segs := make([]Segment, len(segments))
	copy(segs, segments)
	return InvertedRepeat{
		segments: segs,
		bounds:   Range{Start: segs[0].Left.Start, End: segs[0].Right.End},
	}, nil
}

// MustInvertedRepeat is NewInvertedRepeat for inputs known to be valid.
func MustInvertedRepeat(segments ...Segment) InvertedRepeat {
	ir, err := NewInvertedRepeat(segments)
	if err != nil {
		panic(err)
	}
	return ir
}

// Segments returns a copy of the segments, outermost first.
func (ir InvertedRepeat) Segments() []Segment {
	out := make([]Segment, len(ir.segments))
	copy(out, ir.segments)
	return out
}

// Bounds is the bounding range: first left start to first right end.
func (ir InvertedRepeat) Bounds() Range { return ir.bounds }

// Shift moves every coordinate by k. Copies of ir made before the call
// keep their coordinates.
func (ir *InvertedRepeat) Shift(k int) {
	segs := make([]Segment, len(ir.segments))
	for i, s := range ir.segments {
		segs[i] = s.shift(k)
	}
	ir.segments = segs
	ir.bounds = Range{Start: ir.bounds.Start + k, End: ir.bounds.End + k}
}

// Blocks lists the occupied spans in position order: the left arms, then
// the right arms from innermost to outermost.
func (ir InvertedRepeat) Blocks() []Range {
	out := make([]Range, 0, 2*len(ir.segments))
	for _, s := range ir.segments {
		out = append(out, s.Left)
	}
	for i := len(ir.segments) - 1; i >= 0; i-- {
		out = append(out, ir.segments[i].Right)
	}
	return out
}

// Stem is the total arm length on one side.
func (ir InvertedRepeat) Stem() int {
	n := 0
	for _, s := range ir.segments {
		n += s.Len()
	}
	return n
}

// Loop is the unpaired span enclosed by the innermost segment.
func (ir InvertedRepeat) Loop() int {
	if len(ir.segments) == 0 {
		return 0
	}
	in := ir.segments[len(ir.segments)-1]
	return in.Right.Start - in.Left.End
}

func (ir InvertedRepeat) String() string {
	var b strings.Builder
	for i, s := range ir.segments {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v~%v", s.Left, s.Right)
	}
	return b.String()
}
