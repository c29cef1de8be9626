package optimize

import (
	"sort"

	"invrep/core/repeat"
)

// Anchor is a coordinate shared by the bounding starts (or ends) of one or
// more candidates. IDs are ascending.
type Anchor struct {
	Pos int
	IDs []int
}

// Index groups candidates by bounding start and by bounding end.
type Index struct {
	Starts []Anchor
	Ends   []Anchor

	startOf []int
	endOf   []int
	blocks  [][]repeat.Range
}

// NewIndex builds the anchor arrays for cands; candidate ids are their
// positions in cands.
func NewIndex(cands []repeat.InvertedRepeat) *Index {
	idx := &Index{
		startOf: make([]int, len(cands)),
		endOf:   make([]int, len(cands)),
		blocks:  make([][]repeat.Range, len(cands)),
	}
	for id, c := range cands {
		idx.blocks[id] = c.Blocks()
	}
	idx.Starts = anchors(cands, idx.startOf, func(r repeat.Range) int { return r.Start })
	idx.Ends = anchors(cands, idx.endOf, func(r repeat.Range) int { return r.End })
	return idx
}

func anchors(cands []repeat.InvertedRepeat, where []int, key func(repeat.Range) int) []Anchor {
	ids := make([]int, len(cands))
	for i := range ids {
		ids[i] = i
	}
	sort.SliceStable(ids, func(a, b int) bool {
		return key(cands[ids[a]].Bounds()) < key(cands[ids[b]].Bounds())
	})

	var out []Anchor
	for _, id := range ids {
		pos := key(cands[id].Bounds())
		if n := len(out); n == 0 || out[n-1].Pos != pos {
			out = append(out, Anchor{Pos: pos})
		}
		last := len(out) - 1
		out[last].IDs = append(out[last].IDs, id)
		where[id] = last
	}
	return out
}

// StartIndex is the position of id's bounding start in Starts.
func (idx *Index) StartIndex(id int) int { return idx.startOf[id] }

// EndIndex is the position of id's bounding end in Ends.
func (idx *Index) EndIndex(id int) int { return idx.endOf[id] }

// Blocks returns the occupied spans of id in position order.
func (idx *Index) Blocks(id int) []repeat.Range { return idx.blocks[id] }

// BisectLeft returns the first i in [lo, hi) with anchors[i].Pos >= pos,
// or hi if there is none.
func BisectLeft(anchors []Anchor, pos, lo, hi int) int {
	return lo + sort.Search(hi-lo, func(i int) bool { return anchors[lo+i].Pos >= pos })
}

// BisectRight returns the first i in [lo, hi) with anchors[i].Pos > pos,
// or hi if there is none.
func BisectRight(anchors []Anchor, pos, lo, hi int) int {
	return lo + sort.Search(hi-lo, func(i int) bool { return anchors[lo+i].Pos > pos })
}
