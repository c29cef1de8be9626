// Package optimize selects the highest-scoring consistent subset of
// candidate inverted repeats. Two candidates may both be selected when
// their bounding ranges are disjoint or when one lies entirely inside a gap
// between the blocks of the other.
package optimize

import (
	"fmt"
	"sort"

	"invrep/core/repeat"
)

// Result is a selection. IDs index the candidate list and are ordered by
// bounding start, bounding end, then id.
type Result struct {
	IDs   []int
	Score int

	// Windows is the number of anchor windows the solver had to settle.
	Windows int
}

// Optimize picks the subset of cands with the greatest total score. Only
// positive contributions are ever taken, so the total is never negative.
// Among equal totals the end anchor is skipped first, then candidates are
// tried by ascending id and replace the incumbent only when strictly better.
func Optimize(cands []repeat.InvertedRepeat, scores []int) (Result, error) {
	if len(cands) != len(scores) {
		return Result{}, fmt.Errorf("%w: %d candidates but %d scores",
			repeat.ErrInvariantViolation, len(cands), len(scores))
	}
	switch len(cands) {
	case 0:
		return Result{}, nil
	case 1:
		if scores[0] > 0 {
			return Result{IDs: []int{0}, Score: scores[0]}, nil
		}
		return Result{}, nil
	}

	s := &solver{idx: NewIndex(cands), scores: scores, memo: newMemo()}
	last := len(s.idx.Ends) - 1
	for e := 0; e < last; e++ {
		s.solve(window{sind: 0, eind: e})
	}
	root := window{sind: 0, eind: last}
	total := s.solve(root)

	ids := s.backtrack(root)
	sort.Slice(ids, func(a, b int) bool {
		ba, bb := cands[ids[a]].Bounds(), cands[ids[b]].Bounds()
		if ba.Start != bb.Start {
			return ba.Start < bb.Start
		}
		if ba.End != bb.End {
			return ba.End < bb.End
		}
		return ids[a] < ids[b]
	})
	return Result{IDs: ids, Score: total, Windows: s.memo.len()}, nil
}

type solver struct {
	idx    *Index
	scores []int
	memo   *memo
}

// empty reports windows that cannot hold any candidate.
func (s *solver) empty(w window) bool {
	return w.eind < 0 || w.sind >= len(s.idx.Starts) ||
		s.idx.Starts[w.sind].Pos >= s.idx.Ends[w.eind].Pos
}

func (s *solver) value(w window) (int, bool) {
	if s.empty(w) {
		return 0, true
	}
	c, ok := s.memo.get(w)
	return c.score, ok
}

// options lists the decompositions of w: the skip first, then every
// positive candidate ending exactly at w's end anchor and starting inside
// the window, each with the windows of its gaps and of what precedes it.
func (s *solver) options(w window) []cell {
	opts := []cell{{repeat: -1, subs: []window{{sind: w.sind, eind: w.eind - 1}}}}
	starts, ends := s.idx.Starts, s.idx.Ends
	for _, id := range ends[w.eind].IDs {
		if s.scores[id] <= 0 || s.idx.StartIndex(id) < w.sind {
			continue
		}
		var subs []window
		blocks := s.idx.Blocks(id)
		for k := 0; k+1 < len(blocks); k++ {
			from, to := blocks[k].End, blocks[k+1].Start
			if from >= to {
				continue
			}
			g := window{
				sind: BisectLeft(starts, from, s.idx.StartIndex(id), len(starts)),
				eind: BisectRight(ends, to, 0, w.eind) - 1,
			}
			if !s.empty(g) {
				subs = append(subs, g)
			}
		}
		pre := window{sind: w.sind, eind: BisectRight(ends, blocks[0].Start, 0, w.eind) - 1}
		if !s.empty(pre) {
			subs = append(subs, pre)
		}
		opts = append(opts, cell{score: s.scores[id], repeat: id, subs: subs})
	}
	return opts
}

// solve settles root and every window it depends on. Dependencies always
// have a smaller end anchor, so the worklist terminates.
func (s *solver) solve(root window) int {
	if v, ok := s.value(root); ok {
		return v
	}
	stack := []window{root}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		if _, ok := s.value(w); ok {
			stack = stack[:len(stack)-1]
			continue
		}
		opts := s.options(w)
		pending := false
		for _, o := range opts {
			for _, sub := range o.subs {
				if _, ok := s.value(sub); !ok {
					stack = append(stack, sub)
					pending = true
				}
			}
		}
		if pending {
			continue
		}
		stack = stack[:len(stack)-1]
		s.settle(w, opts)
	}
	v, _ := s.value(root)
	return v
}

func (s *solver) settle(w window, opts []cell) {
	var best cell
	for i, o := range opts {
		total := o.score
		for _, sub := range o.subs {
			v, _ := s.value(sub)
			total += v
		}
		if i == 0 || total > best.score {
			best = cell{score: total, repeat: o.repeat, subs: o.subs}
		}
	}
	s.memo.put(w, best)
}
