package align

import "sort"

// Storage collects alignment seeds from the scan notifications.
type Storage interface {
	Tracer
	Seeds() []Seed
}

// Collapser is implemented by storages that post-process traced seeds.
type Collapser interface {
	Collapse([]Alignment) []Alignment
}

// Best keeps the single highest-scoring cell. Ties keep the first seen.
type Best struct {
	nopTracer
	seed  Seed
	found bool
}

func (b *Best) Begin(int, int) { *b = Best{} }

func (b *Best) offer(row, col, score int) {
	if !b.found || score > b.seed.Score {
		b.seed = Seed{Row: row, Col: col, Score: score}
		b.found = true
	}
}

func (b *Best) RowGap(row, col, score int)      { b.offer(row, col, score) }
func (b *Best) ColGap(row, col, score int)      { b.offer(row, col, score) }
func (b *Best) Equivalence(row, col, score int) { b.offer(row, col, score) }

func (b *Best) Seeds() []Seed {
	if !b.found {
		return nil
	}
	return []Seed{b.seed}
}

// AllOptimal tracks, for every live path, the cell where it started and the
// highest score it reached. Paths sharing a start keep only their best
// endpoint; endpoints scoring below MinScore are never retained.
type AllOptimal struct {
	MinScore int

	cols  int
	col   int
	prev  []int // path origin per row, column col-1 (-1 = restart)
	cur   []int // path origin per row, column col
	horiz []int // origin of the col-gap track per row
	vert  int   // origin of the row-gap track at the previous row
	peaks map[int]Seed
}

// NewAllOptimal returns a storage that keeps seeds scoring at least minScore.
func NewAllOptimal(minScore int) *AllOptimal {
	return &AllOptimal{MinScore: minScore}
}

func (a *AllOptimal) Begin(rows, cols int) {
	a.cols = cols
	a.col = 0
	a.prev = fill(make([]int, rows+1), -1)
	a.cur = fill(make([]int, rows+1), -1)
	a.horiz = fill(make([]int, rows+1), -1)
	a.vert = -1
	a.peaks = make(map[int]Seed)
}

func fill(xs []int, v int) []int {
	for i := range xs {
		xs[i] = v
	}
	return xs
}

// enter moves the bookkeeping to cell (row, col). The row-gap notification
// is always the first one for a cell.
func (a *AllOptimal) enter(row, col int) {
	if col != a.col {
		a.prev, a.cur = a.cur, a.prev
		fill(a.cur, -1)
		a.col = col
	}
	if row == 1 {
		a.vert = -1
	}
}

func (a *AllOptimal) RowGapOpen(row, col int) {
	a.enter(row, col)
	a.vert = a.cur[row-1]
}

func (a *AllOptimal) RowGapExtend(row, col int) { a.enter(row, col) }

func (a *AllOptimal) ColGapOpen(row, _ int) { a.horiz[row] = a.prev[row] }
func (a *AllOptimal) ColGapExtend(int, int) {}

func (a *AllOptimal) None(row, _ int) { a.cur[row] = -1 }

func (a *AllOptimal) RowGap(row, col, score int) {
	a.cur[row] = a.vert
	a.record(a.vert, row, col, score)
}

func (a *AllOptimal) ColGap(row, col, score int) {
	a.cur[row] = a.horiz[row]
	a.record(a.horiz[row], row, col, score)
}

func (a *AllOptimal) Equivalence(row, col, score int) {
	o := a.prev[row-1]
	if o < 0 {
		o = row*(a.cols+1) + col
	}
	a.cur[row] = o
	a.record(o, row, col, score)
}

func (a *AllOptimal) record(origin, row, col, score int) {
	if origin < 0 || score < a.MinScore {
		return
	}
	if p, ok := a.peaks[origin]; ok && p.Score >= score {
		return
	}
	a.peaks[origin] = Seed{Row: row, Col: col, Score: score}
}

// Seeds returns the retained endpoints by descending score, then position.
func (a *AllOptimal) Seeds() []Seed {
	out := make([]Seed, 0, len(a.peaks))
	for _, s := range a.peaks {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Collapse drops every alignment that shares a cell with an already
// accepted one. Input must be ordered by descending score.
func (a *AllOptimal) Collapse(list []Alignment) []Alignment {
	accepted := make([]Alignment, 0, len(list))
	paths := make([][]line, 0, len(list))
	for _, al := range list {
		ls := lines(al)
		clash := false
		for _, p := range paths {
			if crosses(ls, p) {
				clash = true
				break
			}
		}
		if clash {
			continue
		}
		accepted = append(accepted, al)
		paths = append(paths, ls)
	}
	return accepted
}
