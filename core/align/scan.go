// Package align implements an affine-gap local alignment scan with pluggable
// observers, the traceback matrix, and seed storage strategies.
package align

import (
	"invrep/core/scoring"
	"invrep/core/seq"
)

// Region selects which cells of the comparison matrix are visited.
type Region struct {
	triangle bool
	offset   int
}

// Full visits every cell.
func Full() Region { return Region{} }

// Triangle visits the 0-based cells (r, c) with r+c <= cols-1-offset.
// Scanning (reverse(s), s) this way pairs position c with position
// len(s)-1-r only when c < len(s)-1-r, at least offset apart, so each
// symmetric pairing is visited once and no position pairs with itself
// when offset >= 1.
func Triangle(offset int) Region { return Region{triangle: true, offset: offset} }

// lastRow returns the last matrix row visited in column j (1-based).
func (r Region) lastRow(j, rows, cols int) int {
	if !r.triangle {
		return rows
	}
	last := cols + 1 - r.offset - j
	if last > rows {
		return rows
	}
	return last
}

// Scan runs the local alignment recurrence of s1 (rows) against s2 (cols)
// column by column, keeping only the previous column, and reports every
// decision to t. Scores never go below zero.
func Scan(s1, s2 seq.Sequence, sc scoring.Scheme, region Region, t Tracer) {
	rows, cols := s1.Len(), s2.Len()
	t.Begin(rows, cols)
	if rows == 0 || cols == 0 {
		return
	}

	prev := make([]int, rows+1) // best score, column j-1
	cur := make([]int, rows+1)  // best score, column j
	hgap := make([]int, rows+1) // col-gap track, updated in place

	for j := 1; j <= cols; j++ {
		last := region.lastRow(j, rows, cols)
		if last <= 0 {
			break
		}
		b := s2.At(j - 1)
		gapOpen2, gapExt2 := sc.Second(j - 1)
		v := 0 // row-gap track at (i-1, j)

		for i := 1; i <= last; i++ {
			open, ext := sc.First(i - 1)
			if vo, ve := cur[i-1]+open, v+ext; vo >= ve {
				v = vo
				t.RowGapOpen(i, j)
			} else {
				v = ve
				t.RowGapExtend(i, j)
			}
			if v < 0 {
				v = 0
			}

			h := 0
			if ho, he := prev[i]+gapOpen2, hgap[i]+gapExt2; ho >= he {
				h = ho
				t.ColGapOpen(i, j)
			} else {
				h = he
				t.ColGapExtend(i, j)
			}
			if h < 0 {
				h = 0
			}
			hgap[i] = h

			_, s := sc.Score(i-1, s1.At(i-1), j-1, b)
			d := prev[i-1] + s

			switch {
			case d > 0 && d >= v && d >= h:
				cur[i] = d
				t.Equivalence(i, j, d)
			case v > 0 && v >= h:
				cur[i] = v
				t.RowGap(i, j, v)
			case h > 0:
				cur[i] = h
				t.ColGap(i, j, h)
			default:
				cur[i] = 0
				t.None(i, j)
			}
		}
		// the band only shrinks, so rows past last are never read again
		prev, cur = cur, prev
	}
}
