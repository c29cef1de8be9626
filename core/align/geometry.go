package align

// line is a run of matrix cells (r+k*dr, c+k*dc) for k in [0, n).
type line struct {
	r, c   int
	dr, dc int
	n      int
}

// lines lists the cells each step of a lands on, one line per run.
func lines(a Alignment) []line {
	out := make([]line, 0, len(a.Steps))
	r, c := a.Row, a.Col
	for _, s := range a.Steps {
		dr, dc := s.Op.Consumes()
		out = append(out, line{r: r + dr, c: c + dc, dr: dr, dc: dc, n: s.Len})
		r += dr * s.Len
		c += dc * s.Len
	}
	return out
}

// meets reports whether two lines share a cell.
func (l line) meets(o line) bool {
	dR, dC := o.r-l.r, o.c-l.c
	if l.dr == o.dr && l.dc == o.dc {
		if dR*l.dc != dC*l.dr {
			return false
		}
		t := dR
		if l.dr == 0 {
			t = dC
		}
		return t < l.n && t+o.n > 0
	}
	// distinct unit directions: the determinant is always +-1
	det := o.dr*l.dc - l.dr*o.dc
	a := (o.dr*dC - o.dc*dR) / det
	b := (l.dr*dC - l.dc*dR) / det
	if l.r+a*l.dr != o.r+b*o.dr || l.c+a*l.dc != o.c+b*o.dc {
		return false
	}
	return a >= 0 && a < l.n && b >= 0 && b < o.n
}

func crosses(a, b []line) bool {
	for _, x := range a {
		for _, y := range b {
			if x.meets(y) {
				return true
			}
		}
	}
	return false
}
