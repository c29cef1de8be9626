package align

// Tracer observes every decision the scanner makes. Rows and columns are
// matrix coordinates: cell (i, j) is reached after consuming i symbols of
// the first sequence and j of the second. For each visited cell the scanner
// reports the row-gap track (open or extend), the col-gap track (open or
// extend), and then exactly one of None, RowGap, ColGap or Equivalence.
type Tracer interface {
	Begin(rows, cols int)

	RowGapOpen(row, col int)
	RowGapExtend(row, col int)
	ColGapOpen(row, col int)
	ColGapExtend(row, col int)

	None(row, col int)
	RowGap(row, col, score int)
	ColGap(row, col, score int)
	Equivalence(row, col, score int)
}

// Fanout forwards every notification to each tracer in order.
type Fanout []Tracer

func (f Fanout) Begin(rows, cols int) {
	for _, t := range f {
		t.Begin(rows, cols)
	}
}

func (f Fanout) RowGapOpen(row, col int) {
	for _, t := range f {
		t.RowGapOpen(row, col)
	}
}

func (f Fanout) RowGapExtend(row, col int) {
	for _, t := range f {
		t.RowGapExtend(row, col)
	}
}

func (f Fanout) ColGapOpen(row, col int) {
	for _, t := range f {
		t.ColGapOpen(row, col)
	}
}

func (f Fanout) ColGapExtend(row, col int) {
	for _, t := range f {
		t.ColGapExtend(row, col)
	}
}

func (f Fanout) None(row, col int) {
	for _, t := range f {
		t.None(row, col)
	}
}

func (f Fanout) RowGap(row, col, score int) {
	for _, t := range f {
		t.RowGap(row, col, score)
	}
}

func (f Fanout) ColGap(row, col, score int) {
	for _, t := range f {
		t.ColGap(row, col, score)
	}
}

func (f Fanout) Equivalence(row, col, score int) {
	for _, t := range f {
		t.Equivalence(row, col, score)
	}
}

// nopTracer is embedded by tracers that ignore most notifications.
type nopTracer struct{}

func (nopTracer) Begin(int, int)            {}
func (nopTracer) RowGapOpen(int, int)       {}
func (nopTracer) RowGapExtend(int, int)     {}
func (nopTracer) ColGapOpen(int, int)       {}
func (nopTracer) ColGapExtend(int, int)     {}
func (nopTracer) None(int, int)             {}
func (nopTracer) RowGap(int, int, int)      {}
func (nopTracer) ColGap(int, int, int)      {}
func (nopTracer) Equivalence(int, int, int) {}
