package align

import "invrep/core/scoring"

// cell layout: low two bits hold the winning move, then one bit per gap
// track telling whether that track was freshly opened at this cell.
const (
	moveNone byte = iota
	moveDiag
	moveRow
	moveCol

	moveMask byte = 0x3
	rowOpen  byte = 1 << 2
	colOpen  byte = 1 << 3
)

// TraceMatrix records every cell's decision at full (rows+1)x(cols+1)
// resolution so alignments can be reconstructed from any endpoint.
type TraceMatrix struct {
	nopTracer
	rows  int
	cols  int
	cells []byte
}

// NewTraceMatrix returns an empty matrix; Begin sizes it.
func NewTraceMatrix() *TraceMatrix { return &TraceMatrix{} }

func (m *TraceMatrix) Begin(rows, cols int) {
	m.rows, m.cols = rows, cols
	n := (rows + 1) * (cols + 1)
	if cap(m.cells) >= n {
		m.cells = m.cells[:n]
		clear(m.cells)
		return
	}
	m.cells = make([]byte, n)
}

func (m *TraceMatrix) at(row, col int) int { return row*(m.cols+1) + col }

func (m *TraceMatrix) RowGapOpen(row, col int)   { m.cells[m.at(row, col)] |= rowOpen }
func (m *TraceMatrix) RowGapExtend(row, col int) { m.cells[m.at(row, col)] &^= rowOpen }
func (m *TraceMatrix) ColGapOpen(row, col int)   { m.cells[m.at(row, col)] |= colOpen }
func (m *TraceMatrix) ColGapExtend(row, col int) { m.cells[m.at(row, col)] &^= colOpen }

func (m *TraceMatrix) setMove(row, col int, mv byte) {
	i := m.at(row, col)
	m.cells[i] = m.cells[i]&^moveMask | mv
}

func (m *TraceMatrix) None(row, col int)           { m.setMove(row, col, moveNone) }
func (m *TraceMatrix) RowGap(row, col, _ int)      { m.setMove(row, col, moveRow) }
func (m *TraceMatrix) ColGap(row, col, _ int)      { m.setMove(row, col, moveCol) }
func (m *TraceMatrix) Equivalence(row, col, _ int) { m.setMove(row, col, moveDiag) }

func (m *TraceMatrix) move(row, col int) byte { return m.cells[m.at(row, col)] & moveMask }

// Trace walks back from the seed until a restart and returns the alignment
// in forward order. Diagonal runs come back as Equivalent; see Disambiguate.
func (m *TraceMatrix) Trace(s Seed) Alignment {
	i, j := s.Row, s.Col
	var rev []Step
	state := m.move(i, j)
	for state != moveNone {
		c := m.cells[m.at(i, j)]
		switch state {
		case moveDiag:
			if i == 0 || j == 0 {
				state = moveNone
				continue
			}
			rev = appendStep(rev, scoring.Equivalent, 1)
			i--
			j--
			state = m.move(i, j)
		case moveRow:
			if i == 0 {
				state = moveNone
				continue
			}
			rev = appendStep(rev, scoring.GapFirst, 1)
			i--
			if c&rowOpen != 0 {
				state = m.move(i, j)
			}
		case moveCol:
			if j == 0 {
				state = moveNone
				continue
			}
			rev = appendStep(rev, scoring.GapSecond, 1)
			j--
			if c&colOpen != 0 {
				state = m.move(i, j)
			}
		}
	}
	steps := make([]Step, len(rev))
	for k, st := range rev {
		steps[len(rev)-1-k] = st
	}
	return Alignment{Row: i, Col: j, Score: s.Score, Steps: steps}
}
