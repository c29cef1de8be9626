package optimize

// window is a solved (start anchor, end anchor) pair.
type window struct {
	sind int
	eind int
}

// cell is the memoized outcome of one window: its best score and how it
// decomposes. repeat < 0 means the end anchor was skipped.
type cell struct {
	score  int
	repeat int
	subs   []window
}

// memo is an arena of cells addressed through a window lookup table.
type memo struct {
	at    map[window]int32
	cells []cell
}

func newMemo() *memo {
	return &memo{at: make(map[window]int32)}
}

func (m *memo) get(w window) (cell, bool) {
	i, ok := m.at[w]
	if !ok {
		return cell{}, false
	}
	return m.cells[i], true
}

func (m *memo) put(w window, c cell) {
	m.at[w] = int32(len(m.cells))
	m.cells = append(m.cells, c)
}

func (m *memo) len() int { return len(m.cells) }

// backtrack collects the repeat ids included in the decomposition of root,
// walking the memo with an explicit stack.
func (s *solver) backtrack(root window) []int {
	var ids []int
	stack := []window{root}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.empty(w) {
			continue
		}
		c, ok := s.memo.get(w)
		if !ok {
			continue
		}
		if c.repeat >= 0 {
			ids = append(ids, c.repeat)
		}
		stack = append(stack, c.subs...)
	}
	return ids
}
