package output

import (
	"sort"

	"invrep/internal/engine"
)

// LessRepeat defines a stable order for repeats (for --sort).
func LessRepeat(a, b engine.Repeat) bool {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Start != bb.Start {
		return ab.Start < bb.Start
	}
	if ab.End != bb.End {
		return ab.End < bb.End
	}
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	return a.String() < b.String()
}

// SortRecords orders records by sequence id and the repeats inside each
// record with LessRepeat. Records are sorted in place.
func SortRecords(list []engine.Record) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].SequenceID != list[j].SequenceID {
			return list[i].SequenceID < list[j].SequenceID
		}
		return list[i].SourceFile < list[j].SourceFile
	})
	for i := range list {
		rs := list[i].Repeats
		sort.SliceStable(rs, func(a, b int) bool { return LessRepeat(rs[a], rs[b]) })
	}
}
