// internal/engine/record.go
package engine

import "invrep/core/repeat"

// Repeat is one candidate inverted repeat with its alignment score.
type Repeat struct {
	repeat.InvertedRepeat
	Score    int
	Selected bool
}

// Record holds every candidate found in one input sequence. Coordinates
// are record-global.
type Record struct {
	SequenceID string
	SourceFile string
	Length     int
	Repeats    []Repeat

	// Seq is the record sequence, kept only when a writer needs it.
	Seq []byte

	// Optimized is set once selection ran; Total is then the summed score
	// of the selected repeats.
	Optimized bool
	Total     int
}

// Selected returns the repeats chosen by Optimize.
func (r Record) Selected() []Repeat {
	var out []Repeat
	for _, x := range r.Repeats {
		if x.Selected {
			out = append(out, x)
		}
	}
	return out
}
