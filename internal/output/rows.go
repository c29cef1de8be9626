package output

import (
	"fmt"

	"invrep/internal/engine"
)

// FormatRowTSV returns the columns of one repeat (no trailing newline).
func FormatRowTSV(rec engine.Record, r engine.Repeat) string {
	b := r.Bounds()
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%d\t%d\t%d\t%t\t%s",
		rec.SequenceID, rec.SourceFile,
		b.Start, b.End, r.Score,
		r.Stem(), r.Loop(), r.Selected,
		r.String(),
	)
}

// FormatTotal returns the footer line for an optimized record.
func FormatTotal(rec engine.Record) string {
	return fmt.Sprintf("%s\t%s\t%d", TotalPrefix, rec.SequenceID, rec.Total)
}

// Visible returns the repeats a writer prints for rec: the selection when
// rec was optimized, unless all is set.
func Visible(rec engine.Record, all bool) []engine.Repeat {
	if rec.Optimized && !all {
		return rec.Selected()
	}
	return rec.Repeats
}
