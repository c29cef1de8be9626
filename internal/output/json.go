package output

import (
	"io"

	"invrep/internal/engine"
	"invrep/internal/jsonutil"
	"invrep/pkg/api"

	"gopkg.in/yaml.v3"
)

// ToAPIRepeat converts a domain Repeat to the stable wire schema (v1).
func ToAPIRepeat(rec engine.Record, r engine.Repeat) api.RepeatV1 {
	b := r.Bounds()
	segs := r.Segments()
	v := api.RepeatV1{
		SequenceID: rec.SequenceID,
		SourceFile: rec.SourceFile,
		Start:      b.Start,
		End:        b.End,
		Score:      r.Score,
		Selected:   r.Selected,
		Segments:   make([]api.SegmentV1, 0, len(segs)),
		Stem:       r.Stem(),
		Loop:       r.Loop(),
	}
	for _, s := range segs {
		v.Segments = append(v.Segments, api.SegmentV1{
			LeftStart:  s.Left.Start,
			LeftEnd:    s.Left.End,
			RightStart: s.Right.Start,
			RightEnd:   s.Right.End,
		})
	}
	return v
}

// ToAPIRecord converts a record and the repeats chosen by Visible.
func ToAPIRecord(rec engine.Record, all bool) api.RecordV1 {
	vis := Visible(rec, all)
	v := api.RecordV1{
		SequenceID: rec.SequenceID,
		SourceFile: rec.SourceFile,
		Length:     rec.Length,
		Repeats:    make([]api.RepeatV1, 0, len(vis)),
	}
	if rec.Optimized {
		t := rec.Total
		v.Total = &t
	}
	for _, r := range vis {
		v.Repeats = append(v.Repeats, ToAPIRepeat(rec, r))
	}
	return v
}

// ToAPIReport wraps records into the json/yaml envelope.
func ToAPIReport(runID, command string, list []engine.Record, all bool) api.ReportV1 {
	rep := api.ReportV1{
		RunID:   runID,
		Command: command,
		Records: make([]api.RecordV1, 0, len(list)),
	}
	for _, rec := range list {
		rep.Records = append(rep.Records, ToAPIRecord(rec, all))
	}
	return rep
}

// WriteJSON writes the report as one pretty-indented JSON document.
func WriteJSON(w io.Writer, rep api.ReportV1) error {
	return jsonutil.EncodePretty(w, rep)
}

// WriteYAML writes the report as one YAML document.
func WriteYAML(w io.Writer, rep api.ReportV1) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}
