package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"invrep/core/repeat"
	"invrep/internal/engine"
	"invrep/pkg/api"

	"gopkg.in/yaml.v3"
)

func rep(score int, sel bool, segs ...repeat.Segment) engine.Repeat {
	return engine.Repeat{InvertedRepeat: repeat.MustInvertedRepeat(segs...), Score: score, Selected: sel}
}

func seg(ls, le, rs, re int) repeat.Segment {
	return repeat.Segment{Left: repeat.Range{Start: ls, End: le}, Right: repeat.Range{Start: rs, End: re}}
}

func sample() engine.Record {
	return engine.Record{
		SequenceID: "chr1",
		SourceFile: "a.fa",
		Length:     40,
		Repeats: []engine.Repeat{
			rep(8, true, seg(0, 8, 12, 20)),
			rep(5, false, seg(2, 6, 25, 29)),
		},
		Optimized: true,
		Total:     8,
	}
}

func TestTextHeaderAndTotal(t *testing.T) {
	var b bytes.Buffer
	if err := WriteText(&b, []engine.Record{sample()}, TextOptions{Header: true}, nil); err != nil {
		t.Fatal(err)
	}
	want := TSVHeader + "\n" +
		"chr1\ta.fa\t0\t20\t8\t8\t4\ttrue\t[0,8)~[12,20)\n" +
		"# total\tchr1\t8\n"
	if b.String() != want {
		t.Fatalf("got:\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestTextAllShowsUnselected(t *testing.T) {
	var b bytes.Buffer
	if err := WriteText(&b, []engine.Record{sample()}, TextOptions{All: true}, nil); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 2 rows + total, got %d: %q", len(lines), b.String())
	}
	if !strings.HasSuffix(lines[1], "false\t[2,6)~[25,29)") {
		t.Fatalf("unexpected row: %q", lines[1])
	}
}

func TestTextHeaderOnlyWhenEmpty(t *testing.T) {
	var b bytes.Buffer
	if err := WriteText(&b, nil, TextOptions{Header: true}, nil); err != nil {
		t.Fatal(err)
	}
	if b.String() != TSVHeader+"\n" {
		t.Fatalf("got %q", b.String())
	}
}

func TestTextPrettyUsesRenderer(t *testing.T) {
	var b bytes.Buffer
	rec := sample()
	rec.Optimized = false
	calls := 0
	render := func(_ []byte, _ engine.Repeat) string { calls++; return "# block\n" }
	if err := WriteText(&b, []engine.Record{rec}, TextOptions{Pretty: true}, render); err != nil {
		t.Fatal(err)
	}
	if calls != 2 || strings.Count(b.String(), "# block\n") != 2 {
		t.Fatalf("renderer calls=%d out=%q", calls, b.String())
	}
}

func TestJSONEnvelope(t *testing.T) {
	var b bytes.Buffer
	if err := WriteJSON(&b, ToAPIReport("run-1", "optimize", []engine.Record{sample()}, false)); err != nil {
		t.Fatal(err)
	}
	var got api.ReportV1
	if err := json.Unmarshal(b.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v\n%s", err, b.String())
	}
	if got.RunID != "run-1" || got.Command != "optimize" || len(got.Records) != 1 {
		t.Fatalf("envelope: %+v", got)
	}
	r := got.Records[0]
	if r.Total == nil || *r.Total != 8 || len(r.Repeats) != 1 {
		t.Fatalf("record: %+v", r)
	}
	want := api.SegmentV1{LeftStart: 0, LeftEnd: 8, RightStart: 12, RightEnd: 20}
	if r.Repeats[0].Segments[0] != want || r.Repeats[0].Stem != 8 || r.Repeats[0].Loop != 4 {
		t.Fatalf("repeat: %+v", r.Repeats[0])
	}
}

func TestJSONPredictOmitsTotal(t *testing.T) {
	rec := sample()
	rec.Optimized = false
	var b bytes.Buffer
	if err := WriteJSON(&b, ToAPIReport("", "predict", []engine.Record{rec}, false)); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(b.String(), `"total"`) || strings.Contains(b.String(), `"run_id"`) {
		t.Fatalf("unexpected keys:\n%s", b.String())
	}
}

func TestYAMLReport(t *testing.T) {
	var b bytes.Buffer
	if err := WriteYAML(&b, ToAPIReport("r", "optimize", []engine.Record{sample()}, true)); err != nil {
		t.Fatal(err)
	}
	var got api.ReportV1
	if err := yaml.Unmarshal(b.Bytes(), &got); err != nil {
		t.Fatalf("bad yaml: %v\n%s", err, b.String())
	}
	if len(got.Records) != 1 || len(got.Records[0].Repeats) != 2 {
		t.Fatalf("got %+v", got)
	}
	if !strings.Contains(b.String(), "left_start: 0") {
		t.Fatalf("missing snake_case keys:\n%s", b.String())
	}
}

func TestSortRecords(t *testing.T) {
	list := []engine.Record{
		{SequenceID: "b", Repeats: []engine.Repeat{rep(1, false, seg(5, 6, 8, 9))}},
		{SequenceID: "a", Repeats: []engine.Repeat{
			rep(3, false, seg(4, 5, 7, 8)),
			rep(2, false, seg(0, 2, 6, 8)),
			rep(1, false, seg(0, 2, 6, 8)),
		}},
	}
	SortRecords(list)
	if list[0].SequenceID != "a" || list[1].SequenceID != "b" {
		t.Fatalf("record order: %s %s", list[0].SequenceID, list[1].SequenceID)
	}
	var scores []int
	for _, r := range list[0].Repeats {
		scores = append(scores, r.Score)
	}
	if scores[0] != 1 || scores[1] != 2 || scores[2] != 3 {
		t.Fatalf("repeat order by score: %v", scores)
	}
}
