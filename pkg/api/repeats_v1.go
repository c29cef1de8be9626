// pkg/api/repeats_v1.go
package api

// SegmentV1 is one pair of complementary arms, half-open coordinates.
type SegmentV1 struct {
	LeftStart  int `json:"left_start" yaml:"left_start"`
	LeftEnd    int `json:"left_end" yaml:"left_end"`
	RightStart int `json:"right_start" yaml:"right_start"`
	RightEnd   int `json:"right_end" yaml:"right_end"`
}

// RepeatV1 is the stable JSON/JSONL/YAML schema for one inverted repeat.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RepeatV1 struct {
	SequenceID string      `json:"sequence_id" yaml:"sequence_id"`
	SourceFile string      `json:"source_file,omitempty" yaml:"source_file,omitempty"`
	Start      int         `json:"start" yaml:"start"`
	End        int         `json:"end" yaml:"end"`
	Score      int         `json:"score" yaml:"score"`
	Selected   bool        `json:"selected" yaml:"selected"`
	Segments   []SegmentV1 `json:"segments" yaml:"segments"`
	Stem       int         `json:"stem" yaml:"stem"`
	Loop       int         `json:"loop" yaml:"loop"`
}

// RecordV1 groups the repeats of one input sequence. Total is set only
// when the record went through selection.
type RecordV1 struct {
	SequenceID string     `json:"sequence_id" yaml:"sequence_id"`
	SourceFile string     `json:"source_file,omitempty" yaml:"source_file,omitempty"`
	Length     int        `json:"length" yaml:"length"`
	Total      *int       `json:"total,omitempty" yaml:"total,omitempty"`
	Repeats    []RepeatV1 `json:"repeats" yaml:"repeats"`
}

// ReportV1 is the envelope of the json and yaml formats.
type ReportV1 struct {
	RunID   string     `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Command string     `json:"command" yaml:"command"`
	Records []RecordV1 `json:"records" yaml:"records"`
}
