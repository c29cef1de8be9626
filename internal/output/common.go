package output

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "sequence_id\tsource_file\tstart\tend\tscore\tstem\tloop\tselected\tsegments"

// TotalPrefix starts the per-record footer of optimized text output.
const TotalPrefix = "# total"
