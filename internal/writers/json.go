package writers

import (
	"io"

	"invrep/internal/engine"
	"invrep/internal/output"
	"invrep/pkg/api"
)

func init() {
	Register("json", func(w io.Writer, in <-chan engine.Record, opt Options) error {
		return output.WriteJSON(w, report(in, opt))
	})
	Register("yaml", func(w io.Writer, in <-chan engine.Record, opt Options) error {
		return output.WriteYAML(w, report(in, opt))
	})
}

func report(in <-chan engine.Record, opt Options) api.ReportV1 {
	buf := collect(in)
	if opt.Sort {
		output.SortRecords(buf)
	}
	return output.ToAPIReport(opt.RunID, opt.Command, buf, opt.All)
}
