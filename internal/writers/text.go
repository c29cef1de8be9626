package writers

import (
	"io"

	"invrep/internal/engine"
	"invrep/internal/output"
	"invrep/internal/pretty"
)

func init() {
	Register("text", writeText)
	Register("tsv", func(w io.Writer, in <-chan engine.Record, opt Options) error {
		opt.Pretty = false
		return writeText(w, in, opt)
	})
}

func writeText(w io.Writer, in <-chan engine.Record, opt Options) error {
	popt := opt.PrettyOptions
	render := func(seq []byte, r engine.Repeat) string {
		return pretty.RenderRepeatWithOptions(seq, r, popt)
	}
	topt := output.TextOptions{Header: opt.Header, Pretty: opt.Pretty, All: opt.All}
	if opt.Sort {
		buf := collect(in)
		output.SortRecords(buf)
		return output.WriteText(w, buf, topt, render)
	}
	tw := output.NewTextWriter(w, topt, render)
	for rec := range in {
		if err := tw.Write(rec); err != nil {
			return err
		}
	}
	return tw.Flush()
}
