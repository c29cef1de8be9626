package writers

import (
	"encoding/json"
	"io"

	"invrep/internal/engine"
	"invrep/internal/jsonlutil"
	"invrep/internal/output"
)

func init() {
	Register("jsonl", writeJSONL)
}

// StartRepeatJSONLWriter streams the visible repeats of each record, one
// api.RepeatV1 per line.
func StartRepeatJSONLWriter(out io.Writer, all bool, bufSize int) (chan<- engine.Record, <-chan error) {
	return jsonlutil.Start[engine.Record](out, bufSize,
		func(enc *json.Encoder, rec engine.Record) error {
			for _, r := range output.Visible(rec, all) {
				if err := enc.Encode(output.ToAPIRepeat(rec, r)); err != nil {
					return err
				}
			}
			return nil
		},
		IsBrokenPipe,
	)
}

func writeJSONL(w io.Writer, in <-chan engine.Record, opt Options) error {
	var src <-chan engine.Record = in
	if opt.Sort {
		buf := collect(in)
		output.SortRecords(buf)
		ch := make(chan engine.Record, len(buf))
		for _, rec := range buf {
			ch <- rec
		}
		close(ch)
		src = ch
	}
	sink, done := StartRepeatJSONLWriter(w, opt.All, 0)
	for rec := range src {
		select {
		case sink <- rec:
		case err := <-done:
			for range src {
			}
			return err
		}
	}
	close(sink)
	return <-done
}
