package output

import (
	"bufio"
	"fmt"
	"io"

	"invrep/internal/engine"
)

// TextOptions select the parts of the text output.
type TextOptions struct {
	Header bool
	Pretty bool
	All    bool
}

// Renderer draws the pretty block for one repeat.
type Renderer func(seq []byte, r engine.Repeat) string

// TextWriter prints records as TSV lines, one per visible repeat. The
// header goes out before the first record even when there are none.
type TextWriter struct {
	bw     *bufio.Writer
	opt    TextOptions
	render Renderer
	begun  bool
}

// NewTextWriter returns a writer; render may be nil when Pretty is off.
func NewTextWriter(w io.Writer, opt TextOptions, render Renderer) *TextWriter {
	return &TextWriter{bw: bufio.NewWriter(w), opt: opt, render: render}
}

func (t *TextWriter) begin() error {
	if t.begun {
		return nil
	}
	t.begun = true
	if t.opt.Header {
		if _, err := fmt.Fprintln(t.bw, TSVHeader); err != nil {
			return err
		}
	}
	return nil
}

// Write prints one record.
func (t *TextWriter) Write(rec engine.Record) error {
	if err := t.begin(); err != nil {
		return err
	}
	for _, r := range Visible(rec, t.opt.All) {
		if _, err := fmt.Fprintln(t.bw, FormatRowTSV(rec, r)); err != nil {
			return err
		}
		if t.opt.Pretty && t.render != nil {
			if _, err := io.WriteString(t.bw, t.render(rec.Seq, r)); err != nil {
				return err
			}
		}
	}
	if rec.Optimized {
		if _, err := fmt.Fprintln(t.bw, FormatTotal(rec)); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes the header if nothing was written and flushes the buffer.
func (t *TextWriter) Flush() error {
	if err := t.begin(); err != nil {
		return err
	}
	return t.bw.Flush()
}

// WriteText prints a whole list.
func WriteText(w io.Writer, list []engine.Record, opt TextOptions, render Renderer) error {
	tw := NewTextWriter(w, opt, render)
	for _, rec := range list {
		if err := tw.Write(rec); err != nil {
			return err
		}
	}
	return tw.Flush()
}
