package writers

import (
	"fmt"
	"io"
	"sort"

	"invrep/internal/engine"
	"invrep/internal/pretty"
)

// Options are shared by every format; each format reads what it needs.
type Options struct {
	Sort   bool
	Header bool
	Pretty bool
	All    bool // print unselected repeats of optimized records too

	RunID   string
	Command string

	PrettyOptions pretty.Options
}

// Func drains in and writes it to w.
type Func func(w io.Writer, in <-chan engine.Record, opt Options) error

// Writer registry (format → handler). Formats register in init() blocks.
var registry = map[string]Func{}

// Register adds or replaces a format (idempotent last-wins).
func Register(format string, fn Func) { registry[format] = fn }

// Formats lists the registered format names in order.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the handler for format. Whatever the outcome, in is
// drained so producers never block. Broken pipes are not errors.
func Write(format string, w io.Writer, in <-chan engine.Record, opt Options) error {
	fn, ok := registry[format]
	if !ok {
		for range in {
		}
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	err := fn(w, in, opt)
	if err != nil {
		for range in {
		}
	}
	if IsBrokenPipe(err) {
		return nil
	}
	return err
}

// StartRecordWriter spins up a writer goroutine for records.
func StartRecordWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- engine.Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Record, bufSize)
	errCh := make(chan error, 1)
	go func() {
		errCh <- Write(format, out, in, opt)
	}()
	return in, errCh
}

func collect(in <-chan engine.Record) []engine.Record {
	var buf []engine.Record
	for rec := range in {
		buf = append(buf, rec)
	}
	return buf
}
