package appcore

import (
	"io"

	"invrep/internal/config"
	"invrep/internal/engine"
	"invrep/internal/writers"
)

// RecordWriterFactory starts the writer for one run.
type RecordWriterFactory struct {
	Format  string
	Options writers.Options
}

// NewRecordWriterFactory resolves the writer settings; pretty is the
// effective flag after TTY detection.
func NewRecordWriterFactory(out config.OutputConfig, pretty bool, runID, command string) RecordWriterFactory {
	return RecordWriterFactory{
		Format: out.Format,
		Options: writers.Options{
			Sort:    out.Sort,
			Header:  out.Header,
			Pretty:  pretty,
			All:     out.All,
			RunID:   runID,
			Command: command,
		},
	}
}

// NeedSeq reports whether records must carry their sequence.
func (w RecordWriterFactory) NeedSeq() bool {
	return w.Format == "text" && w.Options.Pretty
}

func (w RecordWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Record, <-chan error) {
	return writers.StartRecordWriter(out, w.Format, w.Options, bufSize)
}
