// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Chunk is a window of one FASTA record. Offset is 0-based in the record;
// RecordLen is the length of the whole record.
type Chunk struct {
	RecordID  string
	Offset    int
	RecordLen int
	Seq       []byte
	Index     int  // position of this chunk within its record
	Last      bool // final chunk of the record
}

// ID names the chunk: the record id for a whole record, otherwise
// "<id>:<start>-<end>".
func (c Chunk) ID() string {
	if c.Offset == 0 && len(c.Seq) == c.RecordLen {
		return c.RecordID
	}
	return fmt.Sprintf("%s:%d-%d", c.RecordID, c.Offset, c.Offset+len(c.Seq))
}

// Windows returns the [start, end) windows a record of length n is cut
// into. chunkSize <= 0, a record no longer than chunkSize, or an overlap
// that leaves no forward progress yield the whole record.
func Windows(n, chunkSize, overlap int) [][2]int {
	if overlap < 0 {
		overlap = 0
	}
	step := chunkSize - overlap
	if chunkSize <= 0 || chunkSize >= n || step <= 0 {
		return [][2]int{{0, n}}
	}
	var out [][2]int
	for off := 0; ; off += step {
		end := off + chunkSize
		if end > n {
			end = n
		}
		out = append(out, [2]int{off, end})
		if end == n {
			return out
		}
	}
}

// Scan parses FASTA from r and emits every record as one or more
// overlapping chunks. Cancellation is checked between lines and between
// chunks. A non-nil error from emit stops the scan and is returned.
func Scan(ctx context.Context, r io.Reader, chunkSize, overlap int, emit func(Chunk) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id     string
		header bool
		seq    = make([]byte, 0, 1<<20)
	)

	flush := func() error {
		if !header && len(seq) == 0 {
			return nil
		}
		wins := Windows(len(seq), chunkSize, overlap)
		for i, w := range wins {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			err := emit(Chunk{
				RecordID:  id,
				Offset:    w[0],
				RecordLen: len(seq),
				Seq:       append([]byte(nil), seq[w[0]:w[1]]...),
				Index:     i,
				Last:      i == len(wins)-1,
			})
			if err != nil {
				return err
			}
		}
		return nil
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			seq = seq[:0]
			id = parseHeaderID(line[1:])
			header = true
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// ScanPath opens path (see Open) and scans it.
func ScanPath(ctx context.Context, path string, chunkSize, overlap int, emit func(Chunk) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return Scan(ctx, rc, chunkSize, overlap, emit)
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
