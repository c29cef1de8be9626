package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const plain = `>seq1 first record
ACGT
acgt
>seq2
NNnn
`

func collect(t *testing.T, path string, chunkSize, overlap int) []Chunk {
	t.Helper()
	var out []Chunk
	err := ScanPath(context.Background(), path, chunkSize, overlap, func(c Chunk) error {
		out = append(out, c)
		return nil
	})
	if err != nil {
		t.Fatalf("ScanPath: %v", err)
	}
	return out
}

// writeGz creates a gzipped FASTA file under t.TempDir and returns its path.
func writeGz(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestScanRecords(t *testing.T) {
	var got []Chunk
	err := Scan(context.Background(), strings.NewReader(plain), 0, 0, func(c Chunk) error {
		got = append(got, c)
		return nil
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].RecordID != "seq1" || string(got[0].Seq) != "ACGTacgt" || !got[0].Last {
		t.Errorf("bad first record: %+v", got[0])
	}
	if got[0].ID() != "seq1" {
		t.Errorf("whole-record id = %q", got[0].ID())
	}
	if got[1].RecordID != "seq2" || got[1].RecordLen != 4 {
		t.Errorf("bad second record: %+v", got[1])
	}
}

func TestScanGzip(t *testing.T) {
	for _, name := range []string{"x.fa.gz", "x.fa"} {
		got := collect(t, writeGz(t, name, plain), 0, 0)
		if len(got) != 2 || got[0].RecordID != "seq1" || got[1].RecordID != "seq2" {
			t.Fatalf("%s: gzip parse failed, got %+v", name, got)
		}
	}
}

func TestScanStdin(t *testing.T) {
	orig := os.Stdin
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(w, plain)
		_ = w.Close()
	}()

	if got := collect(t, "-", 0, 0); len(got) != 2 {
		t.Fatalf("expected 2 records from stdin, got %d", len(got))
	}
}

func TestScanChunksOverlap(t *testing.T) {
	got := []Chunk{}
	err := Scan(context.Background(), strings.NewReader(">r\nAAAACCCCGG\n"), 4, 1, func(c Chunk) error {
		got = append(got, c)
		return nil
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	wantIDs := []string{"r:0-4", "r:3-7", "r:6-10"}
	var ids []string
	for _, c := range got {
		ids = append(ids, c.ID())
		if c.RecordLen != 10 {
			t.Errorf("RecordLen = %d", c.RecordLen)
		}
	}
	if !reflect.DeepEqual(ids, wantIDs) {
		t.Fatalf("ids = %v, want %v", ids, wantIDs)
	}
	if string(got[1].Seq) != "ACCC" || got[1].Offset != 3 || got[1].Index != 1 {
		t.Errorf("bad middle chunk: %+v", got[1])
	}
	if got[0].Last || got[1].Last || !got[2].Last {
		t.Errorf("Last flags wrong: %v %v %v", got[0].Last, got[1].Last, got[2].Last)
	}
}

func TestWindows(t *testing.T) {
	cases := []struct {
		n, size, overlap int
		want             [][2]int
	}{
		{10, 0, 0, [][2]int{{0, 10}}},
		{10, 10, 2, [][2]int{{0, 10}}},
		{10, 5, 0, [][2]int{{0, 5}, {5, 10}}},
		{10, 4, 4, [][2]int{{0, 10}}},
		{10, 4, -1, [][2]int{{0, 4}, {4, 8}, {8, 10}}},
		{0, 4, 1, [][2]int{{0, 0}}},
	}
	for _, c := range cases {
		if got := Windows(c.n, c.size, c.overlap); !reflect.DeepEqual(got, c.want) {
			t.Errorf("Windows(%d,%d,%d) = %v, want %v", c.n, c.size, c.overlap, got, c.want)
		}
	}
}

func TestScanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n := 0
	err := Scan(ctx, strings.NewReader(plain), 0, 0, func(Chunk) error {
		n++
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 records due to immediate cancel, got %d", n)
	}
}

func TestScanEmitErrorStops(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := Scan(context.Background(), strings.NewReader(plain), 0, 0, func(Chunk) error {
		n++
		return stop
	})
	if !errors.Is(err, stop) || n != 1 {
		t.Fatalf("err=%v n=%d", err, n)
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.fa")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
