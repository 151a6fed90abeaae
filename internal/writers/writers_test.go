package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"syscall"
	"testing"
	"time"

	"kmerseq/internal/kmers"
	"kmerseq/internal/output"
	"kmerseq/pkg/api"
)

func sample() kmers.Batch {
	return kmers.Batch{RecordID: "s", Length: 5, Kmers: []kmers.Kmer{
		{Pos: 0, Seq: "AG"},
		{Pos: 3, Seq: "TA"},
	}}
}

func TestStartTSVWriter_Header(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartTSVWriter(&buf, true, 2)
	in <- sample()
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 || lines[0] != output.TSVHeader {
		t.Fatalf("unexpected TSV:\n%s", buf.String())
	}
	if lines[2] != "s\t3\tTA\t.\t+" {
		t.Fatalf("unexpected row %q", lines[2])
	}
}

func TestStartTSVWriter_NoHeader(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartTSVWriter(&buf, false, 0)
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

type epipeWriter struct{}

func (epipeWriter) Write([]byte) (int, error) { return 0, syscall.EPIPE }

func TestStartTSVWriter_BrokenPipeIsQuiet(t *testing.T) {
	in, done := StartTSVWriter(epipeWriter{}, true, 1)
	for i := 0; i < 5000; i++ {
		in <- sample()
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("broken pipe must not be reported, got %v", err)
	}
}

func TestStartTSVWriter_ReportsBeforeClose(t *testing.T) {
	in, done := StartTSVWriter(epipeWriter{}, false, 1)
	in <- kmers.Batch{RecordID: "big", Kmers: make([]kmers.Kmer, 20000)}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("broken pipe must not be reported, got %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("writer did not report the broken pipe before close")
	}
	for i := 0; i < 100; i++ {
		in <- sample() // still drained
	}
	close(in)
}

func TestJSONL_StreamsValidV1(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartJSONLWriter(&buf, 2)
	in <- sample()
	in <- kmers.Batch{RecordID: "b", Packed: true, Kmers: []kmers.Kmer{{Pos: 1, Seq: "AC", Code: 0x12, Reverse: true}}}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}

	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	var got []api.KmerV1
	for sc.Scan() {
		var v api.KmerV1
		if err := json.Unmarshal(sc.Bytes(), &v); err != nil {
			t.Fatalf("bad json line %d: %v\n%s", len(got)+1, err, sc.Text())
		}
		got = append(got, v)
	}
	if len(got) != 3 {
		t.Fatalf("want 3 lines, got %d", len(got))
	}
	if got[2] != (api.KmerV1{RecordID: "b", Pos: 1, Kmer: "AC", Code: "12", Strand: "-"}) {
		t.Fatalf("unexpected last line %+v", got[2])
	}
}

func TestStartBatchWriter_Dispatch(t *testing.T) {
	for _, format := range Formats() {
		var buf bytes.Buffer
		in, done := StartBatchWriter(&buf, format, false, 1)
		in <- sample()
		close(in)
		if err := <-done; err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if !strings.Contains(buf.String(), "AG") {
			t.Fatalf("%s: missing k-mer in %q", format, buf.String())
		}
	}
	if fmt.Sprint(Formats()) != "[jsonl tsv]" {
		t.Fatalf("unexpected formats %v", Formats())
	}
}

func TestUnknownFormatError(t *testing.T) {
	var b bytes.Buffer
	in, done := StartBatchWriter(&b, "nope-format", false, 1)
	in <- sample()
	in <- sample()
	close(in)
	err := <-done
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("want 'unknown output format' error, got: %v", err)
	}
}
