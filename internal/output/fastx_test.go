// internal/output/fastx_test.go
package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteFASTAWraps(t *testing.T) {
	buf := &bytes.Buffer{}
	seq := []byte(strings.Repeat("A", FASTALineWidth) + "CG")
	if err := WriteFASTA(buf, "p1", "len=62", seq); err != nil {
		t.Fatalf("fasta: %v", err)
	}
	want := ">p1 len=62\n" + strings.Repeat("A", FASTALineWidth) + "\nCG\n"
	if buf.String() != want {
		t.Fatalf("unexpected FASTA output:\n%s", buf.String())
	}
}

func TestWriteFASTAEmptySequence(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteFASTA(buf, "e", "", nil); err != nil {
		t.Fatalf("fasta: %v", err)
	}
	if buf.String() != ">e\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestWriteFASTQ(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteFASTQ(buf, "q", "", []byte("ACGT"), []byte("IIII")); err != nil {
		t.Fatalf("fastq: %v", err)
	}
	if buf.String() != "@q\nACGT\n+\nIIII\n" {
		t.Fatalf("got %q", buf.String())
	}
	if err := WriteFASTQ(buf, "q", "", []byte("ACGT"), []byte("II")); err == nil {
		t.Fatalf("expected length mismatch error")
	}
}
