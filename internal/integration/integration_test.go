// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kmerseq/internal/app"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	code := app.RunContext(t.Context(), argv, &out, &errb)
	return code, out.String(), errb.String()
}

func TestKmersCanonicalTSV(t *testing.T) {
	fa := write(t, "s.fa", ">s\nAGNTA\n")
	code, out, stderr := run(t, "kmers", "-k", "2", fa)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	const want = "record_id\tpos\tkmer\tcode\tstrand\ns\t0\tAG\t.\t+\ns\t3\tTA\t.\t+\n"
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestKmersBitJSONL(t *testing.T) {
	fa := write(t, "s.fa", ">s\nGT\n")
	code, out, stderr := run(t, "kmers", "--mode", "bit", "-k", "2", "--canonical", "--output", "jsonl", fa)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	const want = `{"record_id":"s","pos":0,"kmer":"AC","code":"12","strand":"-"}` + "\n"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestKmersMaskQualityFASTQ(t *testing.T) {
	fq := write(t, "q.fq", "@q\nAGCT\n+\nAAA0\n")
	code, out, stderr := run(t, "kmers", "-k", "1", "--mask-quality", "5", "--no-header", fq)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	const want = "q\t0\tA\t.\t+\nq\t1\tC\t.\t-\nq\t2\tC\t.\t+\n"
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestKmersFromEnvironment(t *testing.T) {
	t.Setenv("KMERSEQ_K", "3")
	t.Setenv("KMERSEQ_MODE", "raw")
	t.Setenv("KMERSEQ_NO_HEADER", "true")
	fa := write(t, "s.fa", ">s\nACNG\n")
	code, out, stderr := run(t, "kmers", fa)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if out != "s\t0\tACN\t.\t+\ns\t1\tCNG\t.\t+\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestKmersWarnsOnEmptyRecords(t *testing.T) {
	fa := write(t, "s.fa", ">short\nAC\n")
	code, _, stderr := run(t, "kmers", "-k", "5", fa)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if !strings.Contains(stderr, "1 of 1 records yielded no k-mers") {
		t.Fatalf("missing warning in %q", stderr)
	}
	if code, _, stderr = run(t, "kmers", "-q", "-k", "5", fa); code != 0 || stderr != "" {
		t.Fatalf("quiet run: exit %d, stderr %q", code, stderr)
	}
}

func TestNormalizeFASTA(t *testing.T) {
	fa := write(t, "n.fa", ">a desc\nac\ngu\n>b\nryN.\n")
	code, out, stderr := run(t, "normalize", fa)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if out != ">a desc\nACGT\n>b\nNNN-\n" {
		t.Fatalf("unexpected output %q", out)
	}

	_, out, _ = run(t, "normalize", "--iupac", fa)
	if !strings.HasSuffix(out, ">b\nRYN-\n") {
		t.Fatalf("iupac codes not kept: %q", out)
	}
}

func TestRevcompFASTQ(t *testing.T) {
	fq := write(t, "r.fq", "@q one\nAAGC\n+\nABCD\n")
	code, out, stderr := run(t, "revcomp", fq)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if out != "@q one\nGCTT\n+\nDCBA\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestExitCodes(t *testing.T) {
	fa := write(t, "s.fa", ">s\nACGT\n")
	tests := []struct {
		name string
		argv []string
		code int
	}{
		{"bit k too long", []string{"kmers", "--mode", "bit", "-k", "17", fa}, 2},
		{"unknown flag", []string{"kmers", "--bogus", fa}, 2},
		{"unknown command", []string{"frobnicate"}, 2},
		{"bad output", []string{"kmers", "-o", "xml", fa}, 2},
		{"verbose and quiet", []string{"kmers", "-v", "-q", fa}, 2},
		{"missing file", []string{"kmers", filepath.Join(t.TempDir(), "missing.fa")}, 1},
		{"not fasta", []string{"kmers", write(t, "x.txt", "hello\n")}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, _, stderr := run(t, tc.argv...)
			if code != tc.code {
				t.Fatalf("exit %d, want %d (stderr %q)", code, tc.code, stderr)
			}
			if !strings.HasPrefix(stderr, "kmerseq: ") {
				t.Fatalf("error not reported: %q", stderr)
			}
		})
	}
}

func TestVersionAndHelp(t *testing.T) {
	code, out, _ := run(t, "--version")
	if code != 0 || out != "kmerseq version dev\n" {
		t.Fatalf("version: exit %d, out %q", code, out)
	}
	code, out, _ = run(t, "--help")
	if code != 0 || !strings.Contains(out, "revcomp") {
		t.Fatalf("help: exit %d, out %q", code, out)
	}
}
