package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bassosimone/slogstub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmerseq/internal/kmers"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

func collect(t *testing.T, cfg Config, paths ...string) ([]kmers.Batch, error) {
	t.Helper()
	var out []kmers.Batch
	err := ForEachBatch(t.Context(), cfg, paths, func(b kmers.Batch) error {
		out = append(out, b)
		return nil
	})
	return out, err
}

func TestForEachBatchKeepsInputOrder(t *testing.T) {
	var sb strings.Builder
	const n = 300
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, ">r%d\n%s\n", i, strings.Repeat("ACGT", 1+i%7))
	}
	fn := writeFile(t, "many.fa", sb.String())

	got, err := collect(t, Config{Threads: 4, Kmers: kmers.Options{K: 3, Mode: kmers.ModeRaw}}, fn)
	require.NoError(t, err)
	require.Len(t, got, n)
	for i, b := range got {
		assert.Equal(t, i, b.Index)
		assert.Equal(t, fmt.Sprintf("r%d", i), b.RecordID)
		assert.Equal(t, 4*(1+i%7), b.Length)
		assert.Len(t, b.Kmers, b.Length-2)
	}
}

func TestForEachBatchMixedFormats(t *testing.T) {
	fa := writeFile(t, "a.fa", "\n>f1 first\nAGC\nT\n")
	fq := writeFile(t, "b.fq", "@q1\nAGCT\n+\nAAA0\n")
	cfg := Config{Threads: 2, Kmers: kmers.Options{K: 1, Mode: kmers.ModeCanonical, MaskQuality: '5'}}

	got, err := collect(t, cfg, fa, fq)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "f1", got[0].RecordID)
	assert.Len(t, got[0].Kmers, 4)
	assert.Equal(t, "q1", got[1].RecordID)
	assert.Equal(t, 1, got[1].Index)
	assert.Len(t, got[1].Kmers, 3, "masked base is skipped")
}

func TestForEachBatchEmptyInput(t *testing.T) {
	fn := writeFile(t, "empty.fa", "\n\n")
	got, err := collect(t, Config{Kmers: kmers.Options{K: 3}}, fn)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestForEachBatchUnknownFormat(t *testing.T) {
	fn := writeFile(t, "x.txt", "ACGT\n")
	_, err := collect(t, Config{Threads: 1, Kmers: kmers.Options{K: 3}}, fn)
	require.ErrorIs(t, err, ErrUnknownFormat)
	assert.Contains(t, err.Error(), "x.txt")
}

func TestForEachBatchMalformedFASTQ(t *testing.T) {
	fn := writeFile(t, "bad.fq", "@q1\nAGCT\n+\nAA\n")
	_, err := collect(t, Config{Threads: 1, Kmers: kmers.Options{K: 3}}, fn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.fq")
}

func TestForEachBatchInvalidOptions(t *testing.T) {
	_, err := collect(t, Config{Kmers: kmers.Options{K: 17, Mode: kmers.ModeBit}}, "does-not-exist.fa")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bit mode")
}

func TestForEachBatchVisitErrorStops(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		fmt.Fprintf(&sb, ">r%d\nACGTACGT\n", i)
	}
	fn := writeFile(t, "stop.fa", sb.String())

	boom := errors.New("boom")
	var seen int
	err := ForEachBatch(t.Context(), Config{Threads: 3, Kmers: kmers.Options{K: 4}}, []string{fn},
		func(b kmers.Batch) error {
			seen++
			if b.Index == 5 {
				return boom
			}
			return nil
		})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 6, seen)
}

func TestForEachBatchCanceled(t *testing.T) {
	fn := writeFile(t, "c.fa", ">a\nACGT\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForEachBatch(ctx, Config{Kmers: kmers.Options{K: 2}}, []string{fn}, func(kmers.Batch) error {
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
}

// newCapturingLogger returns a logger that captures every record it is given.
func newCapturingLogger() (*slog.Logger, *[]slog.Record) {
	var records []slog.Record
	handler := &slogstub.FuncHandler{
		EnabledFunc: func(ctx context.Context, level slog.Level) bool {
			return true
		},
		HandleFunc: func(ctx context.Context, record slog.Record) error {
			records = append(records, record)
			return nil
		},
	}
	return slog.New(handler), &records
}

func TestForEachBatchLogs(t *testing.T) {
	fn := writeFile(t, "log.fa", ">a\nACGT\n")
	logger, records := newCapturingLogger()

	_, err := collect(t, Config{Threads: 1, Kmers: kmers.Options{K: 2}, Logger: logger}, fn)
	require.NoError(t, err)
	require.Len(t, *records, 2)

	first := (*records)[0]
	assert.Equal(t, slog.LevelInfo, first.Level)
	assert.Equal(t, "reading input", first.Message)

	last := (*records)[1]
	assert.Equal(t, slog.LevelDebug, last.Level)
	attrs := map[string]string{}
	last.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.String()
		return true
	})
	assert.Equal(t, "1", attrs["records"])
	assert.Equal(t, "1", attrs["threads"])
}
