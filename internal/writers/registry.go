// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"kmerseq/internal/kmers"
	"kmerseq/internal/output"
)

// Starter spins up a writer goroutine. Close the returned channel, then read
// the error channel once. A writer that stops early (write error, broken pipe)
// delivers its result before the input is closed and drains from then on, so
// a sender may select on the error channel to notice it.
type Starter func(out io.Writer, header bool, bufSize int) (chan<- kmers.Batch, <-chan error)

// BatchWriters maps a format name to its writer (last registration wins).
var BatchWriters = map[string]Starter{}

// RegisterBatch adds or replaces the writer for format.
func RegisterBatch(format string, fn Starter) { BatchWriters[format] = fn }

func init() {
	RegisterBatch(output.FormatTSV, StartTSVWriter)
	RegisterBatch(output.FormatJSONL, func(out io.Writer, _ bool, bufSize int) (chan<- kmers.Batch, <-chan error) {
		return StartJSONLWriter(out, bufSize)
	})
}

// Formats lists the registered format names in sorted order.
func Formats() []string {
	names := make([]string, 0, len(BatchWriters))
	for name := range BatchWriters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StartBatchWriter dispatches on format. An unknown format drains the input
// and reports an error on the returned channel.
func StartBatchWriter(out io.Writer, format string, header bool, bufSize int) (chan<- kmers.Batch, <-chan error) {
	if fn, ok := BatchWriters[format]; ok {
		return fn(out, header, bufSize)
	}
	in := make(chan kmers.Batch, max(bufSize, 1))
	errCh := make(chan error, 1)
	go func() {
		errCh <- fmt.Errorf("unknown output format %q (no writer registered)", format)
		for range in {
		}
	}()
	return in, errCh
}
