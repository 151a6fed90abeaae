// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Start spins up a JSONL encoder goroutine for values of type T.
//   - encode: writes one value (convert to wire type, then enc.Encode; may emit several lines)
//   - isBroken: recognizes broken/closed pipe errors, which end the stream without error
//
// The result is delivered as soon as encoding stops, which is either when the
// input is closed or at the first error. After an error the goroutine keeps
// draining the input so that senders never block.
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)
		err := func() error {
			for v := range in {
				if err := encode(enc, v); err != nil {
					return err
				}
			}
			return bw.Flush()
		}()
		if err != nil && isBroken(err) {
			err = nil
		}
		done <- err
		for range in {
		}
	}()

	return in, done
}
