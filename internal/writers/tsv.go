// internal/writers/tsv.go
package writers

import (
	"bufio"
	"io"

	"kmerseq/internal/kmers"
	"kmerseq/internal/output"
)

// StartTSVWriter streams batches as TSV rows, optionally preceded by
// output.TSVHeader. A broken pipe ends the stream quietly. The result is sent
// as soon as writing stops; the remaining input is drained so senders never
// block.
func StartTSVWriter(out io.Writer, header bool, bufSize int) (chan<- kmers.Batch, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan kmers.Batch, bufSize)
	errCh := make(chan error, 1)

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		err := func() error {
			if header {
				if _, err := io.WriteString(bw, output.TSVHeader+"\n"); err != nil {
					return err
				}
			}
			for b := range in {
				if err := output.WriteTSV(bw, b); err != nil {
					return err
				}
			}
			return bw.Flush()
		}()
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
		for range in {
		}
	}()

	return in, errCh
}
