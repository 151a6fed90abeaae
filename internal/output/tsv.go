// internal/output/tsv.go
package output

import (
	"io"
	"strconv"

	"kmerseq/internal/kmers"
)

// WriteTSV writes one row per k-mer of b. The code column is lowercase hex
// for packed batches and "." otherwise.
func WriteTSV(w io.Writer, b kmers.Batch) error {
	line := make([]byte, 0, 64)
	for _, km := range b.Kmers {
		line = append(line[:0], b.RecordID...)
		line = append(line, '\t')
		line = strconv.AppendInt(line, int64(km.Pos), 10)
		line = append(line, '\t')
		line = append(line, km.Seq...)
		line = append(line, '\t')
		if b.Packed {
			line = strconv.AppendUint(line, km.Code, 16)
		} else {
			line = append(line, '.')
		}
		line = append(line, '\t')
		line = append(line, Strand(km.Reverse)...)
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}
