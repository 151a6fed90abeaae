// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"kmerseq/internal/jsonlutil"
	"kmerseq/internal/kmers"
	"kmerseq/internal/output"
)

// StartJSONLWriter streams each k-mer as one api.KmerV1 JSON line.
func StartJSONLWriter(out io.Writer, bufSize int) (chan<- kmers.Batch, <-chan error) {
	return jsonlutil.Start[kmers.Batch](out, bufSize,
		func(enc *json.Encoder, b kmers.Batch) error {
			for _, v := range output.ToAPIKmers(b) {
				if err := enc.Encode(v); err != nil {
					return err
				}
			}
			return nil
		},
		IsBrokenPipe,
	)
}
