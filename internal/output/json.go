// internal/output/json.go
package output

import (
	"strconv"

	"kmerseq/internal/kmers"
	"kmerseq/pkg/api"
)

// ToAPIKmers converts a batch to the stable wire schema (v1).
func ToAPIKmers(b kmers.Batch) []api.KmerV1 {
	out := make([]api.KmerV1, 0, len(b.Kmers))
	for _, km := range b.Kmers {
		v := api.KmerV1{
			RecordID: b.RecordID,
			Pos:      km.Pos,
			Kmer:     km.Seq,
			Strand:   Strand(km.Reverse),
		}
		if b.Packed {
			v.Code = strconv.FormatUint(km.Code, 16)
		}
		out = append(out, v)
	}
	return out
}
