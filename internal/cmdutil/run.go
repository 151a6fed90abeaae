// internal/cmdutil/run.go
package cmdutil

import (
	"context"

	"kmerseq/internal/kmers"
	"kmerseq/internal/pipeline"
)

// Stats summarizes one run.
type Stats struct {
	Records int
	Kmers   int
	Empty   int // records too short or too ambiguous to yield a k-mer
}

// RunStream runs the shared pipeline and streams every batch via send.
// It returns the counts seen so far and the first error encountered.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	seqFiles []string,
	send func(kmers.Batch) error,
) (Stats, error) {
	var st Stats
	err := pipeline.ForEachBatch(ctx, cfg, seqFiles, func(b kmers.Batch) error {
		st.Records++
		st.Kmers += len(b.Kmers)
		if len(b.Kmers) == 0 {
			st.Empty++
		}
		return send(b)
	})
	return st, err
}
