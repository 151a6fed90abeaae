// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"
	"sync"

	"kmerseq/internal/kmers"
)

// Config controls the extraction pipeline.
type Config struct {
	Threads int // worker goroutines; < 1 means runtime.NumCPU()
	Kmers   kmers.Options
	Logger  SLogger // nil discards
}

func (c Config) logger() SLogger {
	if c.Logger == nil {
		return discardSLogger{}
	}
	return c.Logger
}

// ForEachBatch extracts k-mers from every record of every path and calls
// visit once per record, in input order. Records are numbered across paths
// starting at 0 (Batch.Index).
//
// It returns the first error encountered: a visit error stops the run, and
// cancellation of ctx is reported as ctx.Err().
func ForEachBatch(
	ctx context.Context,
	cfg Config,
	paths []string,
	visit func(kmers.Batch) error,
) error {
	if err := cfg.Kmers.Validate(); err != nil {
		return err
	}
	threads := cfg.Threads
	if threads < 1 {
		threads = runtime.NumCPU()
	}
	log := cfg.logger()

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type job struct {
		idx int
		rec kmers.Input
	}
	jobs := make(chan job, threads*2)
	results := make(chan kmers.Batch, threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					b := kmers.Extract(j.rec, cfg.Kmers)
					b.Index = j.idx
					select {
					case results <- b:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: restore input order before visiting.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]kmers.Batch, threads*2)
		next := 0
		for b := range results {
			if cerr != nil {
				continue
			}
			pending[b.Index] = b
			for {
				nb, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if err := visit(nb); err != nil {
					cerr = err
					cancel()
					break
				}
			}
		}
	}()

	// Feed work
	var (
		rerr error
		n    int
	)
	for _, path := range paths {
		log.Info("reading input", "path", path)
		rerr = ReadRecords(ctx, path, func(rec kmers.Input) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- job{idx: n, rec: rec}:
				n++
				return nil
			}
		})
		if rerr != nil {
			break
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if cerr != nil {
		return cerr
	}
	if err := parent.Err(); err != nil {
		return err
	}
	if rerr != nil {
		return rerr
	}
	log.Debug("pipeline finished", "records", n, "threads", threads)
	return nil
}
