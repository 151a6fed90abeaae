// internal/cli/kmers.go
package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"kmerseq/internal/cmdutil"
	"kmerseq/internal/kmers"
	"kmerseq/internal/output"
	"kmerseq/internal/pipeline"
	"kmerseq/internal/writers"
)

// errWriterStopped ends the pipeline once the output writer has stopped, for
// example because the reader of a pipe went away.
var errWriterStopped = errors.New("output writer stopped")

func newKmersCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kmers [files...]",
		Short: "Extract k-mers from every record",
		Long: `Extract k-mers from every record and write one row per k-mer.

Modes:
  raw        every window, ambiguous bases included
  canonical  ACGT windows only, the smaller of the window and its reverse complement
  bit        ACGT windows packed into 4-bit codes (k <= 16); add --canonical for
             strand-independent codes`,
		Example: `  kmerseq kmers -k 21 reads.fq.gz
  kmerseq kmers --mode bit -k 8 --canonical --output jsonl ref.fa
  zcat reads.fq.gz | kmerseq kmers --mask-quality 5 --normalize`,
		SuggestionsMinimumDistance: 2,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKmers(cmd, args, stdout, stderr)
		},
	}

	f := cmd.Flags()
	f.IntP("k", "k", 21, "k-mer length")
	f.StringP("mode", "m", kmers.ModeCanonical.String(), "raw, canonical or bit")
	f.Bool("canonical", false, "bit mode: yield strand-independent codes")
	f.Bool("iupac", false, "keep IUPAC ambiguity codes when normalizing")
	f.Bool("normalize", false, "normalize sequences (uppercase, U->T, gaps, whitespace) first")
	f.String("mask-quality", "", "FASTQ: mask bases whose quality character sorts below this one")
	f.IntP("threads", "t", 0, "worker goroutines (0 = one per CPU)")
	f.StringP("output", "o", output.FormatTSV, "tsv or jsonl")
	f.Bool("no-header", false, "suppress the TSV header")
	return cmd
}

func runKmers(cmd *cobra.Command, args []string, stdout, stderr io.Writer) error {
	cfg, err := load(cmd)
	if err != nil {
		return err
	}
	opt, err := cfg.Options()
	if err != nil {
		return &UsageError{Err: err}
	}
	paths, err := inputs(args)
	if err != nil {
		return err
	}
	log := cmdutil.NewLogger(stderr, cfg.Verbose, cfg.Quiet)

	in, done := writers.StartBatchWriter(stdout, cfg.Output, !cfg.NoHeader, 64)
	var (
		werr    error
		stopped bool
	)
	st, runErr := cmdutil.RunStream(cmd.Context(),
		pipeline.Config{Threads: cfg.Threads, Kmers: opt, Logger: log},
		paths,
		func(b kmers.Batch) error {
			select {
			case werr = <-done:
				stopped = true
				return errWriterStopped
			default:
			}
			select {
			case in <- b:
				return nil
			case werr = <-done:
				stopped = true
				return errWriterStopped
			}
		},
	)
	close(in)
	if !stopped {
		werr = <-done
	}
	if werr != nil {
		return werr
	}
	if runErr != nil && !errors.Is(runErr, errWriterStopped) {
		return runErr
	}
	if stopped {
		log.Debug("output closed early", "records", st.Records)
		return nil
	}

	if st.Empty > 0 {
		cmdutil.Warnf(log, "%d of %d records yielded no k-mers (k=%d, mode=%s)", st.Empty, st.Records, opt.K, opt.Mode)
	}
	log.Info("done", "records", st.Records, "kmers", st.Kmers)
	return nil
}
