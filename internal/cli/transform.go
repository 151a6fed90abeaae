// internal/cli/transform.go
package cli

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"kmerseq-core/fasta"
	"kmerseq-core/fastq"
	"kmerseq-core/sequence"

	"kmerseq/internal/cmdutil"
	"kmerseq/internal/config"
	"kmerseq/internal/kmers"
	"kmerseq/internal/output"
	"kmerseq/internal/pipeline"
)

// recordFunc rewrites one record. qual is nil for FASTA input.
type recordFunc func(cfg config.Config, seq sequence.Sequence, qual []byte) (newSeq, newQual []byte, err error)

func newNormalizeCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize [files...]",
		Short: "Write records with normalized sequences",
		Long: `Write every record back in its input format with the sequence normalized:
uppercase, U->T, '.' and '~' -> '-', whitespace removed, unknown bytes -> N.
IUPAC ambiguity codes become N unless --iupac is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, args, stdout, stderr, func(cfg config.Config, seq sequence.Sequence, qual []byte) ([]byte, []byte, error) {
				v := sequence.NormalizeSequence(seq, cfg.IUPAC)
				if qual != nil && v.Len() != len(qual) {
					return nil, nil, fmt.Errorf("normalizing removed %d bases and would misalign the quality string", len(qual)-v.Len())
				}
				return v.Bytes(), qual, nil
			})
		},
	}
	cmd.Flags().Bool("iupac", false, "keep IUPAC ambiguity codes")
	return cmd
}

func newRevcompCommand(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "revcomp [files...]",
		Short: "Write reverse-complemented records",
		Long: `Write every record back in its input format, reverse-complemented.
FASTQ quality strings are reversed to stay aligned with their bases.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, args, stdout, stderr, func(_ config.Config, seq sequence.Sequence, qual []byte) ([]byte, []byte, error) {
				if qual != nil {
					qual = slices.Clone(qual)
					slices.Reverse(qual)
				}
				return sequence.ReverseComplement(seq), qual, nil
			})
		},
	}
}

func runTransform(cmd *cobra.Command, args []string, stdout, stderr io.Writer, fn recordFunc) error {
	cfg, err := load(cmd)
	if err != nil {
		return err
	}
	paths, err := inputs(args)
	if err != nil {
		return err
	}
	log := cmdutil.NewLogger(stderr, cfg.Verbose, cfg.Quiet)

	bw := bufio.NewWriterSize(stdout, 64<<10)
	var n int
	for _, path := range paths {
		log.Info("reading input", "path", path)
		err := pipeline.ReadRecords(cmd.Context(), path, func(rec kmers.Input) error {
			n++
			switch r := rec.(type) {
			case fasta.Record:
				seq, _, err := fn(cfg, sequence.StripReturns(r), nil)
				if err != nil {
					return fmt.Errorf("%s: record %s: %w", path, r.ID, err)
				}
				return output.WriteFASTA(bw, r.ID, r.Desc, seq)
			case fastq.Record:
				seq, qual, err := fn(cfg, r, r.Qual)
				if err != nil {
					return fmt.Errorf("%s: record %s: %w", path, r.ID, err)
				}
				return output.WriteFASTQ(bw, r.ID, r.Desc, seq, qual)
			default:
				return fmt.Errorf("unsupported record type %T", rec)
			}
		})
		if err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	log.Info("done", "records", n)
	return nil
}
