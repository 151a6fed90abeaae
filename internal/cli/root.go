// internal/cli/root.go
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"kmerseq/internal/cliutil"
	"kmerseq/internal/config"
	"kmerseq/internal/version"
)

// NewRootCommand builds the kmerseq command tree writing to stdout and
// stderr. Every call returns an independent tree, so tests can run commands
// side by side.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "kmerseq",
		Short: "Normalize nucleotide sequences and extract k-mers",
		Long: `kmerseq reads FASTA or FASTQ (optionally gzipped, "-" for stdin) and
normalizes, reverse-complements or splits records into k-mers.

Every flag can also be set as a KMERSEQ_* environment variable
(KMERSEQ_MASK_QUALITY for --mask-quality) or in a YAML file given with --config.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("kmerseq version {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file")
	pf.BoolP("verbose", "v", false, "log progress to stderr")
	pf.BoolP("quiet", "q", false, "only log errors")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.AddCommand(
		newKmersCommand(stdout, stderr),
		newNormalizeCommand(stdout, stderr),
		newRevcompCommand(stdout, stderr),
	)
	return root
}

// load binds every flag visible to cmd (inherited ones included) and reads
// the merged configuration.
func load(cmd *cobra.Command) (config.Config, error) {
	v := config.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config.Config{}, err
	}
	c, err := config.Load(v)
	if err != nil {
		return config.Config{}, &UsageError{Err: err}
	}
	return c, nil
}

// inputs expands positional arguments; see cliutil.ExpandInputs.
func inputs(args []string) ([]string, error) {
	paths, err := cliutil.ExpandInputs(args)
	if err != nil {
		return nil, &UsageError{Err: err}
	}
	return paths, nil
}
