// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"kmerseq/internal/cli"
	"kmerseq/internal/writers"
)

// Exit statuses.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitInterrupted = 130
)

// RunContext executes the command line argv and returns the process exit
// status. Errors are reported once on stderr.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	root := cli.NewRootCommand(stdout, stderr)
	root.SetArgs(argv)

	err := root.ExecuteContext(parent)
	switch {
	case err == nil:
		return ExitOK
	case parent.Err() != nil && errors.Is(err, parent.Err()):
		return ExitInterrupted
	case writers.IsBrokenPipe(err):
		return ExitOK
	}

	_, _ = fmt.Fprintf(stderr, "kmerseq: %v\n", err)
	if cli.IsUsage(err) {
		_, _ = fmt.Fprintln(stderr, "Run 'kmerseq --help' for usage.")
		return ExitUsage
	}
	return ExitFailure
}
