// Package kmers turns one sequence record into its k-mers.
//
// Extract is pure and synchronous; the pipeline fans it out over workers.
// Options.Validate is the boundary where user input is checked, so the
// precondition panics in kmerseq-core/sequence are never reached from flags
// or config files.
package kmers
