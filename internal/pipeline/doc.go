// Package pipeline streams FASTA/FASTQ records through kmers.Extract on a
// pool of workers and hands the resulting batches to a visit callback in
// input order.
//
// The pipeline owns orchestration only: reading and format detection,
// fan-out, reordering and cancellation. Extraction lives in internal/kmers
// and presentation in internal/writers.
package pipeline
