// Package sequence normalizes nucleotide byte streams, derives reverse
// complements and extracts k-mers from them.
//
// Every record shape exposes its bases through [Sequence]; shapes that also
// carry per-base qualities implement [QualitySequence]. The operations are
// package-level functions over those interfaces, so a sequence-only record
// never pays for quality handling:
//
//	rec := sequence.Bytes("ACGTNACGT")
//	clean := sequence.NormalizeSequence(sequence.StripReturns(rec), false)
//	rc := sequence.ReverseComplement(clean)
//	it := sequence.NewCanonicalKmers(clean, 4, rc)
//	for km, ok := it.Next(); ok; km, ok = it.Next() {
//		// km.Pos, km.Kmer, km.Reverse
//	}
//
// Transformations that may leave their input untouched ([StripReturns],
// [NormalizeSequence]) return a [View], which either borrows the caller's
// bytes or owns a freshly allocated buffer. Caller memory is never written.
//
// Nothing in this package is concurrent and nothing is shared and mutable:
// iterators may be built over the same input from many goroutines.
//
// Contract violations (k < 1, a reverse complement whose length differs from
// the sequence, k above [MaxBitKmerSize], quality and sequence of different
// lengths) panic. Ambiguous or non-biological bases are never errors.
package sequence
