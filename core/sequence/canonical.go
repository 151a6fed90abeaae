// core/sequence/canonical.go
package sequence

import (
	"bytes"
	"iter"

	"github.com/bassosimone/runtimex"
)

var acgt [256]bool

func init() {
	for _, c := range []byte("ACGT") {
		acgt[c] = true
	}
}

// CanonicalKmer is one strand-independent k-mer.
type CanonicalKmer struct {
	// Pos is the offset of the window in the forward sequence.
	Pos int

	// Kmer is the lexicographically smaller of the forward window and its
	// reverse complement. It aliases either the sequence or the reverse
	// complement passed to NewCanonicalKmers.
	Kmer []byte

	// Reverse is set when Kmer was taken from the reverse complement.
	Reverse bool
}

// CanonicalKmers yields canonical k-mers, skipping every window that holds a
// byte other than uppercase A, C, G or T.
type CanonicalKmers struct {
	seq []byte
	rc  []byte
	k   int
	pos int

	// seq[pos:valid] is known to be all ACGT.
	valid int
}

// NewCanonicalKmers returns an iterator over the canonical k-mers of s.
// rc must be the [ReverseComplement] of s; its length must match. k must be
// at least 1.
func NewCanonicalKmers(s Sequence, k int, rc []byte) *CanonicalKmers {
	seq := s.Sequence()
	runtimex.Assert(k >= 1)
	runtimex.Assert(len(rc) == len(seq))
	return &CanonicalKmers{seq: seq, rc: rc, k: k}
}

// Next returns the canonical k-mer of the next valid window.
func (it *CanonicalKmers) Next() (CanonicalKmer, bool) {
	n := len(it.seq)
	for it.pos+it.k <= n {
		end := it.pos + it.k
		if it.valid < it.pos {
			it.valid = it.pos
		}
		for it.valid < end && acgt[it.seq[it.valid]] {
			it.valid++
		}
		if it.valid < end {
			// No window covering seq[valid] can be yielded.
			it.pos = it.valid + 1
			continue
		}

		i := it.pos
		it.pos++
		fwd := it.seq[i:end:end]
		j := n - end
		rev := it.rc[j : j+it.k : j+it.k]
		if bytes.Compare(rev, fwd) < 0 {
			return CanonicalKmer{Pos: i, Kmer: rev, Reverse: true}, true
		}
		return CanonicalKmer{Pos: i, Kmer: fwd}, true
	}
	return CanonicalKmer{}, false
}

// All drains the iterator.
func (it *CanonicalKmers) All() iter.Seq[CanonicalKmer] {
	return func(yield func(CanonicalKmer) bool) {
		for km, ok := it.Next(); ok; km, ok = it.Next() {
			if !yield(km) {
				return
			}
		}
	}
}
