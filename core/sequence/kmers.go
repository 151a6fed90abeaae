// core/sequence/kmers.go
package sequence

import (
	"iter"

	"github.com/bassosimone/runtimex"
)

// Kmers slides a window of k bytes over a sequence, one offset at a time.
// It does not look at the bytes: run [StripReturns] and [NormalizeSequence]
// first if the input may contain line endings or noise.
type Kmers struct {
	seq []byte
	k   int
	pos int
}

// NewKmers returns an iterator over every k-sized window of s. A k longer
// than the sequence yields nothing. k must be at least 1.
func NewKmers(s Sequence, k int) *Kmers {
	runtimex.Assert(k >= 1)
	return &Kmers{seq: s.Sequence(), k: k}
}

// Next returns the window at the current offset and advances by one.
// The window aliases the sequence and cannot grow into it.
func (it *Kmers) Next() ([]byte, bool) {
	end := it.pos + it.k
	if end > len(it.seq) {
		return nil, false
	}
	w := it.seq[it.pos:end:end]
	it.pos++
	return w, true
}

// Remaining returns how many windows Next has yet to produce.
func (it *Kmers) Remaining() int {
	if n := len(it.seq) - it.k - it.pos + 1; n > 0 {
		return n
	}
	return 0
}

// All drains the iterator as (offset, window) pairs.
func (it *Kmers) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		for {
			pos := it.pos
			w, ok := it.Next()
			if !ok || !yield(pos, w) {
				return
			}
		}
	}
}
