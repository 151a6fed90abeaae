// core/sequence/bitkmer.go
package sequence

import (
	"iter"

	"github.com/bassosimone/runtimex"
)

// MaxBitKmerSize is the longest k-mer a BitKmer code can hold: sixteen 4-bit
// nucleotide codes fill a uint64.
const MaxBitKmerSize = 16

/* ------------------------ 4-bit nucleotide codes ------------------------ */

const noCode = 0xff

// bit0=A bit1=C bit2=G bit3=T; ambiguity codes are unions, the gap is empty.
// A < C < G < T numerically, so packed codes sort like the bytes they encode.
var nuclCode [256]uint8

// nibble -> letter
const nuclLetters = "-ACMGRSVTWYHKDBN"

// complementCode[c] is c with its four bits reversed: A<->T, C<->G.
var complementCode [16]uint8

func init() {
	for i := range nuclCode {
		nuclCode[i] = noCode
	}
	for code := 0; code < len(nuclLetters); code++ {
		nuclCode[nuclLetters[code]] = uint8(code)
	}
	for c := range complementCode {
		complementCode[c] = uint8(c&1<<3 | c&2<<1 | c&4>>1 | c&8>>3)
	}
}

// NucleotideCode returns the 4-bit code of an uppercase nucleotide, ambiguity
// code or gap.
func NucleotideCode(b byte) (uint8, bool) {
	c := nuclCode[b]
	return c, c != noCode
}

// PackBitKmer packs kmer into a code, first base in the most significant
// nibble. Ambiguity codes and gaps are representable; any other byte, an
// empty kmer or one longer than MaxBitKmerSize is rejected.
func PackBitKmer(kmer []byte) (uint64, bool) {
	if len(kmer) == 0 || len(kmer) > MaxBitKmerSize {
		return 0, false
	}
	var code uint64
	for _, b := range kmer {
		c := nuclCode[b]
		if c == noCode {
			return 0, false
		}
		code = code<<4 | uint64(c)
	}
	return code, true
}

// DecodeBitKmer expands a k-base code back into letters.
func DecodeBitKmer(code uint64, k int) []byte {
	runtimex.Assert(k >= 1 && k <= MaxBitKmerSize)
	out := make([]byte, k)
	for i := k - 1; i >= 0; i-- {
		out[i] = nuclLetters[code&0xf]
		code >>= 4
	}
	return out
}

// ReverseComplementBitKmer returns the code of the reverse complement of a
// k-base code.
func ReverseComplementBitKmer(code uint64, k int) uint64 {
	runtimex.Assert(k >= 1 && k <= MaxBitKmerSize)
	var rc uint64
	for i := 0; i < k; i++ {
		rc = rc<<4 | uint64(complementCode[code&0xf])
		code >>= 4
	}
	return rc
}

/* ---------------------------- BitKmers ---------------------------------- */

// BitKmer is one packed k-mer.
type BitKmer struct {
	// Pos is the offset of the window in the sequence.
	Pos int

	// Code holds k 4-bit nucleotide codes, first base most significant.
	Code uint64

	// Reverse is set when Code is the reverse complement of the window.
	Reverse bool
}

// BitKmers packs every window made only of A, C, G and T into a BitKmer.
// Windows with any other byte are skipped, exactly as CanonicalKmers does.
type BitKmers struct {
	seq       []byte
	k         int
	canonical bool

	next  int // next byte to fold in
	run   int // valid bases ending at next-1
	fwd   uint64
	rev   uint64
	mask  uint64
	shift uint
}

// NewBitKmers returns an iterator over the packed k-mers of s. With canonical
// set each window yields the numerically smaller of its forward and
// reverse-complement codes, preferring the forward one on a tie.
// k must be between 1 and MaxBitKmerSize.
func NewBitKmers(s Sequence, k int, canonical bool) *BitKmers {
	runtimex.Assert(k >= 1 && k <= MaxBitKmerSize)
	return &BitKmers{
		seq:       s.Sequence(),
		k:         k,
		canonical: canonical,
		mask:      ^uint64(0) >> (64 - 4*uint(k)),
		shift:     4 * uint(k-1),
	}
}

// Next returns the next packed k-mer.
func (it *BitKmers) Next() (BitKmer, bool) {
	for it.next < len(it.seq) {
		b := it.seq[it.next]
		it.next++
		if !acgt[b] {
			it.run, it.fwd, it.rev = 0, 0, 0
			continue
		}
		c := nuclCode[b]
		it.fwd = (it.fwd<<4 | uint64(c)) & it.mask
		it.rev = it.rev>>4 | uint64(complementCode[c])<<it.shift
		if it.run++; it.run < it.k {
			continue
		}
		pos := it.next - it.k
		if it.canonical && it.rev < it.fwd {
			return BitKmer{Pos: pos, Code: it.rev, Reverse: true}, true
		}
		return BitKmer{Pos: pos, Code: it.fwd}, true
	}
	return BitKmer{}, false
}

// All drains the iterator.
func (it *BitKmers) All() iter.Seq[BitKmer] {
	return func(yield func(BitKmer) bool) {
		for km, ok := it.Next(); ok; km, ok = it.Next() {
			if !yield(km) {
				return
			}
		}
	}
}
