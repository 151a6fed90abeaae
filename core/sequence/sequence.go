// core/sequence/sequence.go
package sequence

import "bytes"

// Sequence is anything that can hand out its nucleotide bytes.
type Sequence interface {
	Sequence() []byte
}

// QualitySequence is a Sequence that also carries one quality byte per base.
// Quality must return a slice as long as the one returned by Sequence.
type QualitySequence interface {
	Sequence
	Quality() []byte
}

// Bytes is a plain byte slice used as a Sequence.
type Bytes []byte

// Sequence implements [Sequence].
func (b Bytes) Sequence() []byte { return b }

// Pair couples a sequence with its per-base qualities.
type Pair struct {
	Seq  []byte
	Qual []byte
}

// Sequence implements [Sequence].
func (p Pair) Sequence() []byte { return p.Seq }

// Quality implements [QualitySequence].
func (p Pair) Quality() []byte { return p.Qual }

var (
	_ Sequence        = Bytes(nil)
	_ Sequence        = View{}
	_ QualitySequence = Pair{}
)

// StripReturns removes every CR and LF byte, which covers \n, \r\n and
// newlines in the middle of multi-line records. Without any line ending the
// input is borrowed as is; otherwise the runs between line endings are copied
// into a new buffer.
func StripReturns(s Sequence) View {
	seq := s.Sequence()
	nl := indexFrom(seq, 0, '\n')
	cr := indexFrom(seq, 0, '\r')
	if nl < 0 && cr < 0 {
		return Borrowed(seq)
	}

	// nl and cr only move forward, so each byte is scanned at most once
	// per search.
	buf := make([]byte, 0, len(seq)-1)
	i := 0
	for nl >= 0 || cr >= 0 {
		j := nl
		if j < 0 || (cr >= 0 && cr < j) {
			j = cr
		}
		buf = append(buf, seq[i:j]...)
		i = j + 1
		if nl == j {
			nl = indexFrom(seq, i, '\n')
		}
		if cr == j {
			cr = indexFrom(seq, i, '\r')
		}
	}
	buf = append(buf, seq[i:]...)
	return Owned(buf)
}

// indexFrom returns the index of the first c in b at or after from, or -1.
func indexFrom(b []byte, from int, c byte) int {
	k := bytes.IndexByte(b[from:], c)
	if k < 0 {
		return -1
	}
	return from + k
}

// ReverseComplement returns the sequence of the opposite strand: the input
// read backwards with every base replaced by its [Complement]. It always
// allocates a new buffer of the same length.
func ReverseComplement(s Sequence) []byte {
	seq := s.Sequence()
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return out
}

// NormalizeSequence applies [Normalize] to the bytes of s, borrowing them
// when they are already normalized.
func NormalizeSequence(s Sequence, allowIUPAC bool) View {
	seq := s.Sequence()
	if out, changed := Normalize(seq, allowIUPAC); changed {
		return Owned(out)
	}
	return Borrowed(seq)
}
