// core/sequence/quality.go
package sequence

import "github.com/bassosimone/runtimex"

// QualityMask returns a copy of the sequence of s where every base whose
// quality byte is strictly below threshold is replaced by N.
//
// The quality slice must be exactly as long as the sequence.
func QualityMask(s QualitySequence, threshold byte) []byte {
	seq, qual := s.Sequence(), s.Quality()
	runtimex.Assert(len(qual) == len(seq))

	out := make([]byte, len(seq))
	for i, q := range qual {
		if q < threshold {
			out[i] = 'N'
		} else {
			out[i] = seq[i]
		}
	}
	return out
}
