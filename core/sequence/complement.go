// core/sequence/complement.go
package sequence

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = 'N'
	}
	for _, p := range []string{"AT", "CG", "RY", "KM", "BV", "DH", "SS", "WW", "NN"} {
		a, b := p[0], p[1]
		complement[a], complement[b] = b, a
		complement[a|0x20], complement[b|0x20] = b|0x20, a|0x20
	}
	complement['-'] = '-'
}

// Complement returns the pairing base of b. Ambiguity codes map to the code
// of the complementary set (R<->Y, K<->M, B<->V, D<->H, S and W to
// themselves), lowercase letters stay lowercase, the gap maps to itself and
// anything unrecognized becomes N.
func Complement(b byte) byte {
	return complement[b]
}
