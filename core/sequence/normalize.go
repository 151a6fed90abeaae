// core/sequence/normalize.go
package sequence

// dropByte marks input bytes that Normalize removes from its output.
const dropByte = 0

var (
	normDNA   [256]byte // ambiguity codes collapse to N
	normIUPAC [256]byte // ambiguity codes survive, uppercased
)

func init() {
	for i := range normDNA {
		normDNA[i] = 'N'
		normIUPAC[i] = 'N'
	}
	set := func(in string, out byte) {
		for i := 0; i < len(in); i++ {
			normDNA[in[i]] = out
			normIUPAC[in[i]] = out
		}
	}
	set("Aa", 'A')
	set("Cc", 'C')
	set("Gg", 'G')
	set("TtUu", 'T') // uridine is read as thymine
	set("-.~", '-')
	set(" \t\r\n", dropByte)

	for _, c := range []byte("BDHVRYSWKM") {
		normIUPAC[c] = c
		normIUPAC[c|0x20] = c
	}
}

// Normalize maps seq to the normalized nucleotide alphabet:
//   - A C G T N and - pass through, lowercase a c g t are uppercased
//   - t, u and U become T
//   - . and ~ become the gap -
//   - ambiguity codes B D H V R Y S W K M are kept (uppercased) when
//     allowIUPAC is set and become N otherwise
//   - spaces, tabs and line endings are removed
//   - any other byte becomes N
//
// When no byte had to change it returns (nil, false) and the caller keeps
// using seq. Otherwise it returns a new buffer and true.
func Normalize(seq []byte, allowIUPAC bool) ([]byte, bool) {
	table := &normDNA
	if allowIUPAC {
		table = &normIUPAC
	}

	// Nothing is allocated until the first byte that needs rewriting.
	i := 0
	for i < len(seq) && table[seq[i]] == seq[i] {
		i++
	}
	if i == len(seq) {
		return nil, false
	}

	buf := make([]byte, i, len(seq))
	copy(buf, seq[:i])
	for _, c := range seq[i:] {
		if n := table[c]; n != dropByte {
			buf = append(buf, n)
		}
	}
	return buf, true
}
