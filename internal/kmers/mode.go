package kmers

import (
	"fmt"
	"strings"
)

// Mode selects the k-mer iterator.
type Mode int

const (
	// ModeRaw yields every window, ambiguous bases included.
	ModeRaw Mode = iota
	// ModeCanonical yields the smaller of each ACGT window and its reverse complement.
	ModeCanonical
	// ModeBit yields 4-bit packed codes (k <= sequence.MaxBitKmerSize).
	ModeBit
)

var modeNames = [...]string{
	ModeRaw:       "raw",
	ModeCanonical: "canonical",
	ModeBit:       "bit",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode is case-insensitive.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q (want raw, canonical or bit)", s)
}
