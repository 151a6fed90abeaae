package kmers

import (
	"errors"
	"fmt"

	"kmerseq-core/sequence"
)

// Options controls per-record extraction.
type Options struct {
	K           int
	Mode        Mode
	Canonical   bool // bit mode only: yield the smaller of forward and reverse codes
	IUPAC       bool // keep ambiguity codes when normalizing
	Normalize   bool
	MaskQuality byte // 0 disables masking
}

// Validate reports option combinations the iterators would reject.
func (o Options) Validate() error {
	if o.K < 1 {
		return fmt.Errorf("k must be >= 1 (got %d)", o.K)
	}
	switch o.Mode {
	case ModeRaw, ModeCanonical:
	case ModeBit:
		if o.K > sequence.MaxBitKmerSize {
			return fmt.Errorf("k must be <= %d in bit mode (got %d)", sequence.MaxBitKmerSize, o.K)
		}
	default:
		return errors.New("invalid mode " + o.Mode.String())
	}
	return nil
}

// Input is a named record. Records that also implement
// sequence.QualitySequence can be quality masked.
type Input interface {
	sequence.Sequence
	Name() string
}

// Kmer is one extracted window.
type Kmer struct {
	Pos     int    // offset into the cleaned forward sequence
	Seq     string // window bytes, decoded from Code in bit mode
	Code    uint64 // packed code, set only for packed batches
	Reverse bool   // reverse-complement form was chosen
}

// Batch holds every k-mer of one record.
type Batch struct {
	Index    int // record ordinal across all inputs, assigned by the pipeline
	RecordID string
	Length   int // cleaned sequence length
	Packed   bool
	Kmers    []Kmer
}

// Extract cleans rec and runs the iterator selected by opt.
// opt must have passed Validate.
func Extract(rec Input, opt Options) Batch {
	var seq sequence.Sequence = rec
	if q, ok := rec.(sequence.QualitySequence); ok && opt.MaskQuality > 0 {
		seq = sequence.Bytes(sequence.QualityMask(q, opt.MaskQuality))
	}
	seq = sequence.StripReturns(seq)
	if opt.Normalize {
		seq = sequence.NormalizeSequence(seq, opt.IUPAC)
	}

	n := len(seq.Sequence())
	b := Batch{RecordID: rec.Name(), Length: n, Packed: opt.Mode == ModeBit}
	if n >= opt.K {
		b.Kmers = make([]Kmer, 0, n-opt.K+1)
	}

	switch opt.Mode {
	case ModeRaw:
		for pos, w := range sequence.NewKmers(seq, opt.K).All() {
			b.Kmers = append(b.Kmers, Kmer{Pos: pos, Seq: string(w)})
		}
	case ModeCanonical:
		rc := sequence.ReverseComplement(seq)
		for km := range sequence.NewCanonicalKmers(seq, opt.K, rc).All() {
			b.Kmers = append(b.Kmers, Kmer{Pos: km.Pos, Seq: string(km.Kmer), Reverse: km.Reverse})
		}
	case ModeBit:
		for km := range sequence.NewBitKmers(seq, opt.K, opt.Canonical).All() {
			b.Kmers = append(b.Kmers, Kmer{
				Pos:     km.Pos,
				Seq:     string(sequence.DecodeBitKmer(km.Code, opt.K)),
				Code:    km.Code,
				Reverse: km.Reverse,
			})
		}
	}
	return b
}
