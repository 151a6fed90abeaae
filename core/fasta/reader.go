// core/fasta/reader.go
package fasta

import (
	"bytes"
	"context"
	"errors"

	"kmerseq-core/sequence"
)

// ErrMissingHeader is returned when sequence data precedes the first '>' line.
var ErrMissingHeader = errors.New("fasta: sequence data before first header")

// Record is one FASTA entry.
type Record struct {
	ID   string
	Desc string

	// Seq holds the sequence lines exactly as read, line endings between
	// lines included. Run sequence.StripReturns before iterating k-mers.
	Seq []byte
}

// Name returns the record identifier.
func (r Record) Name() string { return r.ID }

// Sequence implements sequence.Sequence.
func (r Record) Sequence() []byte { return r.Seq }

var _ sequence.Sequence = Record{}

// StreamPathCtx opens path (see OpenReader) and streams its records to emit.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := OpenReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamCtx(ctx, rc, emit)
}

// ParseHeader splits a header line (without its '>' or '@') into ID and
// description at the first space or tab.
func ParseHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}
