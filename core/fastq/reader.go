// Package fastq reads FASTQ records into values that carry both their bases
// and their per-base qualities.
package fastq

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"kmerseq-core/fasta"
	"kmerseq-core/sequence"
)

var (
	ErrMissingHeader    = errors.New("fastq: record does not start with '@'")
	ErrMissingSeparator = errors.New("fastq: missing '+' separator line")
	ErrIDMismatch       = errors.New("fastq: '+' line ID does not match header")
	ErrLengthMismatch   = errors.New("fastq: quality length does not match sequence length")
	ErrTruncated        = errors.New("fastq: truncated record")
)

// Record is one FASTQ entry. Line endings are removed from both Seq and
// Qual, which always have the same length.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
	Qual []byte
}

// Name returns the record identifier.
func (r Record) Name() string { return r.ID }

// Sequence implements sequence.Sequence.
func (r Record) Sequence() []byte { return r.Seq }

// Quality implements sequence.QualitySequence.
func (r Record) Quality() []byte { return r.Qual }

var _ sequence.QualitySequence = Record{}

// StreamPathCtx opens path (plain, gzip or "-" for stdin) and streams its
// records to emit.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := fasta.OpenReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamCtx(ctx, rc, emit)
}

// StreamCtx parses FASTQ from r and calls emit once per record. Sequence and
// quality may be wrapped over several lines. Malformed records stop the scan
// with an error wrapping one of the package sentinels and the 1-based record
// number.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	br := bufio.NewReaderSize(r, 64*1024)
	for n := 1; ; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, err := readRecord(br)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("fastq record %d: %w", n, err)
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
}

// readLine returns the next line without its line ending. io.EOF is only
// returned once no bytes are left.
func readLine(br *bufio.Reader) ([]byte, error) {
	line, err := br.ReadBytes('\n')
	line = bytes.TrimRight(line, "\r\n")
	if err == io.EOF && len(line) > 0 {
		return line, nil
	}
	return line, err
}

func readRecord(br *bufio.Reader) (Record, error) {
	var (
		line []byte
		err  error
	)
	for len(line) == 0 {
		if line, err = readLine(br); err != nil {
			return Record{}, err
		}
	}
	if line[0] != '@' {
		return Record{}, ErrMissingHeader
	}
	var rec Record
	rec.ID, rec.Desc = fasta.ParseHeader(line[1:])

	for {
		if line, err = readLine(br); err == io.EOF {
			return Record{}, ErrMissingSeparator
		} else if err != nil {
			return Record{}, err
		}
		if len(line) > 0 && line[0] == '+' {
			break
		}
		rec.Seq = append(rec.Seq, line...)
	}
	if id, _ := fasta.ParseHeader(line[1:]); id != "" && id != rec.ID {
		return Record{}, ErrIDMismatch
	}

	rec.Qual = make([]byte, 0, len(rec.Seq))
	for len(rec.Qual) < len(rec.Seq) {
		if line, err = readLine(br); err == io.EOF {
			return Record{}, ErrTruncated
		} else if err != nil {
			return Record{}, err
		}
		rec.Qual = append(rec.Qual, line...)
	}
	if len(rec.Qual) != len(rec.Seq) {
		return Record{}, ErrLengthMismatch
	}
	if rec.Seq == nil {
		rec.Seq = []byte{}
	}
	return rec, nil
}
