// core/fasta/stream.go
package fasta

import (
	"bytes"
	"context"
	"fmt"
	"io"
)

// StreamCtx parses FASTA from r and calls emit once per record. A non-nil
// error from emit stops the scan and is returned as is.
//
// It is cancelable: ctx is checked between lines, so a canceled scan returns
// ctx.Err() promptly, even mid-record.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	br := newPeekReader(r)

	var (
		rec  Record
		have bool
		seq  = make([]byte, 0, 1<<16)
	)

	flush := func() error {
		if !have {
			return nil
		}
		rec.Seq = append([]byte(nil), bytes.TrimRight(seq, "\r\n")...)
		seq = seq[:0]
		return emit(rec)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			switch {
			case line[0] == '>':
				if ferr := flush(); ferr != nil {
					return ferr
				}
				rec = Record{}
				rec.ID, rec.Desc = ParseHeader(line[1:])
				have = true
			case !have:
				if len(bytes.TrimSpace(line)) > 0 {
					return ErrMissingHeader
				}
			default:
				seq = append(seq, line...)
			}
		}
		if err == io.EOF {
			return flush()
		}
		if err != nil {
			return fmt.Errorf("fasta scan: %w", err)
		}
	}
}

// StreamFromReader is StreamCtx with a background context.
func StreamFromReader(r io.Reader, emit func(Record) error) error {
	return StreamCtx(context.Background(), r, emit)
}
