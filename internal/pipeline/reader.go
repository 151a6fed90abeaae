package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"kmerseq-core/fasta"
	"kmerseq-core/fastq"

	"kmerseq/internal/kmers"
)

// ErrUnknownFormat is returned for inputs that are neither FASTA nor FASTQ.
var ErrUnknownFormat = errors.New("unrecognized sequence format")

// ReadRecords opens path ("-" is stdin, gzip is transparent) and emits every
// record. The format is taken from the first non-blank byte: '>' for FASTA,
// '@' for FASTQ. An empty input emits nothing.
func ReadRecords(ctx context.Context, path string, emit func(kmers.Input) error) error {
	rc, err := fasta.OpenReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	br := bufio.NewReaderSize(rc, 64<<10)
	c, err := firstByte(br)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	switch c {
	case '>':
		err = fasta.StreamCtx(ctx, br, func(r fasta.Record) error { return emit(r) })
	case '@':
		err = fastq.StreamCtx(ctx, br, func(r fastq.Record) error { return emit(r) })
	default:
		return fmt.Errorf("%s: %w (starts with %q)", path, ErrUnknownFormat, c)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", path, err)
	}
	return err
}

// firstByte skips leading whitespace and leaves the first other byte unread.
func firstByte(br *bufio.Reader) (byte, error) {
	for {
		c, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return c, br.UnreadByte()
	}
}
