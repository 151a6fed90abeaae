// core/fasta/open.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// OpenReader opens path for reading, "-" meaning stdin. Gzip input is
// detected by its magic number (1F 8B) or a .gz suffix and decompressed
// transparently. The FASTQ reader shares it.
func OpenReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return openStdin()
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// stdin cannot seek, so the magic number is peeked through a buffer.
func openStdin() (io.ReadCloser, error) {
	br := newPeekReader(os.Stdin)
	sig, _ := br.Peek(2)
	if len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return gr, nil
	}
	return io.NopCloser(br), nil
}

func newPeekReader(r io.Reader) *bufio.Reader { return bufio.NewReaderSize(r, 64*1024) }
