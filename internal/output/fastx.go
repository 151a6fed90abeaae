// internal/output/fastx.go
package output

import (
	"fmt"
	"io"
)

// FASTALineWidth is the sequence line width used by WriteFASTA.
const FASTALineWidth = 60

func header(w io.Writer, marker byte, id, desc string) error {
	var err error
	if desc == "" {
		_, err = fmt.Fprintf(w, "%c%s\n", marker, id)
	} else {
		_, err = fmt.Fprintf(w, "%c%s %s\n", marker, id, desc)
	}
	return err
}

// WriteFASTA writes one record with the sequence wrapped at FASTALineWidth.
func WriteFASTA(w io.Writer, id, desc string, seq []byte) error {
	if err := header(w, '>', id, desc); err != nil {
		return err
	}
	for len(seq) > 0 {
		n := min(len(seq), FASTALineWidth)
		if _, err := w.Write(seq[:n]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		seq = seq[n:]
	}
	return nil
}

// WriteFASTQ writes one four-line record. seq and qual must have equal length.
func WriteFASTQ(w io.Writer, id, desc string, seq, qual []byte) error {
	if len(seq) != len(qual) {
		return fmt.Errorf("fastq record %s: %d bases but %d quality scores", id, len(seq), len(qual))
	}
	if err := header(w, '@', id, desc); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n+\n%s\n", seq, qual)
	return err
}
