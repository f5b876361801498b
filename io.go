package lzw

import (
	"bufio"
	"io"
)

// byteReader adapts an io.Reader to the one-byte-at-a-time interface
// Compress's main loop wants, using a fixed-size buffer rather than
// the byte-at-a-time, manually indexed buffer original_source/lzw.py
// builds by hand (ReaderBuffer.next_bytes).
type byteReader struct {
	r *bufio.Reader
}

func newByteReader(r io.Reader) *byteReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, flushBufSize)
	}
	return &byteReader{r: br}
}

// readByte returns the next byte, or ok == false at a clean end of
// input. Any other error is returned as-is.
func (b *byteReader) readByte() (byte, bool, error) {
	c, err := b.r.ReadByte()
	if err == io.EOF {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return c, true, nil
}

// peekEmpty reports whether r has any bytes at all, without losing
// them: it returns a *bufio.Reader that still has everything r had,
// so the caller can hand it straight to newBitReader.
func peekEmpty(r io.Reader) (io.Reader, bool, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, flushBufSize)
	}
	if _, err := br.Peek(1); err != nil {
		if err == io.EOF {
			return br, true, nil
		}
		return br, false, err
	}
	return br, false, nil
}
