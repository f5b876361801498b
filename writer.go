package lzw

import (
	"bytes"
	"io"

	"github.com/joshvarga/lzw/internal/codeclog"
)

// Writer takes data written to it and writes the compressed form of
// that data to an underlying writer (see NewWriter). Writes are
// buffered and not compressed until Close, mirroring the teacher
// package's own Writer.
type Writer struct {
	w    io.Writer
	data []byte
}

// NewWriter creates a new Writer. Writes to the returned Writer are
// compressed and written to w. It is the caller's responsibility to
// call Close on the Writer when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write buffers p for compression on Close. It never fails on its
// own; any I/O error surfaces from Close.
func (w *Writer) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

// Close compresses everything buffered so far and flushes it to the
// underlying writer.
func (w *Writer) Close() error {
	in := len(w.data)
	var out bytes.Buffer
	if err := Compress(bytes.NewReader(w.data), &out); err != nil {
		return err
	}
	codeclog.Stats.Printf("lzw: compressed %d bytes to %d bytes", in, out.Len())
	_, err := w.w.Write(out.Bytes())
	return err
}
