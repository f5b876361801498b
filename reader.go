package lzw

import (
	"bytes"
	"io"
)

// reader is an io.ReadCloser backed by fully-decompressed output,
// mirroring the teacher package's own NewReader: the whole input is
// run through the state machine once, up front, and Read just serves
// slices of the result. This keeps the decoder dictionary's lifetime
// scoped to a single call, matching §5's "no aliasing, no concurrent
// mutation" ownership rule, without needing a goroutine or a pipe.
type reader struct {
	data []byte
	pos  int
}

// NewReader creates a new ReadCloser. Reads from the returned
// ReadCloser read and decompress data from r. It is the caller's
// responsibility to call Close on the ReadCloser when done.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	var buf bytes.Buffer
	if err := Decompress(r, &buf); err != nil {
		return nil, err
	}
	return &reader{data: buf.Bytes()}, nil
}

func (r *reader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func (r *reader) Close() error {
	return nil
}
