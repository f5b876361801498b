package lzw

import "github.com/pkg/errors"

const (
	// codeWidthMin is the width in bits of the first emitted code.
	codeWidthMin = 9
	// codeWidthMax is the ceiling on code width; the dictionary can hold
	// at most 1<<codeWidthMax entries before a CLEAR is forced.
	codeWidthMax = 12

	// clearCode resets the dictionary and the code width back to
	// codeWidthMin.
	clearCode = 256
	// eofCode terminates the stream.
	eofCode = 257

	// firstFreeCode is the first code available for dynamically
	// allocated multi-byte phrases.
	firstFreeCode = 258

	// maxCode is the highest code a 12-bit stream can carry.
	maxCode = 1<<codeWidthMax - 1
)

var (
	// ErrMalformedInput is returned when decompressing a stream that is
	// truncated, carries a code the dictionary cannot yet explain, or
	// never reaches eofCode.
	ErrMalformedInput = errors.New("lzw: malformed input")

	// ErrOverflow indicates the encoder dictionary was asked to grow
	// past its capacity without an intervening CLEAR. The compress
	// loop guards against this; seeing it means the CLEAR policy in
	// Compress has a bug.
	ErrOverflow = errors.New("lzw: dictionary overflow")
)

// widthFor returns the number of bits needed to represent code as an
// unsigned integer, i.e. ceil(log2(code+1)), with the convention that
// 0 needs one bit.
func widthFor(code int) uint {
	width := uint(1)
	for code >= (1 << width) {
		width++
	}
	return width
}
