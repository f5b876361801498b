/*
Package lzw implements reading and writing of Lempel-Ziv-Welch (LZW)
compressed data with variable-width codes (9 through 12 bits) and an
explicit in-band dictionary reset code.

The implementation provides functionality that compresses during
writing and decompresses during reading.

For example, to write compressed data to a buffer:

	w := lzw.NewWriter(&b)
	w.Write([]byte("AIAIAIAIAIAIA"))
	w.Close()

And to read it back:

	r, err := lzw.NewReader(&b)
	io.Copy(os.Stdout, r)
	r.Close()

This is not the GIF, TIFF, or Unix compress(1) variant of LZW: the
wire format defined here has no magic number, no length header, and
is not intended to interoperate with any of those.
*/
package lzw
