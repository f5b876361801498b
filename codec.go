package lzw

import (
	"io"

	"github.com/pkg/errors"

	"github.com/joshvarga/lzw/internal/codeclog"
)

// Compress reads bytes from r until exhausted and writes the
// compressed bit stream to w. An empty r produces an empty w: no
// codes, no padding (§6.3).
func Compress(r io.Reader, w io.Writer) error {
	br := newByteReader(r)
	first, ok, err := br.readByte()
	if err != nil {
		return err
	}
	if !ok {
		return nil // empty input, empty output
	}

	bw := newBitWriter(w)
	dict := newEncoderDictionary()
	width := uint(codeWidthMin)

	// wordCode is the trie node for the currently unemitted phrase:
	// its dictionary code if it has one assigned, or its byte value
	// if it is still a singleton.
	wordCode := int(first)

	for {
		b, ok, err := br.readByte()
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		if dict.contains(wordCode, b) {
			wordCode = dict.codeOf(wordCode, b)
			continue
		}

		if dict.willOverflow() {
			if err := bw.append(uint32(wordCode), width); err != nil {
				return err
			}
			clearWidth := width
			if widthFor(clearCode) > width {
				clearWidth++
			}
			if err := bw.append(clearCode, clearWidth); err != nil {
				return err
			}
			dict.clear()
			width = codeWidthMin
			codeclog.Debug.Printf("lzw: compress: dictionary full, emitted CLEAR")
		} else {
			if err := bw.append(uint32(wordCode), width); err != nil {
				return err
			}
			newCode := dict.add(wordCode, b)
			if widthFor(newCode) > width {
				width++
				codeclog.Debug.Printf("lzw: compress: code width bumped to %d", width)
			}
		}

		wordCode = int(b)
	}

	if err := bw.append(uint32(wordCode), width); err != nil {
		return err
	}
	// The decoder adds an entry for the code just written and widens
	// its read width before it reads eofCode, so eofCode goes out at
	// that widened width.
	if widthFor(dict.lastCode+1) > width && width < codeWidthMax {
		width++
	}
	if err := bw.append(eofCode, width); err != nil {
		return err
	}
	return bw.flush()
}

// Decompress reads the compressed bit stream from r until eofCode and
// writes the reconstructed bytes to w.
func Decompress(r io.Reader, w io.Writer) error {
	peeked, empty, err := peekEmpty(r)
	if err != nil {
		return err
	}
	if empty {
		return nil
	}

	br := newBitReader(peeked)
	dict := newDecoderDictionary()
	width := uint(codeWidthMin)

	code, err := br.next(width)
	if err != nil {
		return err
	}
	if code >= 256 {
		return errors.Wrapf(ErrMalformedInput, "bootstrap code %d is not a singleton byte", code)
	}
	prev := dict.lookup(int(code))

	for {
		c, err := br.next(width)
		if err != nil {
			return err
		}
		code := int(c)

		if code == eofCode {
			_, err := w.Write(prev)
			return err
		}

		if _, err := w.Write(prev); err != nil {
			return err
		}

		if code == clearCode {
			dict.clear()
			width = codeWidthMin
			codeclog.Debug.Printf("lzw: decompress: CLEAR received")
			c, err := br.next(width)
			if err != nil {
				return err
			}
			if int(c) >= 256 {
				return errors.Wrapf(ErrMalformedInput, "post-CLEAR code %d is not a singleton byte", c)
			}
			prev = dict.lookup(int(c))
			continue
		}

		var cur []byte
		if dict.contains(code) {
			cur = dict.lookup(code)
			learned := make([]byte, len(prev)+1)
			copy(learned, prev)
			learned[len(prev)] = cur[0]
			dict.add(learned)
		} else if code == dict.lastCode+1 {
			learned := make([]byte, len(prev)+1)
			copy(learned, prev)
			learned[len(prev)] = prev[0]
			dict.add(learned)
			cur = learned
		} else {
			return errors.Wrapf(ErrMalformedInput, "code %d exceeds last_code+1 (%d)", code, dict.lastCode)
		}

		if dict.willBumpWidthAfterNextAdd() {
			if width < codeWidthMax {
				width++
				codeclog.Debug.Printf("lzw: decompress: code width bumped to %d", width)
			}
		}
		prev = cur
	}
}
