package lzw

// encoderDictionary maps multi-byte phrases to their assigned codes.
// Single-byte phrases are never stored explicitly: code_of([b]) == b
// for any b in 0..255, per the reserved-code layout in §3 of the
// spec this package implements. codes is the idiomatic-Go trie the
// design notes recommend in place of a hash map over variable-length
// byte strings, keyed by (parentCode, nextByte); it is asymptotically
// the same as a map[string]int but avoids hashing the full phrase on
// every lookup, since lookups walk one byte at a time alongside the
// input.
type encoderDictionary struct {
	// children[parentCode] maps the next input byte to the code of
	// the phrase formed by appending it to parentCode's phrase.
	// Single-byte phrases (parentCode in 0..255, i.e. the phrase
	// itself) are the trie's roots and are never stored in children;
	// contains/codeOf only answer for multi-byte phrases, and the
	// compress loop uses a byte's own value as its singleton code.
	children []map[byte]int
	lastCode int
}

func newEncoderDictionary() *encoderDictionary {
	d := &encoderDictionary{lastCode: eofCode}
	d.clear()
	return d
}

// contains reports whether parentCode ++ [b] has an assigned code.
func (d *encoderDictionary) contains(parentCode int, b byte) bool {
	if parentCode < 0 || parentCode >= len(d.children) {
		return false
	}
	_, ok := d.children[parentCode][b]
	return ok
}

// codeOf returns the code for parentCode ++ [b]; it panics if the
// phrase has not been added, which would be a bug in the caller (the
// compress loop only calls codeOf after contains confirmed the
// phrase).
func (d *encoderDictionary) codeOf(parentCode int, b byte) int {
	code, ok := d.children[parentCode][b]
	if !ok {
		panic("lzw: codeOf: phrase not in dictionary")
	}
	return code
}

// add assigns lastCode+1 to parentCode ++ [b] and returns it.
func (d *encoderDictionary) add(parentCode int, b byte) int {
	if d.lastCode >= maxCode {
		panic(ErrOverflow)
	}
	d.lastCode++
	for len(d.children) <= parentCode {
		d.children = append(d.children, nil)
	}
	if d.children[parentCode] == nil {
		d.children[parentCode] = make(map[byte]int)
	}
	d.children[parentCode][b] = d.lastCode
	return d.lastCode
}

// nextCodeWidth returns the bit-width needed to represent the code
// that would be assigned by the next add.
func (d *encoderDictionary) nextCodeWidth() uint {
	return widthFor(d.lastCode + 1)
}

// willOverflow reports whether the next add would exceed maxCode.
func (d *encoderDictionary) willOverflow() bool {
	return d.lastCode >= maxCode
}

// clear drops all dynamic entries and resets lastCode to eofCode, the
// same state newEncoderDictionary starts from.
func (d *encoderDictionary) clear() {
	d.children = make([]map[byte]int, 256)
	d.lastCode = eofCode
}

// decoderDictionary is the mirror-image table indexed by code: 0..255
// are the implicit singleton phrases, 258..lastCode are the
// dynamically learned ones. Phrases are stored as owned byte slices
// (design notes §9, option (b)) rather than (parentCode, suffixByte)
// pairs plus recursive materialization, trading a little more memory
// for phrases that are ready to write out without reconstruction.
type decoderDictionary struct {
	phrases  [][]byte // index 258..lastCode holds the learned phrase
	lastCode int
}

func newDecoderDictionary() *decoderDictionary {
	d := &decoderDictionary{}
	d.clear()
	return d
}

// lookup returns the phrase for code. It is only valid to call this
// when contains(code) is true.
func (d *decoderDictionary) lookup(code int) []byte {
	if code < 256 {
		return []byte{byte(code)}
	}
	return d.phrases[code-firstFreeCode]
}

// contains reports whether code names a phrase already in the table.
func (d *decoderDictionary) contains(code int) bool {
	if code < 0 {
		return false
	}
	if code < 256 {
		return true
	}
	if code == clearCode || code == eofCode {
		return false
	}
	return code <= d.lastCode
}

// add assigns lastCode+1 = phrase and returns the new code.
func (d *decoderDictionary) add(phrase []byte) int {
	d.lastCode++
	d.phrases = append(d.phrases, phrase)
	return d.lastCode
}

// willBumpWidthAfterNextAdd reports whether the code that the next add
// will assign needs one more bit than lastCode currently does, i.e.
// lastCode's bits are all ones.
func (d *decoderDictionary) willBumpWidthAfterNextAdd() bool {
	return d.lastCode&(d.lastCode+1) == 0
}

// clear drops all dynamic entries and resets lastCode to eofCode.
func (d *decoderDictionary) clear() {
	d.phrases = d.phrases[:0]
	d.lastCode = eofCode
}
