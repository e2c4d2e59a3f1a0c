package charscan

// Fast rune encoding for common Unicode cases
func encodeRune(buf []byte, r rune) int {
	if r < 0x80 {
		buf[0] = byte(r)
		return 1
	}

	if r < 0x800 {
		buf[0] = byte(0xC0 | r>>6)
		buf[1] = byte(0x80 | r&0x3F)
		return 2
	}

	if r < 0x10000 {
		buf[0] = byte(0xE0 | r>>12)
		buf[1] = byte(0x80 | (r>>6)&0x3F)
		buf[2] = byte(0x80 | r&0x3F)
		return 3
	}

	buf[0] = byte(0xF0 | r>>18)
	buf[1] = byte(0x80 | (r>>12)&0x3F)
	buf[2] = byte(0x80 | (r>>6)&0x3F)
	buf[3] = byte(0x80 | r&0x3F)
	return 4
}

// appendRune appends the UTF-8 encoding of r to dst.
func appendRune(dst []byte, r rune) []byte {
	if r < 0x80 {
		return append(dst, byte(r)) // Single-byte fast path
	}
	var buf [4]byte
	return append(dst, buf[:encodeRune(buf[:], r)]...)
}

// runeLen returns the number of bytes encodeRune would write for r.
func runeLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	}
	return 4
}

// Fast rune decoding for common Unicode cases
func decodeRune(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	}

	b0 := b[0]
	if b0 < 0x80 {
		return rune(b0), 1
	}

	if len(b) < 2 {
		return 0xFFFD, 1 // Invalid
	}

	if b0 < 0xE0 { // 2-byte sequence
		return rune(b0&0x1F)<<6 | rune(b[1]&0x3F), 2
	}

	if len(b) < 3 {
		return 0xFFFD, 1
	}

	if b0 < 0xF0 { // 3-byte sequence
		return rune(b0&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F), 3
	}

	if len(b) < 4 {
		return 0xFFFD, 1
	}

	// 4-byte sequence
	return rune(b0&0x07)<<18 | rune(b[1]&0x3F)<<12 | rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F), 4
}
