package charscan

// Stream transcoding: drain a Stream into a UTF-8 byte buffer. These are the
// bridge between RuneStream (or any future encoding) and byte-oriented
// consumers.

// AppendStream appends the remaining characters of src to dst as UTF-8,
// draining src.
func AppendStream(dst []byte, src Stream) []byte {
	for !src.Empty() {
		dst = appendRune(dst, src.Next())
	}
	return dst
}

// AppendStreamN appends at most maxChars characters of src to dst as UTF-8.
// src is left positioned after the last character taken.
func AppendStreamN(dst []byte, src Stream, maxChars int) []byte {
	for maxChars--; maxChars >= 0; maxChars-- {
		if src.Empty() {
			break
		}
		dst = appendRune(dst, src.Next())
	}
	return dst
}

// AppendStreamMaxBytes appends characters of src to dst as UTF-8 while their
// encodings fit within maxBytes. It stops before the first character that
// would overrun the budget, leaving it unconsumed in src, and returns the
// grown buffer and the number of bytes appended.
func AppendStreamMaxBytes(dst []byte, src Stream, maxBytes int) ([]byte, int) {
	numBytesDone := 0

	for !src.Empty() {
		bytesNeeded := runeLen(src.Peek())
		if bytesNeeded > maxBytes {
			break
		}

		maxBytes -= bytesNeeded
		numBytesDone += bytesNeeded
		dst = appendRune(dst, src.Next())
	}

	return dst, numBytesDone
}
