package charscan

// String-level case helpers. Only ASCII letters change case; everything
// else, multi-byte runes included, passes through byte-identically.

// AppendLower appends s to dst with ASCII uppercase letters lowercased.
func AppendLower(dst []byte, s string) []byte {
	i := 0
	textLen := len(s)

	for i < textLen {
		c := s[i]

		// Fast ASCII path - most common case
		if c < 0x80 {
			if c >= 'A' && c <= 'Z' {
				c += 'a' - 'A'
			}
			dst = append(dst, c)
			i++
		} else {
			// Multi-byte runes never fold; copy the sequence through
			r, size := decodeRune(unsafeStringToBytes(s[i:]))
			dst = appendRune(dst, r)
			i += size
		}
	}

	return dst
}

// AppendUpper appends s to dst with ASCII lowercase letters uppercased.
func AppendUpper(dst []byte, s string) []byte {
	i := 0
	textLen := len(s)

	for i < textLen {
		c := s[i]

		if c < 0x80 {
			if c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
			dst = append(dst, c)
			i++
		} else {
			r, size := decodeRune(unsafeStringToBytes(s[i:]))
			dst = appendRune(dst, r)
			i += size
		}
	}

	return dst
}

// LowerString returns s with ASCII uppercase letters lowercased.
func LowerString(s string) string {
	return unsafeBytesToString(AppendLower(make([]byte, 0, len(s)), s))
}

// UpperString returns s with ASCII lowercase letters uppercased.
func UpperString(s string) string {
	return unsafeBytesToString(AppendUpper(make([]byte, 0, len(s)), s))
}

// EqualFold reports whether a and b are equal ignoring ASCII case.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		// Folding never changes a character's byte length, so differing
		// lengths can never compare equal
		return false
	}

	// Identical bytes are the common case; word-wise check first
	if memEqual(unsafeStringToBytes(a), unsafeStringToBytes(b), len(a)) {
		return true
	}

	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
