package charscan

// Locale-independent ASCII character classification. Characters outside the
// ASCII range are never whitespace, digits or letters, and case-convert to
// themselves.

// Pre-computed lookup table for whitespace - faster than switch/if chains
var whitespaceLUT = [256]bool{
	' ': true, '\t': true, '\n': true, '\r': true,
	'\v': true, '\f': true,
}

// IsWhitespace reports whether r is an ASCII whitespace character.
func IsWhitespace(r rune) bool {
	return r >= 0 && r < 256 && whitespaceLUT[r]
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsLower reports whether r is an ASCII lowercase letter.
func IsLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// IsUpper reports whether r is an ASCII uppercase letter.
func IsUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// IsLetter reports whether r is an ASCII letter.
func IsLetter(r rune) bool {
	return IsLower(r) || IsUpper(r)
}

// IsLetterOrDigit reports whether r is an ASCII letter or decimal digit.
func IsLetterOrDigit(r rune) bool {
	return IsLetter(r) || IsDigit(r)
}

// ToLower converts an ASCII uppercase letter to lowercase; every other
// character is returned unchanged.
func ToLower(r rune) rune {
	if IsUpper(r) {
		return r + ('a' - 'A')
	}
	return r
}

// ToUpper converts an ASCII lowercase letter to uppercase; every other
// character is returned unchanged.
func ToUpper(r rune) rune {
	if IsLower(r) {
		return r - ('a' - 'A')
	}
	return r
}

// HexDigitValue returns 0 to 15 for '0'-'9', 'a'-'f' and 'A'-'F', or -1 for
// characters that aren't a legal hex digit.
func HexDigitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return -1
}
