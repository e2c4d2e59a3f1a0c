package charscan

// Int64 reads a decimal integer from text, best-effort: leading whitespace
// is skipped, a single leading '-' negates (a '+' is not accepted), and
// scanning stops at the first non-digit without consuming it. No overflow
// guard is applied — out-of-range digit runs wrap, as with C's atoi. Empty
// or non-numeric input yields 0.
func Int64(text Stream) int64 {
	var v int64
	text.SkipWhitespace()

	isNeg := text.Peek() == '-'
	if isNeg {
		text.Next()
	}

	for text.IsDigit() {
		v = v*10 + int64(text.Next()-'0')
	}

	if isNeg {
		return -v
	}
	return v
}

// Int is Int64 narrowed to int. Same scanning and overflow policy.
func Int(text Stream) int {
	return int(Int64(text))
}
