package charscan

import "sync"

// Scratch buffers for materializing needles, pooled so repeated searches
// don't reallocate
var needlePool = sync.Pool{
	New: func() interface{} {
		buf := make([]rune, 0, 64)
		return &buf
	},
}

// IndexOf returns the character index of the first occurrence of needle in
// haystack, or -1 if it never occurs. An empty needle matches at index 0.
// The needle stream is fully drained; the haystack is left positioned at
// the start of the match (or fully consumed when there is no match).
func IndexOf(haystack, needle Stream) int {
	bufp := needlePool.Get().(*[]rune)
	defer func() {
		*bufp = (*bufp)[:0]
		needlePool.Put(bufp)
	}()

	buf := *bufp
	for !needle.Empty() {
		buf = append(buf, needle.Next())
	}
	*bufp = buf

	index := 0
	for {
		if matchesAt(haystack, buf) {
			return index
		}
		if haystack.Next() == 0 {
			return -1
		}
		index++
	}
}

// matchesAt reports whether the next len(runes) characters of s equal runes,
// using lookahead only - nothing is consumed.
func matchesAt(s Stream, runes []rune) bool {
	for i, r := range runes {
		if s.PeekAt(i) != r {
			return false
		}
	}
	return true
}

// IndexOfRune returns the character index of the first occurrence of r in
// text, or -1 if it never occurs. The stream is consumed up to and including
// the match (or entirely when there is no match).
func IndexOfRune(text Stream, r rune) int {
	i := 0

	for !text.Empty() {
		if text.Next() == r {
			return i
		}
		i++
	}

	return -1
}

// IndexOfRuneFold is IndexOfRune ignoring ASCII case.
func IndexOfRuneFold(text Stream, r rune) int {
	r = ToLower(r)
	i := 0

	for !text.Empty() {
		if ToLower(text.Next()) == r {
			return i
		}
		i++
	}

	return -1
}
