package charscan

// Stream comparison. All variants consume from both streams up to and
// including the first differing position (or end of the shorter stream),
// and return -1, 0 or 1. End of input compares as the character 0, so a
// stream that is a strict prefix of the other orders first.

// Compare compares two streams character by character.
func Compare(s1, s2 Stream) int {
	for {
		c1 := s1.Next()
		c2 := s2.Next()

		if c1 != c2 {
			if c1 < c2 {
				return -1
			}
			return 1
		}
		if c1 == 0 {
			return 0
		}
	}
}

// CompareN compares at most maxChars characters of two streams.
func CompareN(s1, s2 Stream, maxChars int) int {
	for maxChars--; maxChars >= 0; maxChars-- {
		c1 := s1.Next()
		c2 := s2.Next()

		if c1 != c2 {
			if c1 < c2 {
				return -1
			}
			return 1
		}
		if c1 == 0 {
			return 0
		}
	}
	return 0
}

// CompareFold compares two streams ignoring ASCII case.
func CompareFold(s1, s2 Stream) int {
	for {
		c1 := ToUpper(s1.Next())
		c2 := ToUpper(s2.Next())

		if c1 != c2 {
			if c1 < c2 {
				return -1
			}
			return 1
		}
		if c1 == 0 {
			return 0
		}
	}
}

// CompareFoldN compares at most maxChars characters of two streams,
// ignoring ASCII case.
func CompareFoldN(s1, s2 Stream, maxChars int) int {
	for maxChars--; maxChars >= 0; maxChars-- {
		c1 := ToUpper(s1.Next())
		c2 := ToUpper(s2.Next())

		if c1 != c2 {
			if c1 < c2 {
				return -1
			}
			return 1
		}
		if c1 == 0 {
			return 0
		}
	}
	return 0
}
