package charscan

// Stream is a forward-only cursor over a sequence of characters. It is the
// input abstraction shared by every parsing, comparison and search function
// in this package, so the same algorithms run unchanged over UTF-8 bytes
// (ByteStream) and decoded runes (RuneStream).
//
// A Stream never seeks backward. End of input reads as the character 0, the
// same sentinel C strings use, which keeps the scanning loops branch-light.
// Streams are not safe for concurrent use; distinct instances are.
type Stream interface {
	// Peek returns the current character without consuming it, or 0 at
	// end of input.
	Peek() rune

	// PeekAt returns the character n positions ahead of the cursor
	// without consuming anything, or 0 past end of input. PeekAt(0) is
	// equivalent to Peek.
	PeekAt(n int) rune

	// Next returns the current character and advances the cursor, or
	// returns 0 at end of input.
	Next() rune

	// IsDigit reports whether the current character is an ASCII digit.
	IsDigit() bool

	// Empty reports whether the cursor is at end of input.
	Empty() bool

	// SkipWhitespace advances the cursor past leading ASCII whitespace.
	SkipWhitespace()
}

// ByteStream is a Stream over UTF-8 encoded bytes. The zero value is an
// empty stream.
type ByteStream struct {
	b []byte
}

// NewByteStream returns a cursor positioned at the start of b. The stream
// reads b in place; the caller must not mutate it while the stream is live.
func NewByteStream(b []byte) *ByteStream {
	return &ByteStream{b: b}
}

// NewStringStream returns a cursor over s without copying it.
func NewStringStream(s string) *ByteStream {
	return &ByteStream{b: unsafeStringToBytes(s)}
}

// Peek returns the current character, or 0 at end of input.
func (s *ByteStream) Peek() rune {
	if len(s.b) == 0 {
		return 0
	}
	if s.b[0] < 0x80 { // Fast ASCII path - most common case
		return rune(s.b[0])
	}
	r, _ := decodeRune(s.b)
	return r
}

// PeekAt returns the character n positions ahead, or 0 past end of input.
func (s *ByteStream) PeekAt(n int) rune {
	b := s.b
	for ; n > 0 && len(b) > 0; n-- {
		_, size := decodeRune(b)
		b = b[size:]
	}
	if len(b) == 0 {
		return 0
	}
	r, _ := decodeRune(b)
	return r
}

// Next returns the current character and advances, or 0 at end of input.
func (s *ByteStream) Next() rune {
	if len(s.b) == 0 {
		return 0
	}
	if s.b[0] < 0x80 {
		r := rune(s.b[0])
		s.b = s.b[1:]
		return r
	}
	r, size := decodeRune(s.b)
	s.b = s.b[size:]
	return r
}

// IsDigit reports whether the current character is an ASCII digit.
func (s *ByteStream) IsDigit() bool {
	return len(s.b) > 0 && s.b[0] >= '0' && s.b[0] <= '9'
}

// Empty reports whether the cursor is at end of input.
func (s *ByteStream) Empty() bool {
	return len(s.b) == 0
}

// SkipWhitespace advances past leading ASCII whitespace.
func (s *ByteStream) SkipWhitespace() {
	for len(s.b) > 0 && whitespaceLUT[s.b[0]] {
		s.b = s.b[1:]
	}
}

// Rest returns the unconsumed remainder of the input.
func (s *ByteStream) Rest() []byte {
	return s.b
}

// RestString returns the unconsumed remainder of the input as a string.
func (s *ByteStream) RestString() string {
	return string(s.b)
}

// RuneStream is a Stream over a rune slice, for callers that already hold
// decoded text. The zero value is an empty stream.
type RuneStream struct {
	source   []rune
	position int
}

// NewRuneStream returns a cursor positioned at the start of source.
func NewRuneStream(source []rune) *RuneStream {
	return &RuneStream{source: source}
}

// Peek returns the current character, or 0 at end of input.
func (s *RuneStream) Peek() rune {
	if s.position >= len(s.source) {
		return 0
	}
	return s.source[s.position]
}

// PeekAt returns the character n positions ahead, or 0 past end of input.
func (s *RuneStream) PeekAt(n int) rune {
	if s.position+n >= len(s.source) {
		return 0
	}
	return s.source[s.position+n]
}

// Next returns the current character and advances, or 0 at end of input.
func (s *RuneStream) Next() rune {
	if s.position >= len(s.source) {
		return 0
	}
	r := s.source[s.position]
	s.position++
	return r
}

// IsDigit reports whether the current character is an ASCII digit.
func (s *RuneStream) IsDigit() bool {
	return s.position < len(s.source) &&
		s.source[s.position] >= '0' && s.source[s.position] <= '9'
}

// Empty reports whether the cursor is at end of input.
func (s *RuneStream) Empty() bool {
	return s.position >= len(s.source)
}

// SkipWhitespace advances past leading ASCII whitespace.
func (s *RuneStream) SkipWhitespace() {
	for s.position < len(s.source) && IsWhitespace(s.source[s.position]) {
		s.position++
	}
}

// Rest returns the unconsumed remainder of the input.
func (s *RuneStream) Rest() []rune {
	return s.source[s.position:]
}
