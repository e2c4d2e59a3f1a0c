package charscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexOf(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		expected int
	}{
		{
			name:     "Match at start",
			haystack: "hello world",
			needle:   "hello",
			expected: 0,
		},
		{
			name:     "Match in the middle",
			haystack: "hello world",
			needle:   "o wo",
			expected: 4,
		},
		{
			name:     "Match at end",
			haystack: "hello world",
			needle:   "world",
			expected: 6,
		},
		{
			name:     "No match",
			haystack: "hello world",
			needle:   "worlds",
			expected: -1,
		},
		{
			name:     "Empty needle matches at zero",
			haystack: "hello",
			needle:   "",
			expected: 0,
		},
		{
			name:     "Empty haystack",
			haystack: "",
			needle:   "x",
			expected: -1,
		},
		{
			name:     "Both empty",
			haystack: "",
			needle:   "",
			expected: 0,
		},
		{
			name:     "Needle longer than haystack",
			haystack: "ab",
			needle:   "abc",
			expected: -1,
		},
		{
			name:     "Index counts characters not bytes",
			haystack: "漢字abc",
			needle:   "abc",
			expected: 2,
		},
		{
			name:     "Multi-byte needle",
			haystack: "ab漢字cd",
			needle:   "漢字",
			expected: 2,
		},
		{
			name:     "Repeated prefix",
			haystack: "aaab",
			needle:   "aab",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IndexOf(NewStringStream(tt.haystack), NewStringStream(tt.needle))
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIndexOfLeavesHaystackAtMatch(t *testing.T) {
	haystack := NewStringStream("xxneedle-tail")
	result := IndexOf(haystack, NewStringStream("needle"))
	assert.Equal(t, 2, result)
	assert.Equal(t, "needle-tail", haystack.RestString())
}

func TestIndexOfPoolReuse(t *testing.T) {
	// Back-to-back searches share pooled needle buffers; results must not
	// leak between calls
	for i := 0; i < 100; i++ {
		assert.Equal(t, 3, IndexOf(NewStringStream("abcdef"), NewStringStream("def")))
		assert.Equal(t, -1, IndexOf(NewStringStream("abcdef"), NewStringStream("zzz")))
	}
}

func TestIndexOfRune(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		r        rune
		expected int
	}{
		{
			name:     "Found",
			text:     "hello",
			r:        'l',
			expected: 2,
		},
		{
			name:     "Not found",
			text:     "hello",
			r:        'z',
			expected: -1,
		},
		{
			name:     "Empty text",
			text:     "",
			r:        'a',
			expected: -1,
		},
		{
			name:     "Multi-byte target",
			text:     "ab漢c",
			r:        '漢',
			expected: 2,
		},
		{
			name:     "Case sensitive",
			text:     "abc",
			r:        'B',
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IndexOfRune(NewStringStream(tt.text), tt.r)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIndexOfRuneFold(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		r        rune
		expected int
	}{
		{
			name:     "Uppercase target finds lowercase",
			text:     "abc",
			r:        'B',
			expected: 1,
		},
		{
			name:     "Lowercase target finds uppercase",
			text:     "ABC",
			r:        'b',
			expected: 1,
		},
		{
			name:     "Non-letter exact match",
			text:     "a-b",
			r:        '-',
			expected: 1,
		},
		{
			name:     "Multi-byte runes never fold",
			text:     "é",
			r:        'É',
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IndexOfRuneFold(NewStringStream(tt.text), tt.r)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func BenchmarkIndexOf(b *testing.B) {
	haystack := "the quick brown fox jumps over the lazy dog"
	for i := 0; i < b.N; i++ {
		IndexOf(NewStringStream(haystack), NewStringStream("lazy"))
	}
}
