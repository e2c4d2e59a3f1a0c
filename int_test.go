package charscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt64(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		rest     string
	}{
		{
			name:     "Plain integer",
			input:    "42",
			expected: 42,
			rest:     "",
		},
		{
			name:     "Negative integer",
			input:    "-42",
			expected: -42,
			rest:     "",
		},
		{
			name:     "Leading whitespace",
			input:    "  123abc",
			expected: 123,
			rest:     "abc",
		},
		{
			name:     "Plus sign is not accepted",
			input:    "+42",
			expected: 0,
			rest:     "+42",
		},
		{
			name:     "Empty input",
			input:    "",
			expected: 0,
			rest:     "",
		},
		{
			name:     "Non-numeric input",
			input:    "abc",
			expected: 0,
			rest:     "abc",
		},
		{
			name:     "Lone minus",
			input:    "-",
			expected: 0,
			rest:     "",
		},
		{
			name:     "Minus then garbage",
			input:    "-x",
			expected: 0,
			rest:     "x",
		},
		{
			name:     "Terminator is not consumed",
			input:    "7.5",
			expected: 7,
			rest:     ".5",
		},
		{
			name:     "Leading zeros",
			input:    "007",
			expected: 7,
			rest:     "",
		},
		{
			name:     "Large value",
			input:    "9223372036854775807",
			expected: 9223372036854775807,
			rest:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStringStream(tt.input)
			result := Int64(s)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, tt.rest, s.RestString())
		})
	}
}

func TestInt(t *testing.T) {
	assert.Equal(t, -17, Int(NewStringStream(" -17 ")))
	assert.Equal(t, 0, Int(NewStringStream("x")))
}

func TestInt64OnRuneStream(t *testing.T) {
	s := NewRuneStream([]rune("  -450漢"))
	assert.Equal(t, int64(-450), Int64(s))
	assert.Equal(t, []rune("漢"), s.Rest())
}
