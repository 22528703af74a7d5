package textutil_test

import (
	"testing"

	"environews/internal/shared/textutil"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text untouched",
			input:    "water treatment tender",
			expected: "water treatment tender",
		},
		{
			name:     "tags stripped",
			input:    "<p>New <b>biogas</b> plant</p>",
			expected: "New biogas plant",
		},
		{
			name:     "entities decoded before stripping",
			input:    "Oil &amp; Gas &lt;update&gt;",
			expected: "Oil & Gas",
		},
		{
			name:     "whitespace collapsed",
			input:    "line one\n\n\tline   two",
			expected: "line one line two",
		},
		{
			name:     "malformed markup does not panic",
			input:    "<p unclosed attr='x >still here",
			expected: "still here",
		},
		{
			name:     "leading and trailing space trimmed",
			input:    "  <div> padded </div>  ",
			expected: "padded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, textutil.Clean(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", textutil.Truncate("abc", 10))
	assert.Equal(t, "abc", textutil.Truncate("abcdef", 3))
	assert.Equal(t, "", textutil.Truncate("abc", 0))
	// rune-safe on multi-byte text
	assert.Equal(t, "آبگ", textutil.Truncate("آبگیری", 3))
}
