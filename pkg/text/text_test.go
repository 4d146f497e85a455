package text

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsMarkdown(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", false},
		{"こんにちは", false},
		{"Hello world. How are you?", false},
		{"- just one dash item", false},
		{"# Title\n\nSome **bold** text", true},
		{"Use `speak` with a [link](https://example.org)", true},
		{"> quote\n\n1. first\n2. second", true},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, IsMarkdown(tt.input), tt.input)
	}
}

func TestPlain(t *testing.T) {
	input := "# Title\n\nSome **bold** and [link](http://example.org).\n\n```go\nfmt.Println()\n```\n\n- one\n- two\n"

	result := Plain(input)

	require.Contains(t, result, "Title")
	require.Contains(t, result, "Some bold and link.")
	require.Contains(t, result, "one")
	require.Contains(t, result, "two")

	require.NotContains(t, result, "**")
	require.NotContains(t, result, "#")
	require.NotContains(t, result, "Println")
	require.NotContains(t, result, "example.org")
}

func TestPlainSoftBreak(t *testing.T) {
	require.Equal(t, "first line second line", Plain("first line\nsecond line"))
}

func TestSpeakable(t *testing.T) {
	require.Equal(t, "こんにちは", Speakable("こんにちは"))
	require.Equal(t, "  keep *as is*  ", Speakable("  keep *as is*  "))

	require.Equal(t, "Title\nHello world", Speakable("## Title\n\nHello **world**"))
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "a b\nc\n\nd", Normalize("  a   b\r\n  c\n\n\n   d  "))
}
