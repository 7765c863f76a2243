package conv

import (
	"strings"
	"testing"
)

func TestMarkdownToTelegramHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text",
			input:    "Hello world",
			expected: "Hello world\n",
		},
		{
			name:     "bold text",
			input:    "**bold**",
			expected: "<strong>bold</strong>\n",
		},
		{
			name:     "italic text",
			input:    "*italic*",
			expected: "<em>italic</em>\n",
		},
		{
			name:     "inline code",
			input:    "`code`",
			expected: "<code>code</code>\n",
		},
		{
			name:     "header tags stripped",
			input:    "# Solution",
			expected: "Solution\n",
		},
		{
			name:     "latex span preserved",
			input:    "The answer is $x = 4$",
			expected: "The answer is $x = 4$\n",
		},
		{
			name:     "display math block preserved",
			input:    "$$\\frac{x^3}{3} + C$$",
			expected: "$$\\frac{x^3}{3} + C$$\n",
		},
		{
			name:     "script tags sanitized",
			input:    "<script>alert('xss')</script>",
			expected: "\n",
		},
		{
			name:     "link",
			input:    "[link](https://example.com)",
			expected: "<a href=\"https://example.com\">link</a>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkdownToTelegramHTML([]byte(tt.input))
			if got != tt.expected {
				t.Errorf("MarkdownToTelegramHTML(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMarkdownToPlain(t *testing.T) {
	got := MarkdownToPlain([]byte("# Addition\n\nThe **answer** is $4$."))

	if !strings.Contains(got, "Addition") {
		t.Errorf("MarkdownToPlain dropped the heading: %q", got)
	}
	if !strings.Contains(got, "$4$") {
		t.Errorf("MarkdownToPlain dropped the latex span: %q", got)
	}
	if strings.Contains(got, "**") || strings.Contains(got, "<strong>") {
		t.Errorf("MarkdownToPlain leaked markup: %q", got)
	}
}
