package seo

import (
	"strings"
	"testing"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "nested tags",
			html:     "<p>Hello <b>world</b></p>",
			expected: "Hello world",
		},
		{
			name:     "plain text unchanged",
			html:     "no markup here",
			expected: "no markup here",
		},
		{
			name:     "whitespace collapsed",
			html:     "<div>  several\n\n   words\t here </div>",
			expected: "several words here",
		},
		{
			name:     "unclosed tag does not panic",
			html:     "<p>text <b unclosed",
			expected: "text",
		},
		{
			name:     "attributes with angle-ish content",
			html:     `<a href="/x" title="click">link</a> after`,
			expected: "link after",
		},
		{
			name:     "empty input",
			html:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripMarkup(tt.html)
			if got != tt.expected {
				t.Errorf("StripMarkup() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		maxLength int
		expected  string
	}{
		{
			name:      "short text unchanged",
			text:      "hello",
			maxLength: 160,
			expected:  "hello",
		},
		{
			name:      "exact length unchanged",
			text:      "12345",
			maxLength: 5,
			expected:  "12345",
		},
		{
			name:      "long text cut with ellipsis",
			text:      "abcdefghij",
			maxLength: 8,
			expected:  "abcde...",
		},
		{
			name:      "trailing space trimmed before ellipsis",
			text:      "abcd efghij",
			maxLength: 8,
			expected:  "abcd...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.text, tt.maxLength)
			if got != tt.expected {
				t.Errorf("Truncate() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTruncateBound(t *testing.T) {
	long := strings.Repeat("x", 200)
	got := Truncate(long, 160)
	if len(got) != 160 {
		t.Errorf("Truncate length = %d, want 160", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Truncate() = %q, want ellipsis suffix", got[150:])
	}

	for _, max := range []int{4, 5, 10, 50, 160, 300} {
		if out := Truncate(long, max); len([]rune(out)) > max {
			t.Errorf("Truncate(_, %d) length = %d, exceeds bound", max, len([]rune(out)))
		}
	}
}

func TestTruncateIdempotent(t *testing.T) {
	inputs := []string{
		strings.Repeat("x", 200),
		"short",
		"words with  spaces spread throughout the whole line to cut at",
		strings.Repeat("word ", 50),
	}
	for _, text := range inputs {
		for _, max := range []int{4, 10, 42, 160} {
			once := Truncate(text, max)
			twice := Truncate(once, max)
			if once != twice {
				t.Errorf("Truncate(%q, %d) not idempotent: %q != %q", text, max, once, twice)
			}
		}
	}
}

func TestDescribe(t *testing.T) {
	got := Describe("<p>Hello <b>world</b></p>", 160)
	if got != "Hello world" {
		t.Errorf("Describe() = %q, want %q", got, "Hello world")
	}

	long := "<p>" + strings.Repeat("a", 400) + "</p>"
	got = Describe(long, DefaultFeedDescriptionLength)
	if len(got) != DefaultFeedDescriptionLength {
		t.Errorf("Describe length = %d, want %d", len(got), DefaultFeedDescriptionLength)
	}
}
