package scanner

import (
	"strings"
	"testing"
)

func TestDetectContextsCodeBlocks(t *testing.T) {
	lines := strings.Split(`Intro line
`+"```go"+`
you should never see this flagged
`+"```"+`
Outro line`, "\n")

	contexts := DetectContexts(lines)

	if contexts.At(0).Excluded() {
		t.Error("Line 0 (intro) should not be excluded")
	}
	if !contexts.At(1).InCodeBlock {
		t.Error("Opening fence line should be excluded")
	}
	if !contexts.At(2).InCodeBlock {
		t.Error("Line inside code block should be flagged")
	}
	if !contexts.At(3).InCodeBlock {
		t.Error("Closing fence line should be excluded")
	}
	if contexts.At(4).Excluded() {
		t.Error("Line after code block should not be excluded")
	}
}

func TestDetectContextsFrontmatter(t *testing.T) {
	lines := []string{
		"---",
		"name: test-skill",
		"description: you should not flag metadata",
		"---",
		"Body text here.",
	}

	contexts := DetectContexts(lines)

	for i := 0; i <= 3; i++ {
		if !contexts.At(i).InFrontmatter {
			t.Errorf("Line %d should be in front matter", i)
		}
	}
	if contexts.At(4).Excluded() {
		t.Error("Body line after front matter should not be excluded")
	}
}

func TestDetectContextsFrontmatterOnlyAtTop(t *testing.T) {
	lines := []string{
		"Body first.",
		"---",
		"not frontmatter",
		"---",
	}

	contexts := DetectContexts(lines)
	if contexts.At(2).InFrontmatter {
		t.Error("A --- pair after content must not open front matter")
	}
}

func TestDetectContextsSecondFrontmatterNotReopened(t *testing.T) {
	lines := []string{
		"---",
		"title: x",
		"---",
		"body",
		"---",
		"more body",
	}

	contexts := DetectContexts(lines)
	if contexts.At(5).InFrontmatter {
		t.Error("Front matter must not reopen after it has closed")
	}
}

func TestDetectContextsQuoteAndTable(t *testing.T) {
	lines := []string{
		"> you should read quoted material verbatim",
		"| you can | put anything | in tables |",
		"Escaped \\| pipe is prose",
		"Plain line",
	}

	contexts := DetectContexts(lines)

	if !contexts.At(0).InQuote {
		t.Error("Blockquote line should be flagged")
	}
	if contexts.At(1).Excluded() == false || !contexts.At(1).InTable {
		t.Error("Table line should be flagged")
	}
	if contexts.At(2).InTable {
		t.Error("Escaped pipe should not flag a table")
	}
	if contexts.At(3).Excluded() {
		t.Error("Plain line should not be excluded")
	}
}

func TestDetectContextsQuoteNotCarriedForward(t *testing.T) {
	contexts := DetectContexts([]string{"> quoted", "not quoted"})
	if contexts.At(1).InQuote {
		t.Error("Quote flag must not carry to the next line")
	}
}

func TestDetectContextsUnclosedFence(t *testing.T) {
	lines := []string{
		"Intro",
		"```",
		"dangling code",
		"still inside",
	}

	contexts := DetectContexts(lines)
	for i := 1; i < len(lines); i++ {
		if !contexts.At(i).InCodeBlock {
			t.Errorf("Line %d after an unclosed fence should stay excluded", i)
		}
	}
}

func TestDetectContextsUnclosedFrontmatter(t *testing.T) {
	lines := []string{
		"---",
		"title: broken",
		"no closing delimiter",
	}

	contexts := DetectContexts(lines)
	for i := range lines {
		if !contexts.At(i).InFrontmatter {
			t.Errorf("Line %d of unclosed front matter should stay excluded", i)
		}
	}
}

func TestDetectContextsFenceWithLanguageTag(t *testing.T) {
	contexts := DetectContexts([]string{"```python", "x = 1", "```"})
	if !contexts.At(0).InCodeBlock || !contexts.At(1).InCodeBlock {
		t.Error("Fence with language tag should open a code block")
	}
}

func TestDetectContextsIndentedFence(t *testing.T) {
	contexts := DetectContexts([]string{"  ```", "code", "  ```"})
	if !contexts.At(1).InCodeBlock {
		t.Error("Indented fence should still toggle code-block state")
	}
}

func TestContextMapOutOfRange(t *testing.T) {
	contexts := DetectContexts([]string{"one"})
	if contexts.At(-1).Excluded() || contexts.At(5).Excluded() {
		t.Error("Out-of-range lines should report empty context")
	}
	if contexts.Len() != 1 {
		t.Errorf("Expected length 1, got %d", contexts.Len())
	}
}

func TestMaskInlineCode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single span",
			input:    "Run `you should not match` now",
			expected: "Run " + strings.Repeat(" ", 22) + " now",
		},
		{
			name:     "multiple spans",
			input:    "`a` and `b` here",
			expected: "    and     here",
		},
		{
			name:     "no backticks",
			input:    "plain text",
			expected: "plain text",
		},
		{
			name:     "unterminated span left unmasked",
			input:    "a lone ` backtick",
			expected: "a lone ` backtick",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskInlineCode(tt.input)
			if got != tt.expected {
				t.Errorf("MaskInlineCode(%q) = %q, want %q", tt.input, got, tt.expected)
			}
			if len(got) != len(tt.input) {
				t.Errorf("Masking must preserve line length: %d != %d", len(got), len(tt.input))
			}
		})
	}
}
