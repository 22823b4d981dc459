// Package scanner implements the per-document analysis pipeline: the
// line-context classifier, the voice rule engine, the paired-example
// validator, and the anti-pattern documentation check.
package scanner

import (
	"regexp"
	"strings"
)

// LineContext holds the exclusion flags for one line. A line carrying any
// flag is exempt from voice checking; inline code spans are masked at
// substring granularity instead so the rest of the line stays checkable.
type LineContext struct {
	// InCodeBlock is set for lines inside a fenced code block and for the
	// fence delimiter lines themselves.
	InCodeBlock bool
	// InFrontmatter is set for lines between a leading bare "---" and the
	// next bare "---", and for the delimiters.
	InFrontmatter bool
	// InQuote is set for blockquote lines. Not carried forward.
	InQuote bool
	// InTable is set for lines containing an unescaped pipe.
	InTable bool
}

// Excluded reports whether voice checks skip this line entirely.
func (c LineContext) Excluded() bool {
	return c.InCodeBlock || c.InFrontmatter || c.InQuote || c.InTable
}

// fenceRegex matches a bare fence delimiter: three or more backticks with an
// optional language tag, nothing else on the line.
var fenceRegex = regexp.MustCompile("^\\s*`{3,}[\\w+-]*\\s*$")

// unescapedPipeRegex matches a pipe not preceded by a backslash.
var unescapedPipeRegex = regexp.MustCompile(`(^|[^\\])\|`)

// ContextMap is the per-line exclusion map for one document, computed in a
// single forward pass and read-only afterwards.
type ContextMap struct {
	lines []LineContext
}

// DetectContexts classifies every line in one forward pass, O(n) with no
// backtracking. An unclosed fence or front matter block at end of file
// leaves the remainder flagged as enclosed: the detector fails toward
// exclusion rather than false positives.
func DetectContexts(lines []string) *ContextMap {
	contexts := make([]LineContext, len(lines))

	inCodeBlock := false
	inFrontmatter := false
	frontmatterClosed := false

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Front matter opens only on a bare --- as the very first line.
		if i == 0 && trimmed == "---" {
			inFrontmatter = true
			contexts[i].InFrontmatter = true
			continue
		}
		if inFrontmatter {
			contexts[i].InFrontmatter = true
			if trimmed == "---" && !frontmatterClosed {
				inFrontmatter = false
				frontmatterClosed = true
			}
			continue
		}

		// Fence delimiters toggle code-block state; the delimiter line
		// itself is excluded from all checks.
		if fenceRegex.MatchString(line) {
			contexts[i].InCodeBlock = true
			inCodeBlock = !inCodeBlock
			continue
		}
		if inCodeBlock {
			contexts[i].InCodeBlock = true
			continue
		}

		if strings.HasPrefix(trimmed, ">") {
			contexts[i].InQuote = true
		}
		if unescapedPipeRegex.MatchString(line) {
			contexts[i].InTable = true
		}
	}

	return &ContextMap{lines: contexts}
}

// At returns the context for the given 0-based line index. Out-of-range
// indexes report an empty context.
func (m *ContextMap) At(idx int) LineContext {
	if idx < 0 || idx >= len(m.lines) {
		return LineContext{}
	}
	return m.lines[idx]
}

// Len returns the number of classified lines.
func (m *ContextMap) Len() int {
	return len(m.lines)
}

// MaskInlineCode replaces inline single-backtick spans with spaces of equal
// length, so matchers never fire inside inline code while byte offsets in
// the rest of the line stay valid for excerpt extraction.
func MaskInlineCode(line string) string {
	if !strings.Contains(line, "`") {
		return line
	}

	out := []byte(line)
	inSpan := false
	spanStart := -1
	for i := 0; i < len(out); i++ {
		if out[i] != '`' {
			continue
		}
		if !inSpan {
			inSpan = true
			spanStart = i
		} else {
			for j := spanStart; j <= i; j++ {
				out[j] = ' '
			}
			inSpan = false
		}
	}
	// An unterminated span leaves the opening backtick and its tail
	// unmasked: a lone backtick is prose, not code.
	return string(out)
}
