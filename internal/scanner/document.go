package scanner

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Document is a loaded file plus its ordered lines. Immutable once loaded
// and owned by a single scan; it is discarded after the FileReport is built.
type Document struct {
	Path  string
	Lines []string
}

// LoadDocument reads a file into a Document. Read failures are returned to
// the caller, which downgrades them to per-file diagnostics so one bad file
// never blocks the rest of the corpus.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	text := string(data)
	if !utf8.ValidString(text) {
		// Malformed input must not crash the scan; replace invalid bytes
		// so downstream regex matching stays well-defined.
		text = strings.ToValidUTF8(text, "�")
	}

	return &Document{
		Path:  path,
		Lines: strings.Split(text, "\n"),
	}, nil
}

// NewDocument builds an in-memory Document, used by tests and single-string
// scans.
func NewDocument(path, content string) *Document {
	return &Document{
		Path:  path,
		Lines: strings.Split(content, "\n"),
	}
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// ContextAround returns up to n lines either side of the 1-based line
// number, prefixed with line numbers, for verbose violation output.
func (d *Document) ContextAround(line, n int) []string {
	if line < 1 || line > len(d.Lines) || n <= 0 {
		return nil
	}

	start := line - 1 - n
	if start < 0 {
		start = 0
	}
	end := line - 1 + n
	if end > len(d.Lines)-1 {
		end = len(d.Lines) - 1
	}

	out := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		marker := " "
		if i == line-1 {
			marker = ">"
		}
		out = append(out, fmt.Sprintf("%s %4d | %s", marker, i+1, d.Lines[i]))
	}
	return out
}
