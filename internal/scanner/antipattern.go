package scanner

import (
	"fmt"
	"regexp"

	"github.com/harrison/skilllint/internal/models"
)

// antiPatternHeadingRegex recognizes a mistakes/anti-pattern section
// heading at any level.
var antiPatternHeadingRegex = regexp.MustCompile(`(?i)^#{1,6}\s+.*\b(?:anti-?patterns?|common\s+mistakes?|common\s+errors?|pitfalls?|what\s+not\s+to\s+do|failure\s+modes?)\b`)

// checkAntiPatterns verifies that sufficiently long documents document
// their failure modes. Returns a document-level violation (or nil) plus
// whether a recognizable heading exists regardless of document length.
func (c *Checker) checkAntiPatterns(doc *Document, contexts *ContextMap) (*models.Violation, bool) {
	hasSection := false
	for i, line := range doc.Lines {
		if contexts.At(i).Excluded() {
			continue
		}
		if antiPatternHeadingRegex.MatchString(line) {
			hasSection = true
			break
		}
	}

	threshold := c.opts.MinLinesForAntiPatterns
	if threshold <= 0 || doc.LineCount() <= threshold || hasSection {
		return nil, hasSection
	}

	return &models.Violation{
		File:       doc.Path,
		Line:       0,
		Category:   models.CategoryAntiPattern,
		Severity:   models.SeverityWarning,
		Message:    fmt.Sprintf("Missing anti-pattern documentation (%d lines, threshold %d)", doc.LineCount(), threshold),
		Suggestion: "Add a \"Common Mistakes\" or \"Anti-Patterns\" section covering known failure modes",
	}, false
}
