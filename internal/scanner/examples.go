package scanner

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/harrison/skilllint/internal/models"
)

// Example markers follow the corpus convention: a ✅/"Correct:" label
// introduces a good example, a ❌/"Incorrect:"/"Wrong:" label introduces a
// bad one. Each marker must be followed by a fenced code block within the
// configured lookahead of non-blank lines.
var (
	correctMarkerRegex   = regexp.MustCompile(`(?i)✅|\bcorrect\s*(?::|example\b|approach\b|pattern\b|usage\b)`)
	incorrectMarkerRegex = regexp.MustCompile(`(?i)❌|\b(?:incorrect|wrong)\s*(?::|example\b|approach\b|pattern\b|usage\b)`)
)

// checkExamples validates the paired correct/incorrect example convention.
// It returns per-marker "missing code block" warnings, at most one
// file-level imbalance violation, and whether the document pairs both
// marker kinds.
func (c *Checker) checkExamples(doc *Document, contexts *ContextMap) ([]models.Violation, bool) {
	var violations []models.Violation
	correctCount := 0
	incorrectCount := 0

	for i, line := range doc.Lines {
		if contexts.At(i).Excluded() {
			continue
		}

		isCorrect := correctMarkerRegex.MatchString(line)
		isIncorrect := incorrectMarkerRegex.MatchString(line)
		if !isCorrect && !isIncorrect {
			continue
		}

		kind := "correct"
		if isIncorrect {
			kind = "incorrect"
			incorrectCount++
		} else {
			correctCount++
		}

		if !c.codeBlockFollows(doc, i) {
			violations = append(violations, models.Violation{
				File:       doc.Path,
				Line:       i + 1,
				Category:   models.CategoryExampleFormat,
				Severity:   models.SeverityWarning,
				Matched:    strings.TrimSpace(line),
				Text:       strings.TrimSpace(line),
				Message:    fmt.Sprintf("Example marker (%s) has no following code block", kind),
				Suggestion: fmt.Sprintf("Add a fenced code block within %d lines of the marker", c.opts.ExampleLookahead),
			})
		}
	}

	// Imbalance is a single file-level finding, never per-occurrence.
	if (correctCount == 0) != (incorrectCount == 0) {
		present, missing := "correct", "incorrect"
		if correctCount == 0 {
			present, missing = "incorrect", "correct"
		}
		violations = append(violations, models.Violation{
			File:       doc.Path,
			Line:       0,
			Category:   models.CategoryExampleFormat,
			Severity:   models.SeverityInfo,
			Message:    fmt.Sprintf("Imbalanced examples: %s markers present but no %s markers", present, missing),
			Suggestion: fmt.Sprintf("Pair each %s example with a %s counterpart", present, missing),
		})
	}

	return violations, correctCount > 0 && incorrectCount > 0
}

// codeBlockFollows reports whether a fenced code block opens within the
// configured lookahead of non-blank lines after the marker at index idx.
func (c *Checker) codeBlockFollows(doc *Document, idx int) bool {
	seen := 0
	for i := idx + 1; i < len(doc.Lines) && seen < c.opts.ExampleLookahead; i++ {
		line := doc.Lines[i]
		if strings.TrimSpace(line) == "" {
			continue
		}
		seen++
		if fenceRegex.MatchString(line) {
			return true
		}
	}
	return false
}
