package scanner

import (
	"strings"

	"github.com/harrison/skilllint/internal/models"
	"github.com/harrison/skilllint/internal/rules"
)

// Options configures a document scan.
type Options struct {
	// ExampleLookahead is the number of non-blank lines inspected after an
	// example marker for an opening code fence.
	ExampleLookahead int
	// MinLinesForAntiPatterns is the document length at which an
	// anti-pattern section becomes required. Zero disables the check.
	MinLinesForAntiPatterns int
	// ContextLines attaches this many surrounding lines to each violation
	// when positive (verbose mode).
	ContextLines int
}

// DefaultOptions returns the standard scan defaults.
func DefaultOptions() Options {
	return Options{
		ExampleLookahead:        3,
		MinLinesForAntiPatterns: 200,
	}
}

// Checker scans documents against an immutable rule registry. Construct it
// once and reuse it across the whole corpus; it holds no per-document state.
type Checker struct {
	registry *rules.Registry
	opts     Options
}

// NewChecker creates a Checker for the given registry and options.
func NewChecker(registry *rules.Registry, opts Options) *Checker {
	return &Checker{registry: registry, opts: opts}
}

// CheckFile loads and scans a single file.
func (c *Checker) CheckFile(path string) (models.FileReport, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return models.FileReport{}, err
	}
	return c.Check(doc), nil
}

// Check runs every check against a loaded document and aggregates the
// result into a FileReport. Violations appear in line order, with voice
// categories interleaved per line in registry order, then example-format
// findings, then document-level findings.
func (c *Checker) Check(doc *Document) models.FileReport {
	contexts := DetectContexts(doc.Lines)

	violations := c.checkVoice(doc, contexts)

	exampleViolations, pairedExamples := c.checkExamples(doc, contexts)
	violations = append(violations, exampleViolations...)

	antiPatternViolation, hasSection := c.checkAntiPatterns(doc, contexts)
	if antiPatternViolation != nil {
		violations = append(violations, *antiPatternViolation)
	}

	if c.opts.ContextLines > 0 {
		for i := range violations {
			if violations[i].Line > 0 {
				violations[i].Context = doc.ContextAround(violations[i].Line, c.opts.ContextLines)
			}
		}
	}

	return models.NewFileReport(doc.Path, doc.LineCount(), violations, pairedExamples, hasSection)
}

// checkVoice evaluates the four voice rule sets line by line. For each
// non-excluded line, each category reports at most one violation: the first
// matching rule wins. Distinct categories still match independently.
func (c *Checker) checkVoice(doc *Document, contexts *ContextMap) []models.Violation {
	var violations []models.Violation

	for i, line := range doc.Lines {
		if contexts.At(i).Excluded() {
			continue
		}

		masked := MaskInlineCode(line)
		if strings.TrimSpace(masked) == "" {
			continue
		}

		for _, set := range c.registry.Sets() {
			for _, rule := range set.Rules {
				matched := rule.Pattern.FindString(masked)
				if matched == "" {
					continue
				}
				violations = append(violations, models.Violation{
					File:       doc.Path,
					Line:       i + 1,
					Category:   set.Category,
					Severity:   set.Severity,
					Matched:    matched,
					Text:       strings.TrimSpace(line),
					Message:    rule.Message,
					Suggestion: rule.Suggestion,
				})
				break // first match per category per line wins
			}
		}
	}

	return violations
}
