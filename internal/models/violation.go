// Package models defines the core data types shared across skilllint:
// severities, rule categories, violations, and the per-file and corpus-wide
// report aggregates built from them.
package models

import "fmt"

// Severity classifies how blocking a violation is. The ordering is
// significant: INFO < WARNING < ERROR, so exit-code policy reduces to a
// numeric comparison.
type Severity int

const (
	// SeverityInfo marks suggestions that never block a run.
	SeverityInfo Severity = iota
	// SeverityWarning marks should-fix issues.
	SeverityWarning
	// SeverityError marks blocking issues.
	SeverityError
)

// String returns the uppercase display name for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler so severities render as
// their names in JSON output rather than bare integers.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so JSON reports can be
// read back, e.g. by tooling that diffs two runs.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "ERROR":
		*s = SeverityError
	case "WARNING":
		*s = SeverityWarning
	case "INFO":
		*s = SeverityInfo
	default:
		return fmt.Errorf("unknown severity %q", text)
	}
	return nil
}

// ParseSeverity converts a user-supplied severity name (case-insensitive is
// handled by callers) into a Severity. Returns false for unknown names.
func ParseSeverity(name string) (Severity, bool) {
	switch name {
	case "error":
		return SeverityError, true
	case "warning", "warn":
		return SeverityWarning, true
	case "info":
		return SeverityInfo, true
	default:
		return SeverityInfo, false
	}
}

// Category identifies which check produced a violation.
type Category string

const (
	// CategorySecondPerson covers second-person voice ("you should ...").
	CategorySecondPerson Category = "second-person"
	// CategoryPassiveVoice covers auxiliary + past participle constructions.
	CategoryPassiveVoice Category = "passive-voice"
	// CategoryNonImperative covers modal verbs and hedged phrasing.
	CategoryNonImperative Category = "non-imperative"
	// CategoryConversational covers chatty tone ("let's", "we can").
	CategoryConversational Category = "conversational"
	// CategoryExampleFormat covers the paired correct/incorrect example
	// convention (missing code blocks, imbalanced markers).
	CategoryExampleFormat Category = "example-format"
	// CategoryAntiPattern covers missing anti-pattern documentation in
	// long documents.
	CategoryAntiPattern Category = "anti-pattern-docs"
)

// VoiceCategories lists the pattern-matched categories in evaluation order.
// The order is fixed so report output is deterministic.
var VoiceCategories = []Category{
	CategorySecondPerson,
	CategoryPassiveVoice,
	CategoryNonImperative,
	CategoryConversational,
}

// AllCategories lists every category in report display order.
var AllCategories = []Category{
	CategorySecondPerson,
	CategoryPassiveVoice,
	CategoryNonImperative,
	CategoryConversational,
	CategoryExampleFormat,
	CategoryAntiPattern,
}

// Violation is a single reported rule match. Line is 1-based; a Line of 0
// marks a document-level violation (anti-pattern section missing, imbalanced
// example markers).
type Violation struct {
	File       string   `json:"file"`
	Line       int      `json:"line"`
	Category   Category `json:"category"`
	Severity   Severity `json:"severity"`
	Matched    string   `json:"matched,omitempty"`
	Text       string   `json:"text,omitempty"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
	// Context holds surrounding source lines when verbose output is
	// requested. Never populated otherwise.
	Context []string `json:"context,omitempty"`
}

// DocumentLevel reports whether the violation is anchored to the document
// rather than a specific line.
func (v Violation) DocumentLevel() bool {
	return v.Line == 0
}
