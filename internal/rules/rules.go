// Package rules defines the pattern rule sets that drive voice checking.
//
// Rules are grouped into four categories (second-person voice, passive
// voice, non-imperative mood, conversational tone). Within a category rules
// evaluate in declaration order and the first match on a line wins; distinct
// categories still match independently on the same line. Ordering is a real
// contract, so the registry stores ordered slices, never maps.
package rules

import (
	"fmt"
	"regexp"

	"github.com/harrison/skilllint/internal/models"
)

// Rule pairs a compiled matcher with its fixed remediation text. Severity is
// category-level and lives on the registry, not on individual rules.
type Rule struct {
	// Pattern is the compiled matcher, evaluated against line text with
	// inline code spans masked out.
	Pattern *regexp.Regexp
	// Message describes the problem in the violation output.
	Message string
	// Suggestion is the remediation text, emitted verbatim.
	Suggestion string
}

// RuleSet is the ordered rule list for one category.
type RuleSet struct {
	Category models.Category
	Severity models.Severity
	Rules    []Rule
}

// Registry is an immutable collection of rule sets, constructed once at
// startup and injected into the scanner. Sets() yields categories in fixed
// evaluation order so output stays deterministic.
type Registry struct {
	sets []RuleSet
}

// Sets returns the rule sets in evaluation order.
func (r *Registry) Sets() []RuleSet {
	return r.sets
}

// RuleCount returns the total number of rules across all categories.
func (r *Registry) RuleCount() int {
	n := 0
	for _, set := range r.sets {
		n += len(set.Rules)
	}
	return n
}

// ExtraRule is a user-supplied rule from configuration. The pattern is kept
// as source text so compilation errors can be reported at startup with the
// original string.
type ExtraRule struct {
	Category   models.Category
	Pattern    string
	Message    string
	Suggestion string
}

func mustRule(pattern, message, suggestion string) Rule {
	return Rule{
		Pattern:    regexp.MustCompile(pattern),
		Message:    message,
		Suggestion: suggestion,
	}
}

// secondPersonRules detect second-person voice. The specific modal phrases
// come first so their tailored suggestions win over the generic catch-all.
func secondPersonRules() []Rule {
	return []Rule{
		mustRule(`(?i)\byou\s+should\b`, "Second-person voice (\"you should\")", "Use / Apply / Implement"),
		mustRule(`(?i)\byou\s+must\b`, "Second-person voice (\"you must\")", "Must / Always / Required:"),
		mustRule(`(?i)\byou\s+can\b`, "Second-person voice (\"you can\")", "To accomplish X, [verb]"),
		mustRule(`(?i)\byou\s+need\s+to\b`, "Second-person voice (\"you need to\")", "[Verb directly]"),
		mustRule(`(?i)\byou\s+have\s+to\b`, "Second-person voice (\"you have to\")", "Required: / Must"),
		mustRule(`(?i)\byou\s+want\s+to\b`, "Second-person voice (\"you want to\")", "To accomplish X, [verb]"),
		mustRule(`(?i)\byou['\x60]?ll\s+need\b`, "Second-person voice (\"you'll need\")", "Required: / Need:"),
		mustRule(`(?i)\byou['\x60]?ll\s+want\b`, "Second-person voice (\"you'll want\")", "To accomplish X, [verb]"),
		mustRule(`(?i)\byou['\x60]?re\b`, "Second-person voice (\"you're\")", "Rewrite in imperative voice"),
		mustRule(`(?i)\b(?:if|when)\s+you\b`, "Second-person voice (\"if/when you\")", "If/When [condition], [verb]"),
		mustRule(`(?i)\byour\s+\w+\s+(?:should|must)\b`, "Second-person possessive with modal", "State the requirement directly"),
		mustRule(`(?i)\byou(?:rs?)?\b`, "Second-person pronoun", "Rewrite in imperative voice"),
	}
}

// passiveVoiceRules detect auxiliary + past participle constructions. The
// irregular-participle rule runs first; the generic -ed rule is the
// fallback.
func passiveVoiceRules() []Rule {
	return []Rule{
		mustRule(
			`(?i)\b(?:is|are|was|were|been|being)\s+(?:written|given|taken|done|made|seen|known|shown|found|built|sent|kept|held|run|set|put|read|chosen|driven|hidden|thrown|broken)\b`,
			"Passive voice (irregular participle)",
			"Rewrite in active imperative voice",
		),
		mustRule(
			`(?i)\b(?:is|are|was|were|been|being)\s+\w+ed\b`,
			"Passive voice",
			"Rewrite in active imperative voice",
		),
	}
}

// nonImperativeRules detect hedged, modal phrasing.
func nonImperativeRules() []Rule {
	return []Rule{
		mustRule(`(?i)\bconsider\s+\w+ing\b`, "Hedged instruction (\"consider ...ing\")", "State the instruction directly"),
		mustRule(`(?i)\b(?:should|would|could|might|may)\s+[a-z]+\b`, "Non-imperative mood (modal verb)", "Use the imperative form of the verb"),
	}
}

// conversationalRules detect chatty tone.
func conversationalRules() []Rule {
	return []Rule{
		mustRule(`(?i)\blet['\x60]?s\b`, "Conversational tone (\"let's\")", "Drop the invitation; state the step"),
		mustRule(`(?i)\bwe\s+(?:can|should|will|need|want)\b`, "Conversational tone (\"we can/should\")", "Rewrite in imperative voice"),
		mustRule(`(?i)\bI\s+recommend\b`, "Conversational tone (\"I recommend\")", "State the recommendation as an instruction"),
		mustRule(`(?i)\bfeel\s+free\s+to\b`, "Conversational tone (\"feel free to\")", "State the option directly"),
	}
}

// NewRegistry builds the default rule registry plus any extra rules from
// configuration. Extra rules append after the built-ins of their category in
// declaration order. A malformed pattern or unknown category is fatal.
func NewRegistry(extras []ExtraRule) (*Registry, error) {
	sets := []RuleSet{
		{Category: models.CategorySecondPerson, Severity: models.SeverityError, Rules: secondPersonRules()},
		{Category: models.CategoryPassiveVoice, Severity: models.SeverityWarning, Rules: passiveVoiceRules()},
		{Category: models.CategoryNonImperative, Severity: models.SeverityWarning, Rules: nonImperativeRules()},
		{Category: models.CategoryConversational, Severity: models.SeverityInfo, Rules: conversationalRules()},
	}

	for i, extra := range extras {
		compiled, err := regexp.Compile(extra.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern in extra rule %d (%q): %w", i+1, extra.Pattern, err)
		}

		idx := -1
		for j := range sets {
			if sets[j].Category == extra.Category {
				idx = j
				break
			}
		}
		if idx == -1 {
			return nil, fmt.Errorf("extra rule %d: unknown category %q", i+1, extra.Category)
		}

		sets[idx].Rules = append(sets[idx].Rules, Rule{
			Pattern:    compiled,
			Message:    extra.Message,
			Suggestion: extra.Suggestion,
		})
	}

	return &Registry{sets: sets}, nil
}

// DefaultRegistry builds the built-in rule registry. Built-in patterns are
// compile-time constants, so this cannot fail.
func DefaultRegistry() *Registry {
	registry, err := NewRegistry(nil)
	if err != nil {
		panic(err)
	}
	return registry
}

// Disable returns a copy of the registry with the given categories removed.
// Used by configuration to switch off whole rule sets.
func (r *Registry) Disable(categories []models.Category) *Registry {
	if len(categories) == 0 {
		return r
	}
	disabled := make(map[models.Category]bool, len(categories))
	for _, cat := range categories {
		disabled[cat] = true
	}

	filtered := make([]RuleSet, 0, len(r.sets))
	for _, set := range r.sets {
		if !disabled[set.Category] {
			filtered = append(filtered, set)
		}
	}
	return &Registry{sets: filtered}
}
