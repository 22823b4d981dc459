package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/harrison/skilllint/internal/models"
)

// TextRenderer produces the default console output. The summary block leads
// so headline numbers survive log truncation; per-file detail follows,
// grouped by category, with zero-violation files omitted from detail but
// still counted in the totals.
type TextRenderer struct {
	opts RenderOptions
}

// Render writes the text report.
func (r *TextRenderer) Render(w io.Writer, corpus *models.CorpusReport) error {
	bold := r.sprintFunc(color.Bold)
	red := r.sprintFunc(color.FgRed)
	yellow := r.sprintFunc(color.FgYellow)
	cyan := r.sprintFunc(color.FgCyan)
	green := r.sprintFunc(color.FgGreen)

	fmt.Fprintf(w, "%s\n", bold("=== Skill Lint Summary ==="))
	fmt.Fprintf(w, "Files checked:    %d\n", corpus.TotalFiles)
	fmt.Fprintf(w, "Files flagged:    %d\n", corpus.FilesWithViolations)
	fmt.Fprintf(w, "Errors:           %s\n", red(fmt.Sprintf("%d", corpus.Totals.Errors)))
	fmt.Fprintf(w, "Warnings:         %s\n", yellow(fmt.Sprintf("%d", corpus.Totals.Warnings)))
	fmt.Fprintf(w, "Infos:            %s\n", cyan(fmt.Sprintf("%d", corpus.Totals.Infos)))
	fmt.Fprintf(w, "Paired examples:  %.0f%%\n", corpus.PairedExampleRatio*100)
	fmt.Fprintf(w, "Anti-pattern docs: %.0f%%\n", corpus.AntiPatternRatio*100)

	for _, diag := range corpus.Diagnostics {
		fmt.Fprintf(w, "%s %s: %s\n", red("✗"), diag.Path, diag.Message)
	}

	if corpus.Totals.Total() == 0 {
		fmt.Fprintf(w, "\n%s No voice violations found. All skills use imperative voice correctly.\n", green("✓"))
		return nil
	}

	for _, file := range corpus.Files {
		if file.Counts.Total() == 0 {
			continue
		}

		fmt.Fprintf(w, "\n%s (%d violations)\n", bold(file.Path), file.Counts.Total())
		fmt.Fprintf(w, "%s\n", strings.Repeat("-", 72))

		shown := 0
		truncated := 0
		for _, cat := range models.AllCategories {
			violations := file.ViolationsFor(cat)
			if len(violations) == 0 {
				continue
			}
			fmt.Fprintf(w, "  [%s]\n", cat)
			for _, v := range violations {
				if r.opts.MaxDisplay > 0 && shown >= r.opts.MaxDisplay {
					truncated++
					continue
				}
				shown++
				r.renderViolation(w, v, red, yellow, cyan)
			}
		}
		if truncated > 0 {
			fmt.Fprintf(w, "  ... and %d more violations\n", truncated)
		}
	}

	r.renderPhraseSummary(w, corpus, bold)
	return nil
}

func (r *TextRenderer) renderViolation(w io.Writer, v models.Violation, red, yellow, cyan func(...interface{}) string) {
	sev := v.Severity.String()
	switch v.Severity {
	case models.SeverityError:
		sev = red(sev)
	case models.SeverityWarning:
		sev = yellow(sev)
	case models.SeverityInfo:
		sev = cyan(sev)
	}

	if v.DocumentLevel() {
		fmt.Fprintf(w, "    %s: %s\n", sev, v.Message)
	} else {
		fmt.Fprintf(w, "    Line %d: %s\n", v.Line, v.Text)
		fmt.Fprintf(w, "    %s: %s", sev, v.Message)
		if v.Matched != "" {
			fmt.Fprintf(w, " (matched %q)", v.Matched)
		}
		fmt.Fprintln(w)
	}
	if v.Suggestion != "" {
		fmt.Fprintf(w, "    Suggestion: %s\n", v.Suggestion)
	}
	if r.opts.ShowContext {
		for _, line := range v.Context {
			fmt.Fprintf(w, "      %s\n", line)
		}
	}
	fmt.Fprintln(w)
}

// renderPhraseSummary prints matched phrases by frequency, descending, with
// ties broken alphabetically so output stays deterministic.
func (r *TextRenderer) renderPhraseSummary(w io.Writer, corpus *models.CorpusReport, bold func(...interface{}) string) {
	counts := make(map[string]int)
	for _, file := range corpus.Files {
		for _, v := range file.Violations {
			if v.Matched != "" && !v.DocumentLevel() {
				counts[strings.ToLower(v.Matched)]++
			}
		}
	}
	if len(counts) == 0 {
		return
	}

	phrases := make([]string, 0, len(counts))
	for phrase := range counts {
		phrases = append(phrases, phrase)
	}
	sort.Slice(phrases, func(i, j int) bool {
		if counts[phrases[i]] != counts[phrases[j]] {
			return counts[phrases[i]] > counts[phrases[j]]
		}
		return phrases[i] < phrases[j]
	})

	fmt.Fprintf(w, "\n%s\n", bold("=== Summary by Matched Phrase ==="))
	for _, phrase := range phrases {
		fmt.Fprintf(w, "  %3dx  %q\n", counts[phrase], phrase)
	}
	fmt.Fprintf(w, "\nTotal: %d violations in %d files\n", corpus.Totals.Total(), corpus.FilesWithViolations)
}

// sprintFunc returns a coloring function, or a passthrough when color is
// disabled so piped output stays byte-stable.
func (r *TextRenderer) sprintFunc(attr color.Attribute) func(...interface{}) string {
	if !r.opts.Color {
		return fmt.Sprint
	}
	return color.New(attr).Sprint
}
