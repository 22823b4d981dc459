package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/harrison/skilllint/internal/models"
)

// MarkdownRenderer formats the report for a collaboration-tool comment or a
// static report file.
type MarkdownRenderer struct {
	opts RenderOptions
}

// Render writes the markdown report.
func (r *MarkdownRenderer) Render(w io.Writer, corpus *models.CorpusReport) error {
	fmt.Fprintf(w, "# Skill Lint Report\n\n")

	fmt.Fprintf(w, "| Metric | Value |\n")
	fmt.Fprintf(w, "|---|---|\n")
	fmt.Fprintf(w, "| Files checked | %d |\n", corpus.TotalFiles)
	fmt.Fprintf(w, "| Files flagged | %d |\n", corpus.FilesWithViolations)
	fmt.Fprintf(w, "| Errors | %d |\n", corpus.Totals.Errors)
	fmt.Fprintf(w, "| Warnings | %d |\n", corpus.Totals.Warnings)
	fmt.Fprintf(w, "| Infos | %d |\n", corpus.Totals.Infos)
	fmt.Fprintf(w, "| Paired examples | %.0f%% |\n", corpus.PairedExampleRatio*100)
	fmt.Fprintf(w, "| Anti-pattern docs | %.0f%% |\n", corpus.AntiPatternRatio*100)

	if len(corpus.Diagnostics) > 0 {
		fmt.Fprintf(w, "\n## Input Diagnostics\n\n")
		for _, diag := range corpus.Diagnostics {
			fmt.Fprintf(w, "- `%s`: %s\n", diag.Path, diag.Message)
		}
	}

	if corpus.Totals.Total() == 0 {
		fmt.Fprintf(w, "\nNo voice violations found.\n")
		return nil
	}

	for _, file := range corpus.Files {
		if file.Counts.Total() == 0 {
			continue
		}

		fmt.Fprintf(w, "\n## `%s` (%d violations)\n", file.Path, file.Counts.Total())

		shown := 0
		truncated := 0
		for _, cat := range models.AllCategories {
			violations := file.ViolationsFor(cat)
			if len(violations) == 0 {
				continue
			}
			fmt.Fprintf(w, "\n### %s\n\n", cat)
			for _, v := range violations {
				if r.opts.MaxDisplay > 0 && shown >= r.opts.MaxDisplay {
					truncated++
					continue
				}
				shown++
				r.renderViolation(w, v)
			}
		}
		if truncated > 0 {
			fmt.Fprintf(w, "\n_... and %d more violations_\n", truncated)
		}
	}

	return nil
}

func (r *MarkdownRenderer) renderViolation(w io.Writer, v models.Violation) {
	if v.DocumentLevel() {
		fmt.Fprintf(w, "- **%s**: %s", v.Severity, v.Message)
	} else {
		fmt.Fprintf(w, "- **%s** line %d: %s — `%s`", v.Severity, v.Line, v.Message, escapeBackticks(v.Text))
	}
	if v.Suggestion != "" {
		fmt.Fprintf(w, " _(suggestion: %s)_", v.Suggestion)
	}
	fmt.Fprintln(w)
}

func escapeBackticks(s string) string {
	return strings.ReplaceAll(s, "`", "'")
}
