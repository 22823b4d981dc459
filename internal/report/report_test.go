package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/skilllint/internal/models"
)

func sampleCorpus() *models.CorpusReport {
	corpus := &models.CorpusReport{}
	corpus.AddFile(models.NewFileReport("skills/a.md", 40, []models.Violation{
		{
			File:       "skills/a.md",
			Line:       3,
			Category:   models.CategorySecondPerson,
			Severity:   models.SeverityError,
			Matched:    "you should",
			Text:       "You should run the tests.",
			Message:    "Second-person voice (\"you should\")",
			Suggestion: "Use / Apply / Implement",
		},
		{
			File:     "skills/a.md",
			Line:     8,
			Category: models.CategoryPassiveVoice,
			Severity: models.SeverityWarning,
			Matched:  "is validated",
			Text:     "Data is validated by the service.",
			Message:  "Passive voice",
		},
	}, true, false))
	corpus.AddFile(models.NewFileReport("skills/b.md", 10, nil, true, true))
	return corpus
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"text", FormatText, false},
		{"", FormatText, false},
		{"json", FormatJSON, false},
		{"markdown", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{"HTML", FormatHTML, false},
		{"xml", "", true},
		{"sarif", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, got)
	}
}

func TestTextRendererSummaryFirst(t *testing.T) {
	var buf bytes.Buffer
	renderer := &TextRenderer{opts: RenderOptions{}}
	require.NoError(t, renderer.Render(&buf, sampleCorpus()))

	out := buf.String()
	summaryIdx := strings.Index(out, "=== Skill Lint Summary ===")
	detailIdx := strings.Index(out, "skills/a.md")
	require.GreaterOrEqual(t, summaryIdx, 0)
	require.Greater(t, detailIdx, summaryIdx, "summary block must lead the output")

	assert.Contains(t, out, "Errors:           1")
	assert.Contains(t, out, "Warnings:         1")
	assert.Contains(t, out, "Line 3: You should run the tests.")
	assert.Contains(t, out, "Suggestion: Use / Apply / Implement")
	// Zero-violation files are omitted from detail
	assert.NotContains(t, out, "skills/b.md")
}

func TestTextRendererCleanCorpus(t *testing.T) {
	corpus := &models.CorpusReport{}
	corpus.AddFile(models.NewFileReport("skills/clean.md", 5, nil, true, true))

	var buf bytes.Buffer
	renderer := &TextRenderer{opts: RenderOptions{}}
	require.NoError(t, renderer.Render(&buf, corpus))

	assert.Contains(t, buf.String(), "No voice violations found")
}

func TestTextRendererDisplayCap(t *testing.T) {
	violations := make([]models.Violation, 0, 15)
	for i := 1; i <= 15; i++ {
		violations = append(violations, models.Violation{
			File:     "skills/big.md",
			Line:     i,
			Category: models.CategorySecondPerson,
			Severity: models.SeverityError,
			Matched:  "you should",
			Text:     "You should stop.",
			Message:  "Second-person voice",
		})
	}
	corpus := &models.CorpusReport{}
	corpus.AddFile(models.NewFileReport("skills/big.md", 20, violations, false, false))

	var buf bytes.Buffer
	renderer := &TextRenderer{opts: RenderOptions{MaxDisplay: 10}}
	require.NoError(t, renderer.Render(&buf, corpus))

	out := buf.String()
	assert.Contains(t, out, "... and 5 more violations")
	// The cap affects display only, never counts
	assert.Contains(t, out, "Errors:           15")
}

func TestTextRendererDeterministic(t *testing.T) {
	corpus := sampleCorpus()
	renderer := &TextRenderer{opts: RenderOptions{}}

	var first, second bytes.Buffer
	require.NoError(t, renderer.Render(&first, corpus))
	require.NoError(t, renderer.Render(&second, corpus))
	assert.Equal(t, first.String(), second.String(), "identical reports must render byte-identically")
}

func TestJSONRendererFaithful(t *testing.T) {
	var buf bytes.Buffer
	renderer := &JSONRenderer{}
	require.NoError(t, renderer.Render(&buf, sampleCorpus()))

	var decoded models.CorpusReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, 2, decoded.TotalFiles)
	assert.Equal(t, 1, decoded.Totals.Errors)
	assert.Equal(t, 1, decoded.Totals.Warnings)
	require.Len(t, decoded.Files, 2)
	assert.True(t, decoded.Files[0].HasPairedExamples)
	assert.True(t, decoded.Files[1].HasAntiPatternSection)
	require.Len(t, decoded.Files[0].Violations, 2)
	assert.Equal(t, "you should", decoded.Files[0].Violations[0].Matched)

	// Severities encode as names, not integers
	assert.Contains(t, buf.String(), `"severity": "ERROR"`)
}

func TestMarkdownRenderer(t *testing.T) {
	var buf bytes.Buffer
	renderer := &MarkdownRenderer{opts: RenderOptions{}}
	require.NoError(t, renderer.Render(&buf, sampleCorpus()))

	out := buf.String()
	assert.Contains(t, out, "# Skill Lint Report")
	assert.Contains(t, out, "| Errors | 1 |")
	assert.Contains(t, out, "## `skills/a.md` (2 violations)")
	assert.Contains(t, out, "### second-person")
	assert.NotContains(t, out, "skills/b.md")
}

func TestHTMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	renderer := &HTMLRenderer{opts: RenderOptions{}}
	require.NoError(t, renderer.Render(&buf, sampleCorpus()))

	out := buf.String()
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "Skill Lint Report")
	assert.Contains(t, out, "</html>")
}

func TestDiagnosticsRendered(t *testing.T) {
	corpus := sampleCorpus()
	corpus.AddDiagnostic("skills/missing.md", "no such file or directory")

	var text, md bytes.Buffer
	require.NoError(t, (&TextRenderer{}).Render(&text, corpus))
	require.NoError(t, (&MarkdownRenderer{}).Render(&md, corpus))

	assert.Contains(t, text.String(), "skills/missing.md")
	assert.Contains(t, md.String(), "Input Diagnostics")
}

func TestExitPolicy(t *testing.T) {
	withErrors := &models.CorpusReport{Totals: models.SeverityCounts{Errors: 2, Warnings: 1}}
	warningsOnly := &models.CorpusReport{Totals: models.SeverityCounts{Warnings: 4}}
	clean := &models.CorpusReport{}

	tests := []struct {
		name     string
		policy   ExitPolicy
		corpus   *models.CorpusReport
		expected int
	}{
		{"non-strict always passes", ExitPolicy{Strict: false, FailOn: models.SeverityError}, withErrors, 0},
		{"strict blocks on errors", ExitPolicy{Strict: true, FailOn: models.SeverityError}, withErrors, 1},
		{"strict error-only passes warnings", ExitPolicy{Strict: true, FailOn: models.SeverityError}, warningsOnly, 0},
		{"strict warning policy blocks warnings", ExitPolicy{Strict: true, FailOn: models.SeverityWarning}, warningsOnly, 1},
		{"strict clean passes", ExitPolicy{Strict: true, FailOn: models.SeverityWarning}, clean, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.policy.ExitCode(tt.corpus))
		})
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.md")

	require.NoError(t, WriteFile(path, &MarkdownRenderer{}, sampleCorpus()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Skill Lint Report")
}
