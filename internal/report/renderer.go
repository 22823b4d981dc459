// Package report renders corpus scan results for humans and CI pipelines.
//
// Four output formats are supported: colored human-readable text, faithful
// JSON for programmatic consumption, markdown for collaboration-tool
// comments, and a standalone HTML artifact. Rendering is deterministic:
// identical reports produce byte-identical output in every format.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/harrison/skilllint/internal/models"
)

// Format selects an output renderer.
type Format string

const (
	// FormatText is the default human-readable console output.
	FormatText Format = "text"
	// FormatJSON is the structured encoding of the full CorpusReport.
	FormatJSON Format = "json"
	// FormatMarkdown is suitable for PR comments and static reports.
	FormatMarkdown Format = "markdown"
	// FormatHTML is the markdown report rendered into a standalone page.
	FormatHTML Format = "html"
)

// ParseFormat validates a user-supplied format selector. Unknown selectors
// are rejected at startup, before any file is scanned.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (valid: text, json, markdown, html)", s)
	}
}

// RenderOptions tunes renderer behavior. Options affect display only, never
// counts.
type RenderOptions struct {
	// MaxDisplay caps violations shown per file; 0 shows all.
	MaxDisplay int
	// ShowContext includes attached context lines in text output.
	ShowContext bool
	// Color enables ANSI colors in text output. Renderers for other
	// formats ignore it.
	Color bool
}

// Renderer serializes a CorpusReport to a writer.
type Renderer interface {
	Render(w io.Writer, corpus *models.CorpusReport) error
}

// NewRenderer returns the renderer for the given format.
func NewRenderer(format Format, opts RenderOptions) (Renderer, error) {
	switch format {
	case FormatText:
		return &TextRenderer{opts: opts}, nil
	case FormatJSON:
		return &JSONRenderer{}, nil
	case FormatMarkdown:
		return &MarkdownRenderer{opts: opts}, nil
	case FormatHTML:
		return &HTMLRenderer{opts: opts}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}
