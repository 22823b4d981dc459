package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/harrison/skilllint/internal/models"
)

// HTMLRenderer renders the markdown report into a standalone HTML page,
// suitable for publishing as a CI artifact.
type HTMLRenderer struct {
	opts RenderOptions
}

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Skill Lint Report</title>
<style>
body { font-family: sans-serif; max-width: 56rem; margin: 2rem auto; padding: 0 1rem; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 0.3rem 0.8rem; }
code { background: #f2f2f2; padding: 0.1rem 0.3rem; }
</style>
</head>
<body>
`

const htmlFooter = `</body>
</html>
`

// Render converts the markdown rendering to HTML via goldmark and wraps it
// in a minimal page shell.
func (r *HTMLRenderer) Render(w io.Writer, corpus *models.CorpusReport) error {
	var md bytes.Buffer
	markdown := &MarkdownRenderer{opts: r.opts}
	if err := markdown.Render(&md, corpus); err != nil {
		return fmt.Errorf("failed to build markdown source: %w", err)
	}

	var body bytes.Buffer
	converter := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := converter.Convert(md.Bytes(), &body); err != nil {
		return fmt.Errorf("failed to convert report to HTML: %w", err)
	}

	if _, err := io.WriteString(w, htmlHeader); err != nil {
		return err
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return err
	}
	_, err := io.WriteString(w, htmlFooter)
	return err
}
