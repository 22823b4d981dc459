package display

import (
	"fmt"
	"io"
	"path/filepath"
)

// ProgressIndicator manages multi-step progress display with ANSI colors
type ProgressIndicator struct {
	writer     io.Writer
	totalFiles int
	current    int
}

// NewProgressIndicator creates a new progress indicator
func NewProgressIndicator(w io.Writer, total int) *ProgressIndicator {
	return &ProgressIndicator{
		writer:     w,
		totalFiles: total,
	}
}

// Start displays the header message
func (p *ProgressIndicator) Start() {
	fmt.Fprintf(p.writer, "Scanning skill documents:\n")
}

// Step displays progress for current item: [N/Total] filename (cyan)
func (p *ProgressIndicator) Step(filename string) {
	p.current++
	basename := filepath.Base(filename)
	fmt.Fprintf(p.writer, "\x1b[36m  [%d/%d] %s\x1b[0m\n", p.current, p.totalFiles, basename)
}

// Complete displays success message with green checkmark
func (p *ProgressIndicator) Complete() {
	fmt.Fprintf(p.writer, "\x1b[32m✓\x1b[0m Scanned %d skill documents\n", p.totalFiles)
}

// DisplaySingleFile shows a simple scanning message for single file input
func DisplaySingleFile(w io.Writer, filename string) {
	fmt.Fprintf(w, "Scanning %s...\n", filename)
}
