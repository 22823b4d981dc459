package report

import (
	"bytes"
	"fmt"

	"github.com/harrison/skilllint/internal/filelock"
	"github.com/harrison/skilllint/internal/models"
)

// WriteFile renders the corpus with the given renderer and writes the
// result to path under a file lock with an atomic temp-file rename, so
// concurrent CI jobs never interleave or truncate a report artifact.
func WriteFile(path string, renderer Renderer, corpus *models.CorpusReport) error {
	var buf bytes.Buffer
	if err := renderer.Render(&buf, corpus); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if err := filelock.LockAndWrite(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}
