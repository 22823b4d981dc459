package report

import (
	"encoding/json"
	"io"

	"github.com/harrison/skilllint/internal/models"
)

// JSONRenderer emits the full CorpusReport as indented JSON. Every field is
// encoded faithfully; consumers may persist the output as a build artifact.
type JSONRenderer struct{}

// Render writes the JSON report followed by a trailing newline.
func (r *JSONRenderer) Render(w io.Writer, corpus *models.CorpusReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(corpus)
}
