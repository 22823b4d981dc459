package models

// SeverityCounts holds per-severity totals.
type SeverityCounts struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Infos    int `json:"infos"`
}

// Add increments the counter for the given severity.
func (c *SeverityCounts) Add(s Severity) {
	switch s {
	case SeverityError:
		c.Errors++
	case SeverityWarning:
		c.Warnings++
	case SeverityInfo:
		c.Infos++
	}
}

// Total returns the sum across severities.
func (c SeverityCounts) Total() int {
	return c.Errors + c.Warnings + c.Infos
}

// Merge folds other into c.
func (c *SeverityCounts) Merge(other SeverityCounts) {
	c.Errors += other.Errors
	c.Warnings += other.Warnings
	c.Infos += other.Infos
}

// CategoryCount pairs a category with its violation count. Reports use a
// slice rather than a map so JSON output and iteration order stay stable.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// FileReport aggregates all violations found in a single document.
type FileReport struct {
	Path       string         `json:"path"`
	LineCount  int            `json:"lineCount"`
	Violations []Violation    `json:"violations,omitempty"`
	Counts     SeverityCounts `json:"counts"`
	ByCategory []CategoryCount `json:"byCategory,omitempty"`

	// HasPairedExamples is true when the document contains at least one
	// correct marker and at least one incorrect marker.
	HasPairedExamples bool `json:"hasPairedExamples"`
	// HasAntiPatternSection is true when a mistakes/anti-pattern heading
	// was found outside excluded contexts.
	HasAntiPatternSection bool `json:"hasAntiPatternSection"`
}

// NewFileReport builds a FileReport from a document's violations, computing
// severity totals and per-category counts in display order.
func NewFileReport(path string, lineCount int, violations []Violation, pairedExamples, antiPatternSection bool) FileReport {
	report := FileReport{
		Path:                  path,
		LineCount:             lineCount,
		Violations:            violations,
		HasPairedExamples:     pairedExamples,
		HasAntiPatternSection: antiPatternSection,
	}

	perCategory := make(map[Category]int)
	for _, v := range violations {
		report.Counts.Add(v.Severity)
		perCategory[v.Category]++
	}

	for _, cat := range AllCategories {
		if n := perCategory[cat]; n > 0 {
			report.ByCategory = append(report.ByCategory, CategoryCount{Category: cat, Count: n})
		}
	}

	return report
}

// ViolationsFor returns the file's violations in the given category,
// preserving scan order.
func (r FileReport) ViolationsFor(cat Category) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Category == cat {
			out = append(out, v)
		}
	}
	return out
}

// Diagnostic records a non-fatal input problem (unreadable file, etc.) that
// did not abort the run but must surface in the report.
type Diagnostic struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// CorpusReport aggregates every FileReport produced by one invocation plus
// grand totals and corpus-wide quality ratios. It is never persisted; the
// history store keeps only its totals.
type CorpusReport struct {
	Files       []FileReport   `json:"files"`
	Diagnostics []Diagnostic   `json:"diagnostics,omitempty"`
	TotalFiles  int            `json:"totalFiles"`
	Totals      SeverityCounts `json:"totals"`

	// FilesWithViolations counts files with at least one violation.
	FilesWithViolations int `json:"filesWithViolations"`
	// PairedExampleRatio is the fraction of files with paired examples.
	PairedExampleRatio float64 `json:"pairedExampleRatio"`
	// AntiPatternRatio is the fraction of files documenting anti-patterns.
	AntiPatternRatio float64 `json:"antiPatternRatio"`
}

// AddFile folds a FileReport into the corpus totals.
func (c *CorpusReport) AddFile(report FileReport) {
	c.Files = append(c.Files, report)
	c.TotalFiles++
	c.Totals.Merge(report.Counts)
	if report.Counts.Total() > 0 {
		c.FilesWithViolations++
	}
	c.recomputeRatios()
}

// AddDiagnostic records a per-file input error.
func (c *CorpusReport) AddDiagnostic(path, message string) {
	c.Diagnostics = append(c.Diagnostics, Diagnostic{Path: path, Message: message})
}

func (c *CorpusReport) recomputeRatios() {
	if c.TotalFiles == 0 {
		c.PairedExampleRatio = 0
		c.AntiPatternRatio = 0
		return
	}
	paired := 0
	antiPattern := 0
	for _, f := range c.Files {
		if f.HasPairedExamples {
			paired++
		}
		if f.HasAntiPatternSection {
			antiPattern++
		}
	}
	c.PairedExampleRatio = float64(paired) / float64(c.TotalFiles)
	c.AntiPatternRatio = float64(antiPattern) / float64(c.TotalFiles)
}

// HasBlocking reports whether the corpus contains violations at or above the
// given severity threshold.
func (c CorpusReport) HasBlocking(threshold Severity) bool {
	switch threshold {
	case SeverityError:
		return c.Totals.Errors > 0
	case SeverityWarning:
		return c.Totals.Errors > 0 || c.Totals.Warnings > 0
	default:
		return c.Totals.Total() > 0
	}
}
