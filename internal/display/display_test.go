package display

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressIndicator(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressIndicator(&buf, 2)

	p.Start()
	p.Step("/corpus/alpha/SKILL.md")
	p.Step("/corpus/beta/SKILL.md")
	p.Complete()

	out := buf.String()
	if !strings.Contains(out, "[1/2] SKILL.md") {
		t.Errorf("Expected first step in output: %q", out)
	}
	if !strings.Contains(out, "[2/2]") {
		t.Errorf("Expected second step in output: %q", out)
	}
	if !strings.Contains(out, "Scanned 2 skill documents") {
		t.Errorf("Expected completion message: %q", out)
	}
}

func TestWarningDisplay(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{
		Title:      "Unreadable file skipped",
		Message:    "permission denied",
		Files:      []string{"corpus/locked.md"},
		Suggestion: "Fix file permissions and re-run",
	}
	w.Display(&buf)

	out := buf.String()
	for _, want := range []string{"Unreadable file skipped", "permission denied", "Affected file:", "corpus/locked.md", "Suggestion:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in warning output: %q", want, out)
		}
	}
}

func TestWarningPluralFiles(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "x", Files: []string{"a.md", "b.md"}}.Display(&buf)
	if !strings.Contains(buf.String(), "Affected files:") {
		t.Errorf("Expected plural form: %q", buf.String())
	}
}

func TestDisplaySingleFile(t *testing.T) {
	var buf bytes.Buffer
	DisplaySingleFile(&buf, "skill.md")
	if !strings.Contains(buf.String(), "Scanning skill.md") {
		t.Errorf("Unexpected output: %q", buf.String())
	}
}
