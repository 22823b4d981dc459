package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		configured string
		message    string
		logged     bool
	}{
		{"info", "debug", false},
		{"info", "info", true},
		{"info", "warn", true},
		{"warn", "info", false},
		{"warn", "error", true},
		{"debug", "debug", true},
		{"", "info", true},      // empty defaults to info
		{"bogus", "info", true}, // invalid defaults to info
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		cl := NewConsoleLogger(&buf, tt.configured)

		switch tt.message {
		case "debug":
			cl.Debugf("message")
		case "info":
			cl.Infof("message")
		case "warn":
			cl.Warnf("message")
		case "error":
			cl.Errorf("message")
		}

		if got := buf.Len() > 0; got != tt.logged {
			t.Errorf("level=%s message=%s: logged=%v, want %v", tt.configured, tt.message, got, tt.logged)
		}
	}
}

func TestLogFormat(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")
	cl.Infof("scanned %d files", 7)

	out := buf.String()
	if !strings.Contains(out, "[INFO] scanned 7 files") {
		t.Errorf("Unexpected log format: %q", out)
	}
	if !strings.HasPrefix(out, "[") {
		t.Errorf("Expected timestamp prefix, got: %q", out)
	}
}

func TestNilWriterDiscards(t *testing.T) {
	cl := NewConsoleLogger(nil, "info")
	// Must not panic
	cl.Infof("discarded")
	cl.Errorf("also discarded")
}

// TestNoOpLogger verifies that NoOpLogger is a valid Logger implementation.
func TestNoOpLogger(t *testing.T) {
	var log Logger = NewNoOpLogger()

	// Must not panic
	log.Debugf("dropped %d", 1)
	log.Infof("dropped")
	log.Warnf("dropped")
	log.Errorf("dropped")
}

func TestConsoleLoggerImplementsLogger(t *testing.T) {
	var _ Logger = NewConsoleLogger(nil, "info")
}

func TestNoColorForBufferWriter(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")
	cl.Errorf("plain")

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("Non-TTY writer must not receive ANSI codes: %q", buf.String())
	}
}
