// Package logger provides the console logging used across skilllint
// commands. Output is timestamped, level-filtered, and colorized when the
// destination is a terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Logger is the logging interface used by command implementations.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Log level constants for filtering
const (
	levelDebug int = 0
	levelInfo  int = 1
	levelWarn  int = 2
	levelError int = 3
)

// ConsoleLogger logs progress to a writer with [HH:MM:SS] timestamps and
// thread safety. Color output is enabled automatically when writing to a
// TTY (and suppressed under NO_COLOR via the color library).
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger writing to the provided writer.
// If writer is nil, messages are silently discarded. Valid levels are
// debug, info, warn, error (case-insensitive); empty or invalid levels
// default to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal checks whether the writer is a TTY that supports colors.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// normalizeLogLevel lowercases and validates a level name, defaulting to
// "info".
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	switch normalized {
	case "debug", "info", "warn", "error":
		return normalized
	default:
		return "info"
	}
}

func logLevelToInt(level string) int {
	switch level {
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// Debugf logs a debug-level message.
func (cl *ConsoleLogger) Debugf(format string, args ...interface{}) {
	cl.logWithLevel("DEBUG", fmt.Sprintf(format, args...))
}

// Infof logs an info-level message.
func (cl *ConsoleLogger) Infof(format string, args ...interface{}) {
	cl.logWithLevel("INFO", fmt.Sprintf(format, args...))
}

// Warnf logs a warning-level message.
func (cl *ConsoleLogger) Warnf(format string, args ...interface{}) {
	cl.logWithLevel("WARN", fmt.Sprintf(format, args...))
}

// Errorf logs an error-level message.
func (cl *ConsoleLogger) Errorf(format string, args ...interface{}) {
	cl.logWithLevel("ERROR", fmt.Sprintf(format, args...))
}

func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}
	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := time.Now().Format("15:04:05")
	formatted := fmt.Sprintf("[%s] [%s] %s\n", ts, cl.formatLevel(level), message)
	cl.writer.Write([]byte(formatted))
}

// NoOpLogger is a Logger implementation that discards all log messages.
// Useful for tests and library callers that do not want console output.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// Debugf discards the message.
func (n *NoOpLogger) Debugf(format string, args ...interface{}) {}

// Infof discards the message.
func (n *NoOpLogger) Infof(format string, args ...interface{}) {}

// Warnf discards the message.
func (n *NoOpLogger) Warnf(format string, args ...interface{}) {}

// Errorf discards the message.
func (n *NoOpLogger) Errorf(format string, args ...interface{}) {}

func (cl *ConsoleLogger) formatLevel(level string) string {
	if !cl.colorOutput {
		return level
	}
	switch level {
	case "DEBUG":
		return color.New(color.FgCyan).Sprint(level)
	case "INFO":
		return color.New(color.FgBlue).Sprint(level)
	case "WARN":
		return color.New(color.FgYellow).Sprint(level)
	case "ERROR":
		return color.New(color.FgRed).Sprint(level)
	default:
		return level
	}
}
