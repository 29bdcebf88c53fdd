package evaluator

import (
	"fmt"
	"io"

	"github.com/lyraproj/issue/issue"
)

type (
	LogLevel string

	// Logger receives the engine's diagnostics. The engine itself only
	// emits debug traces and the issues that abort an instantiation.
	Logger interface {
		Logf(level LogLevel, format string, args ...interface{})

		LogIssue(i issue.Reported)
	}

	stdlog struct {
		out io.Writer
		err io.Writer
	}

	LogEntry struct {
		level   LogLevel
		message string
	}

	// ArrayLogger collects entries in memory. Intended for tests.
	ArrayLogger struct {
		entries []*LogEntry
	}

	noopLogger struct{}
)

const (
	DEBUG   = LogLevel(`debug`)
	INFO    = LogLevel(`info`)
	WARNING = LogLevel(`warning`)
	ERR     = LogLevel(`err`)
)

// NewStdLogger creates a logger that writes debug and info entries to out
// and everything else to err
func NewStdLogger(out, err io.Writer) Logger {
	return &stdlog{out, err}
}

func (l *stdlog) Logf(level LogLevel, format string, args ...interface{}) {
	w := l.out
	if level == WARNING || level == ERR {
		w = l.err
	}
	fmt.Fprintf(w, "%s: %s\n", level, fmt.Sprintf(format, args...))
}

func (l *stdlog) LogIssue(i issue.Reported) {
	fmt.Fprintln(l.err, i.Error())
}

func NewArrayLogger() *ArrayLogger {
	return &ArrayLogger{}
}

// Entries returns the messages logged at the given level, in order
func (l *ArrayLogger) Entries(level LogLevel) []string {
	result := make([]string, 0, 8)
	for _, entry := range l.entries {
		if entry.level == level {
			result = append(result, entry.message)
		}
	}
	return result
}

func (l *ArrayLogger) Logf(level LogLevel, format string, args ...interface{}) {
	l.entries = append(l.entries, &LogEntry{level, fmt.Sprintf(format, args...)})
}

func (l *ArrayLogger) LogIssue(i issue.Reported) {
	l.entries = append(l.entries, &LogEntry{ERR, i.Error()})
}

// NoopLogger returns the logger used when no other is configured. It
// discards everything.
func NoopLogger() Logger {
	return noopLogger{}
}

func (noopLogger) Logf(level LogLevel, format string, args ...interface{}) {
}

func (noopLogger) LogIssue(i issue.Reported) {
}
