package logger

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"

	"github.com/philipp01105/mysyslog/core"
)

// NewLogr returns a logr.Logger whose entries are written through d with
// the given driver and path. V(0) maps to INFO and every higher verbosity
// to DEBUG.
func NewLogr(d *Dispatcher, drv core.DriverType, path string) logr.Logger {
	return logr.New(&logrSink{dispatcher: d, driver: drv, path: path})
}

// DiagnosticsLogr returns the diagnostics logger of d as a logr.Logger
func (d *Dispatcher) DiagnosticsLogr() logr.Logger {
	return zapr.NewLogger(d.diag)
}

type logrSink struct {
	dispatcher *Dispatcher
	driver     core.DriverType
	path       string
	name       string
	values     string
}

func (s *logrSink) Init(logr.RuntimeInfo) {}

func (s *logrSink) Enabled(int) bool {
	return true
}

func (s *logrSink) Info(level int, msg string, keysAndValues ...any) {
	lvl := core.InfoLevel
	if level > 0 {
		lvl = core.DebugLevel
	}
	s.write(lvl, msg, keysAndValues)
}

func (s *logrSink) Error(err error, msg string, keysAndValues ...any) {
	if err != nil {
		keysAndValues = append([]any{"error", err.Error()}, keysAndValues...)
	}
	s.write(core.ErrorLevel, msg, keysAndValues)
}

func (s *logrSink) WithValues(keysAndValues ...any) logr.LogSink {
	clone := *s
	clone.values = s.values + renderKV(keysAndValues)
	return &clone
}

func (s *logrSink) WithName(name string) logr.LogSink {
	clone := *s
	if s.name != "" {
		clone.name = s.name + "/" + name
	} else {
		clone.name = name
	}
	return &clone
}

// write dispatches one entry. Failures are already reported on the
// dispatcher's diagnostics logger and logr has no way to return them.
func (s *logrSink) write(level core.Level, msg string, keysAndValues []any) {
	var b strings.Builder
	if s.name != "" {
		b.WriteString(s.name)
		b.WriteString(": ")
	}
	b.WriteString(msg)
	b.WriteString(s.values)
	b.WriteString(renderKV(keysAndValues))

	_ = s.dispatcher.Log(b.String(), level, s.driver, formatFor(s.driver), s.path)
}

// renderKV formats pairs as " key=value". A dangling key gets the value
// (MISSING).
func renderKV(keysAndValues []any) string {
	var b strings.Builder
	for i := 0; i < len(keysAndValues); i += 2 {
		b.WriteByte(' ')
		fmt.Fprint(&b, keysAndValues[i])
		b.WriteByte('=')
		if i+1 < len(keysAndValues) {
			fmt.Fprint(&b, keysAndValues[i+1])
		} else {
			b.WriteString("(MISSING)")
		}
	}
	return b.String()
}
