package logger

import (
	"context"
	"log/slog"
	"strings"

	"github.com/philipp01105/mysyslog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Dispatcher. Every record becomes one Dispatcher.Log call against a fixed
// driver and path. Attributes are appended to the message as key=value
// pairs; the record time is not used because drivers stamp entries
// themselves.
type SlogHandler struct {
	dispatcher *Dispatcher
	driver     core.DriverType
	path       string
	level      core.Level
	attrs      string
	group      string
}

// NewSlogHandler creates a new slog.Handler adapter writing to path
// through the given driver. Records below level are dropped.
func NewSlogHandler(d *Dispatcher, drv core.DriverType, path string, level core.Level) *SlogHandler {
	return &SlogHandler{
		dispatcher: d,
		driver:     drv,
		path:       path,
		level:      level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= s.level
}

// Handle renders the record into a message and dispatches it.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, s.group, a)
		return true
	})

	message := strings.TrimPrefix(b.String(), " ")
	return s.dispatcher.Log(message, slogLevelToCore(record.Level), s.driver, formatFor(s.driver), s.path)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	var b strings.Builder
	b.WriteString(s.attrs)
	for _, a := range attrs {
		appendAttr(&b, s.group, a)
	}
	clone := *s
	clone.attrs = b.String()
	return &clone
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	clone := *s
	if s.group != "" {
		clone.group = s.group + "." + name
	} else {
		clone.group = name
	}
	return &clone
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError+4:
		return core.CriticalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// formatFor returns the format matching a driver type.
func formatFor(drv core.DriverType) core.Format {
	if drv == core.DriverJSON {
		return core.FormatJSON
	}
	return core.FormatText
}

// appendAttr writes " key=value" for a, prefixing the key with group.
// Group values are flattened recursively.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}
