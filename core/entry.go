package core

import (
	"strings"
)

// Level represents the severity level of a log entry
type Level int

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// CriticalLevel for failures that need immediate attention
	CriticalLevel
)

var levelNames = [...]string{
	DebugLevel:    "DEBUG",
	InfoLevel:     "INFO",
	WarnLevel:     "WARN",
	ErrorLevel:    "ERROR",
	CriticalLevel: "CRITICAL",
}

// Valid reports whether l is one of the five defined levels.
func (l Level) Valid() bool {
	return l >= DebugLevel && l <= CriticalLevel
}

// String returns the string representation of the level
func (l Level) String() string {
	if !l.Valid() {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Name returns the display name of the level, or an InvalidArgument
// error when l is outside the defined range.
func (l Level) Name() (string, error) {
	if !l.Valid() {
		return "", Errorf(InvalidArgument, "invalid log level %d", int(l))
	}
	return levelNames[l], nil
}

// LevelName returns the display name for a raw level value, or
// "UNKNOWN" when the value is out of range.
func LevelName(level int) string {
	return Level(level).String()
}

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "CRITICAL", "FATAL":
		return CriticalLevel, nil
	default:
		return DebugLevel, Errorf(InvalidArgument, "unknown log level %q", s)
	}
}

// DriverType selects the output driver that handles a log call
type DriverType int

const (
	// DriverText appends plain text lines
	DriverText DriverType = iota
	// DriverJSON appends one JSON object per line
	DriverJSON
)

// String returns the string representation of the driver type
func (d DriverType) String() string {
	switch d {
	case DriverText:
		return "text"
	case DriverJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Format is the output format requested by the caller. The driver type
// alone decides the shape of the written line; any Format value is
// accepted and only reported in diagnostics.
type Format int

const (
	// FormatText requests plain text output
	FormatText Format = iota
	// FormatJSON requests JSON output
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Entry represents a single log record, built and serialized by a driver
type Entry struct {
	// Timestamp in seconds since the Unix epoch
	Timestamp int64
	Level     Level
	Process   string
	Message   string
}
