package logger

import (
	"github.com/philipp01105/mysyslog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel    = core.DebugLevel
	InfoLevel     = core.InfoLevel
	WarnLevel     = core.WarnLevel
	ErrorLevel    = core.ErrorLevel
	CriticalLevel = core.CriticalLevel
)

// DriverType Re-export type and constants for convenience
type DriverType = core.DriverType

const (
	DriverText = core.DriverText
	DriverJSON = core.DriverJSON
)

// Format Re-export type and constants for convenience
type Format = core.Format

const (
	FormatText = core.FormatText
	FormatJSON = core.FormatJSON
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
