package driver

//go:generate mockgen -source=env.go -destination=mocks/mock_process.go -package=mocks ProcessNamer

import (
	"time"
)

// UnknownProcess is the process name written when none can be determined.
const UnknownProcess = "unknown"

// maxProcessName caps the process name written to a line.
const maxProcessName = 255

// ProcessNamer reports the human-readable name of the calling process.
type ProcessNamer interface {
	ProcessName() (string, error)
}

// SystemProcessNamer asks the operating system for the process name.
type SystemProcessNamer struct{}

// ProcessName returns the name of the current process.
func (SystemProcessNamer) ProcessName() (string, error) {
	return systemProcessName()
}

// StaticProcessName is a ProcessNamer that always returns itself.
type StaticProcessName string

// ProcessName returns s.
func (s StaticProcessName) ProcessName() (string, error) {
	return string(s), nil
}

// Clock returns the current wall-clock time.
type Clock func() (time.Time, error)

// SystemClock reads time.Now.
func SystemClock() (time.Time, error) {
	return time.Now(), nil
}
