package loader

import (
	"os"
	"path/filepath"
)

const (
	// DefaultLocalDir is searched first, relative to the working directory
	DefaultLocalDir = "."
	// DefaultSystemDir holds the installed driver artifacts
	DefaultSystemDir = "/usr/lib/mysyslog"
)

// SearchPath is the two-tier artifact search order.
type SearchPath struct {
	LocalDir  string
	SystemDir string
}

// DefaultSearchPath returns the working directory then /usr/lib/mysyslog.
func DefaultSearchPath() SearchPath {
	return SearchPath{LocalDir: DefaultLocalDir, SystemDir: DefaultSystemDir}
}

// WithDefaults returns s with empty directories replaced by the defaults.
func (s SearchPath) WithDefaults() SearchPath {
	if s.LocalDir == "" {
		s.LocalDir = DefaultLocalDir
	}
	if s.SystemDir == "" {
		s.SystemDir = DefaultSystemDir
	}
	return s
}

// Resolve returns the local candidate for file if it exists, otherwise the
// system candidate. The system candidate is not checked; a missing file
// surfaces when the loader opens it.
func (s SearchPath) Resolve(file string) string {
	local := filepath.Join(s.LocalDir, file)
	if _, err := os.Stat(local); err == nil {
		return local
	}
	return filepath.Join(s.SystemDir, file)
}
