package logger

import (
	"sync"

	"go.uber.org/zap"

	"github.com/philipp01105/mysyslog/config"
	"github.com/philipp01105/mysyslog/core"
	"github.com/philipp01105/mysyslog/driver"
	"github.com/philipp01105/mysyslog/formatter"
	"github.com/philipp01105/mysyslog/loader"
)

var (
	defaultDispatcher *Dispatcher
	defaultMu         sync.RWMutex
)

func init() {
	defaultDispatcher = New(DefaultConfig())
}

// Default returns the default dispatcher
func Default() *Dispatcher {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultDispatcher
}

// SetDefault sets the default dispatcher
func SetDefault(d *Dispatcher) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultDispatcher = d
}

// Log logs a message using the default dispatcher
func Log(message string, level Level, drv DriverType, format Format, path string) error {
	return Default().Log(message, level, drv, format, path)
}

// Mysyslog logs a message using the default dispatcher and returns 0 on
// success or -1 on any failure. The reason for a failure is reported on
// the diagnostics logger.
func Mysyslog(message string, level, drv, format int, path string) int {
	if err := Log(message, core.Level(level), core.DriverType(drv), core.Format(format), path); err != nil {
		return -1
	}
	return 0
}

// NewDiscovered creates a Dispatcher from mysyslog/config.yaml in the XDG
// config directories, or from the defaults when there is none. It also
// returns the path of the file it used.
func NewDiscovered() (*Dispatcher, string, error) {
	c, path, err := config.Discover()
	if err != nil {
		return nil, path, err
	}
	d, err := NewFromConfig(c)
	if err != nil {
		return nil, path, err
	}
	return d, path, nil
}

// NewFromConfig creates a Dispatcher from a parsed configuration file.
func NewFromConfig(c config.Config) (*Dispatcher, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	diag := zap.NewNop()
	if !c.Diagnostics.Disabled {
		level, err := c.DiagnosticsLevel()
		if err != nil {
			return nil, err
		}
		diag = NewDiagnostics(stderrSyncer(), level)
	}

	var l loader.Loader
	switch c.Loader {
	case config.LoaderPlugin:
		l = loader.Plugin{}
	default:
		l = BuiltinLoader(driver.Config{Logger: diag}, formatter.Config{MaxMessageBytes: c.MaxMessageBytes})
	}

	return New(Config{
		SearchPath: loader.SearchPath{
			LocalDir:  c.SearchPath.Local,
			SystemDir: c.SearchPath.System,
		},
		Loader:      l,
		Diagnostics: diag,
	}), nil
}
