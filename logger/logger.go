package logger

import (
	"go.uber.org/zap"

	"github.com/philipp01105/mysyslog/core"
	"github.com/philipp01105/mysyslog/driver"
	"github.com/philipp01105/mysyslog/formatter"
	"github.com/philipp01105/mysyslog/loader"
)

// driverArtifacts maps each driver type to the name its artifact is
// published under. A new driver type needs an entry here.
var driverArtifacts = map[core.DriverType]string{
	core.DriverText: "text",
	core.DriverJSON: "json",
}

// Config holds the dispatcher configuration
type Config struct {
	// SearchPath is where driver artifacts are looked up (default: . then /usr/lib/mysyslog)
	SearchPath loader.SearchPath
	// Loader opens resolved artifacts (default: BuiltinLoader)
	Loader loader.Loader
	// Diagnostics receives failure reports (default: warnings and errors on stderr)
	Diagnostics *zap.Logger
}

// DefaultConfig returns the configuration used by the default dispatcher.
func DefaultConfig() Config {
	cfg := Config{}
	applyDefaults(&cfg)
	return cfg
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	cfg.SearchPath = cfg.SearchPath.WithDefaults()
	if cfg.Diagnostics == nil {
		cfg.Diagnostics = stderrDiagnostics()
	}
	if cfg.Loader == nil {
		cfg.Loader = BuiltinLoader(driver.Config{Logger: cfg.Diagnostics}, formatter.Config{})
	}
}

// Dispatcher resolves, loads and invokes a driver for every log call.
// It holds no per-call state and is safe for concurrent use as long as its
// Loader is.
type Dispatcher struct {
	searchPath loader.SearchPath
	loader     loader.Loader
	diag       *zap.Logger
	stats      *Stats
}

// New creates a Dispatcher, filling unset Config fields with defaults
func New(cfg Config) *Dispatcher {
	applyDefaults(&cfg)
	return &Dispatcher{
		searchPath: cfg.SearchPath,
		loader:     cfg.Loader,
		diag:       cfg.Diagnostics,
		stats:      &Stats{},
	}
}

// Stats returns the dispatcher's call counters
func (d *Dispatcher) Stats() *Stats {
	return d.stats
}

// Log appends one entry for message at level to path using the driver
// selected by drv. format is accepted with any value and does not change
// the output; the driver alone decides the line layout.
//
// Arguments are checked before any artifact is touched: an empty message
// or path and an out-of-range level are InvalidArgument, and an unmapped
// driver type is UnknownDriver.
func (d *Dispatcher) Log(message string, level core.Level, drv core.DriverType, format core.Format, path string) error {
	if err := d.dispatch(message, level, drv, format, path); err != nil {
		d.stats.recordFailure(err)
		return err
	}
	d.stats.recordWritten()
	return nil
}

// dispatch validates the call and runs the driver.
func (d *Dispatcher) dispatch(message string, level core.Level, drv core.DriverType, format core.Format, path string) error {
	if message == "" || path == "" {
		return d.reject(core.Errorf(core.InvalidArgument, "message and path cannot be empty"))
	}
	if !level.Valid() {
		return d.reject(core.Errorf(core.InvalidArgument, "invalid log level: %d", int(level)))
	}
	name, ok := driverArtifacts[drv]
	if !ok {
		return d.reject(core.Errorf(core.UnknownDriver, "unknown driver type: %d", int(drv)))
	}

	artifactPath := d.searchPath.Resolve(loader.ArtifactFile(name))
	log := d.diag.With(zap.String("driver", name), zap.String("artifact", artifactPath))
	if format.String() != name {
		log.Debug("format selector differs from driver; driver output is used",
			zap.Stringer("format", format), zap.Int("format_value", int(format)))
	}
	return d.invoke(log, artifactPath, message, level, path)
}

// invoke runs the load, bind, call and release sequence for one artifact.
// The artifact is released on every path once it has been opened.
func (d *Dispatcher) invoke(log *zap.Logger, artifactPath, message string, level core.Level, path string) error {
	artifact, err := d.loader.Open(artifactPath)
	if err != nil {
		err = core.Wrapf(core.DriverLoadFailed, err, "error loading driver %s", artifactPath)
		log.Error("driver load failed", zap.Error(err))
		return err
	}
	defer func() {
		if err := artifact.Close(); err != nil {
			log.Warn("driver release failed", zap.Error(err))
		}
	}()

	write, err := loader.Bind(artifact)
	if err != nil {
		log.Error("driver entry point missing", zap.Error(err))
		return err
	}

	if err := write(message, int(level), path); err != nil {
		err = core.Wrapf(core.DriverWriteFailed, err, "driver %s", artifactPath)
		log.Error("driver write failed", zap.String("path", path), zap.Error(err))
		return err
	}

	log.Debug("entry written", zap.String("path", path), zap.Stringer("level", level))
	return nil
}

// reject reports an argument error on the diagnostics logger.
func (d *Dispatcher) reject(err error) error {
	d.diag.Error("log call rejected", zap.Error(err))
	return err
}

// Builder provides a fluent API for building Dispatcher instances
type Builder struct {
	cfg Config
}

// NewBuilder creates a new dispatcher builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithSearchPath sets the local and system artifact directories. Empty
// values keep the defaults.
func (b *Builder) WithSearchPath(localDir, systemDir string) *Builder {
	b.cfg.SearchPath = loader.SearchPath{LocalDir: localDir, SystemDir: systemDir}
	return b
}

// WithLoader sets the artifact loader
func (b *Builder) WithLoader(l loader.Loader) *Builder {
	b.cfg.Loader = l
	return b
}

// WithDiagnostics sets the diagnostics logger
func (b *Builder) WithDiagnostics(l *zap.Logger) *Builder {
	b.cfg.Diagnostics = l
	return b
}

// Build creates the Dispatcher instance
func (b *Builder) Build() *Dispatcher {
	return New(b.cfg)
}
