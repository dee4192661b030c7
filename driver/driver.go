package driver

import (
	"bytes"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/philipp01105/mysyslog/core"
	"github.com/philipp01105/mysyslog/formatter"
)

// Driver defines the write contract every output driver implements
type Driver interface {
	// Write appends one formatted entry for message at level to path
	Write(message string, level core.Level, path string) error
}

// Config holds configuration for a file driver
type Config struct {
	// Formatter to use (default: chosen by the constructor)
	Formatter formatter.Formatter
	// Clock supplies the entry timestamp (default: SystemClock)
	Clock Clock
	// ProcessNamer supplies the process name (default: SystemProcessNamer)
	ProcessNamer ProcessNamer
	// Logger receives debug diagnostics (default: no-op)
	Logger *zap.Logger
}

// FileDriver formats entries with a Formatter and appends them to a file
type FileDriver struct {
	name            string
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	clock           Clock
	namer           ProcessNamer
	logger          *zap.Logger
}

// NewText creates a driver that writes plain text lines.
func NewText(cfg Config) *FileDriver {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	return New("text", cfg)
}

// NewJSON creates a driver that writes one JSON object per line.
func NewJSON(cfg Config) *FileDriver {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewJSONFormatter(formatter.Config{})
	}
	return New("json", cfg)
}

// New creates a named file driver. A nil Formatter defaults to text.
func New(name string, cfg Config) *FileDriver {
	applyDefaults(&cfg)
	d := &FileDriver{
		name:      name,
		formatter: cfg.Formatter,
		clock:     cfg.Clock,
		namer:     cfg.ProcessNamer,
		logger:    cfg.Logger.With(zap.String("driver", name)),
	}
	// Cache BufferFormatter to skip the pooled copy on every write
	d.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	return d
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock
	}
	if cfg.ProcessNamer == nil {
		cfg.ProcessNamer = SystemProcessNamer{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
}

// Name returns the driver name, e.g. "text" or "json".
func (d *FileDriver) Name() string {
	return d.name
}

// Write validates the arguments, builds an entry and appends it to path.
func (d *FileDriver) Write(message string, level core.Level, path string) error {
	if message == "" || path == "" {
		return core.Errorf(core.InvalidArgument, "%s driver: message and path cannot be empty", d.name)
	}
	if !level.Valid() {
		return core.Errorf(core.InvalidArgument, "%s driver: invalid log level %d", d.name, int(level))
	}

	now, err := d.clock()
	if err != nil {
		return core.Wrapf(core.TimeUnavailable, err, "%s driver: failed to get current time", d.name)
	}

	entry := core.Entry{
		Timestamp: now.Unix(),
		Level:     level,
		Process:   d.processName(),
		Message:   message,
	}

	line, err := d.format(&entry)
	if err != nil {
		return core.Wrapf(core.IOError, err, "%s driver: failed to format entry", d.name)
	}
	return appendLine(path, line)
}

// DriverWrite is the entry point bound by the loader. It takes the level
// as a plain integer so plugin builds share no types with the caller.
func (d *FileDriver) DriverWrite(message string, level int, path string) error {
	return d.Write(message, core.Level(level), path)
}

func (d *FileDriver) format(entry *core.Entry) ([]byte, error) {
	if d.bufferFormatter != nil {
		var buf bytes.Buffer
		d.bufferFormatter.FormatEntry(entry, &buf)
		return buf.Bytes(), nil
	}
	return d.formatter.Format(entry)
}

// processName never fails; any problem yields UnknownProcess.
func (d *FileDriver) processName() string {
	name, err := d.namer.ProcessName()
	if err != nil {
		d.logger.Debug("process name unavailable", zap.Error(err))
		return UnknownProcess
	}
	if name == "" {
		return UnknownProcess
	}
	if len(name) > maxProcessName {
		// Cut on a rune boundary so the name stays valid UTF-8
		n := maxProcessName
		for n > 0 && !utf8.RuneStart(name[n]) {
			n--
		}
		name = name[:n]
	}
	return name
}
