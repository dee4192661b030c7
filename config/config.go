// Package config loads mysyslog settings from a YAML file.
//
// A file only needs the keys it changes; everything else keeps the value
// from Default. Discover looks for mysyslog/config.yaml in the XDG config
// directories and falls back to the defaults when there is none.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/mysyslog/core"
	"github.com/philipp01105/mysyslog/formatter"
	"github.com/philipp01105/mysyslog/loader"
)

// RelPath is the location of the config file below an XDG config directory.
const RelPath = "mysyslog/config.yaml"

// Loader names accepted in the loader key.
const (
	LoaderBuiltin = "builtin"
	LoaderPlugin  = "plugin"
)

// Config is the on-disk configuration.
type Config struct {
	SearchPath      SearchPath  `yaml:"search_path"`
	Loader          string      `yaml:"loader"`
	MaxMessageBytes int         `yaml:"max_message_bytes"`
	Diagnostics     Diagnostics `yaml:"diagnostics"`
}

// SearchPath lists the driver artifact directories in search order.
type SearchPath struct {
	Local  string `yaml:"local"`
	System string `yaml:"system"`
}

// Diagnostics controls the stderr diagnostics logger.
type Diagnostics struct {
	// Level is a zap level name: debug, info, warn or error
	Level    string `yaml:"level"`
	Disabled bool   `yaml:"disabled"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SearchPath: SearchPath{
			Local:  loader.DefaultLocalDir,
			System: loader.DefaultSystemDir,
		},
		Loader:          LoaderBuiltin,
		MaxMessageBytes: formatter.DefaultMaxMessageBytes,
		Diagnostics: Diagnostics{
			Level: "warn",
		},
	}
}

// Load reads the YAML file at path on top of Default and validates it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	return Parse(data)
}

// Parse decodes YAML data on top of Default and validates it. Unknown
// keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, core.Wrap(core.InvalidArgument, err, "parse config")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Discover loads mysyslog/config.yaml from the XDG config directories.
// It returns the path it loaded, or an empty path and Default if no file
// exists.
func Discover() (Config, string, error) {
	path, err := xdg.SearchConfigFile(RelPath)
	if err != nil {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	if c.SearchPath.Local == "" || c.SearchPath.System == "" {
		return core.Errorf(core.InvalidArgument, "search_path.local and search_path.system are required")
	}
	switch c.Loader {
	case LoaderBuiltin, LoaderPlugin:
	default:
		return core.Errorf(core.InvalidArgument, "unknown loader %q", c.Loader)
	}
	if c.MaxMessageBytes < 0 {
		return core.Errorf(core.InvalidArgument, "max_message_bytes must not be negative")
	}
	if _, err := c.DiagnosticsLevel(); err != nil {
		return err
	}
	return nil
}

// DiagnosticsLevel parses Diagnostics.Level.
func (c Config) DiagnosticsLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.Diagnostics.Level)
	if err != nil {
		return zapcore.InfoLevel, core.Wrapf(core.InvalidArgument, err, "diagnostics.level")
	}
	return level, nil
}
