package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/philipp01105/mysyslog/config"
	"github.com/philipp01105/mysyslog/core"
	"github.com/philipp01105/mysyslog/loader"
	"github.com/philipp01105/mysyslog/logger"
)

// useDefault swaps the default dispatcher for the duration of a test.
func useDefault(t *testing.T, d *logger.Dispatcher) {
	t.Helper()
	prev := logger.Default()
	logger.SetDefault(d)
	t.Cleanup(func() { logger.SetDefault(prev) })
}

func TestDefault_IsInitialised(t *testing.T) {
	assert.NotNil(t, logger.Default())
}

func TestSetDefault(t *testing.T) {
	d := logger.NewBuilder().WithDiagnostics(zap.NewNop()).Build()
	useDefault(t, d)

	assert.Same(t, d, logger.Default())
}

func TestMysyslog(t *testing.T) {
	useDefault(t, logger.New(logger.Config{
		SearchPath:  loader.SearchPath{LocalDir: t.TempDir(), SystemDir: t.TempDir()},
		Diagnostics: zap.NewNop(),
	}))
	dir := t.TempDir()
	path := filepath.Join(dir, "test.log")

	tests := []struct {
		name    string
		message string
		level   int
		driver  int
		format  int
		path    string
		want    int
	}{
		{"text entry", "this is an error", 3, 0, 0, path, 0},
		{"json entry", "this is an error", 3, 1, 1, path, 0},
		{"empty message", "", 3, 0, 0, path, -1},
		{"empty path", "msg", 3, 0, 0, "", -1},
		{"bad level", "msg", 7, 0, 0, path, -1},
		{"unknown driver", "msg", 1, 2, 0, path, -1},
		{"unknown format", "this is an error", 3, 1, 2, path, 0},
		{"missing directory", "msg", 1, 1, 1, filepath.Join(dir, "nope", "x.log"), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.Mysyslog(tt.message, tt.level, tt.driver, tt.format, tt.path))
		})
	}

	lines := readLines(t, path)
	require.Len(t, lines, 3)
	assert.Regexp(t, textLine, lines[0])
	assert.Regexp(t, jsonLine, lines[1])
	assert.Regexp(t, jsonLine, lines[2])
}

func TestLog_UsesDefault(t *testing.T) {
	useDefault(t, logger.New(logger.Config{
		SearchPath:  loader.SearchPath{LocalDir: t.TempDir(), SystemDir: t.TempDir()},
		Diagnostics: zap.NewNop(),
	}))
	path := filepath.Join(t.TempDir(), "test.log")

	require.NoError(t, logger.Log("this is an error", logger.ErrorLevel, logger.DriverText, logger.FormatText, path))
	assert.Regexp(t, textLine, readLines(t, path)[0])
}

func TestNewFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	c := config.Default()
	c.SearchPath.Local = t.TempDir()
	c.SearchPath.System = t.TempDir()
	c.MaxMessageBytes = 8
	c.Diagnostics.Disabled = true

	d, err := logger.NewFromConfig(c)
	require.NoError(t, err)
	require.NoError(t, d.Log("this message is long", logger.InfoLevel, logger.DriverJSON, logger.FormatJSON, path))

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Regexp(t, `"message":"this mes"\}$`, lines[0])
}

func TestNewFromConfig_PluginLoader(t *testing.T) {
	c := config.Default()
	c.Loader = config.LoaderPlugin
	c.SearchPath.Local = t.TempDir()
	c.SearchPath.System = t.TempDir()
	c.Diagnostics.Disabled = true

	d, err := logger.NewFromConfig(c)
	require.NoError(t, err)

	err = d.Log("msg", logger.InfoLevel, logger.DriverText, logger.FormatText, filepath.Join(t.TempDir(), "x.log"))
	assert.ErrorIs(t, err, core.DriverLoadFailed)
}

func TestNewFromConfig_Invalid(t *testing.T) {
	c := config.Default()
	c.Loader = "dlopen"

	_, err := logger.NewFromConfig(c)
	assert.ErrorIs(t, err, core.InvalidArgument)
}

func TestNewFromConfig_LoadedFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("loader: builtin\ndiagnostics:\n  level: error\n"), 0644))

	c, err := config.Load(file)
	require.NoError(t, err)

	d, err := logger.NewFromConfig(c)
	require.NoError(t, err)
	assert.NotNil(t, d)
}

func TestNewDiscovered(t *testing.T) { //nolint:paralleltest // Modifies XDG environment
	dir := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "none"))
	xdg.Reload()

	d, path, err := logger.NewDiscovered()
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, d)

	file := filepath.Join(dir, config.RelPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0755))
	require.NoError(t, os.WriteFile(file, []byte("loader: nope\n"), 0644))

	_, path, err = logger.NewDiscovered()
	assert.Equal(t, file, path)
	assert.ErrorIs(t, err, core.InvalidArgument)
}
