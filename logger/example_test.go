package logger_test

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/philipp01105/mysyslog/driver"
	"github.com/philipp01105/mysyslog/formatter"
	"github.com/philipp01105/mysyslog/logger"
)

// Use the package-level default dispatcher with the integer convention.
func Example() {
	dir, _ := os.MkdirTemp("", "mysyslog")
	defer os.RemoveAll(dir)

	rc := logger.Mysyslog("this is an error", 3, 1, 1, filepath.Join(dir, "app.log"))
	fmt.Println(rc)
	// Output: 0
}

// Create a Dispatcher with a fixed clock and process name.
func ExampleNewBuilder() {
	dir, _ := os.MkdirTemp("", "mysyslog")
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "app.log")

	drv := driver.Config{
		Clock:        func() (time.Time, error) { return time.Unix(1439482969, 0), nil },
		ProcessNamer: driver.StaticProcessName("example"),
	}
	d := logger.NewBuilder().
		WithSearchPath(dir, dir).
		WithLoader(logger.BuiltinLoader(drv, formatter.Config{})).
		WithDiagnostics(zap.NewNop()).
		Build()

	_ = d.Log("service started", logger.InfoLevel, logger.DriverText, logger.FormatText, path)
	_ = d.Log("disk \"/var\" full", logger.CriticalLevel, logger.DriverJSON, logger.FormatJSON, path)

	data, _ := os.ReadFile(path)
	fmt.Print(string(data))
	// Output:
	// 1439482969 INFO example service started
	// {"timestamp":1439482969,"log_level":"CRITICAL","process":"example","message":"disk \"/var\" full"}
}

// Route log/slog records through a driver.
func ExampleNewSlogHandler() {
	dir, _ := os.MkdirTemp("", "mysyslog")
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "app.log")

	drv := driver.Config{
		Clock:        func() (time.Time, error) { return time.Unix(1439482969, 0), nil },
		ProcessNamer: driver.StaticProcessName("example"),
	}
	d := logger.New(logger.Config{
		Loader:      logger.BuiltinLoader(drv, formatter.Config{}),
		Diagnostics: zap.NewNop(),
	})

	log := slog.New(logger.NewSlogHandler(d, logger.DriverText, path, logger.InfoLevel))
	log.Debug("dropped")
	log.Warn("cache miss", "key", "user:42")

	data, _ := os.ReadFile(path)
	fmt.Print(string(data))
	// Output: 1439482969 WARN example cache miss key=user:42
}
