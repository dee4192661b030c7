// Package logger is the public API of mysyslog. Most users only need to
// import this package.
//
// A Dispatcher turns one call into one appended log line:
//
//	err := logger.Log("this is an error", logger.ErrorLevel,
//	    logger.DriverJSON, logger.FormatJSON, "/tmp/test.log")
//
// For every call it validates the arguments, maps the driver type to an
// artifact name, resolves the artifact on the local-then-system search
// path, opens it through a loader.Loader, binds the DriverWrite entry
// point, invokes it and releases the artifact again. Nothing is cached
// between calls, so a driver dropped into the local directory is picked up
// by the very next call.
//
// Failures come back as *core.Error values whose kind can be matched with
// errors.Is, and are also reported on the diagnostics logger, which
// writes to stderr by default. Mysyslog offers the same operation with the
// classic 0 / -1 result.
//
// A Dispatcher's configuration is fixed after construction. Use DefaultConfig, the
// Builder or NewFromConfig to create one:
//
//	d := logger.NewBuilder().
//	    WithSearchPath("./drivers", "/usr/lib/mysyslog").
//	    WithLoader(loader.Plugin{}).
//	    Build()
//
// NewSlogHandler adapts a Dispatcher to log/slog and NewLogr to logr.
// Stats counts written entries and failures by kind.
package logger
