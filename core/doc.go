// Package core defines the shared types used across mysyslog.
//
// It provides the Level type for severity classification, the DriverType
// and Format selectors accepted by the dispatcher, the Entry type that
// represents a single log record, and the typed error taxonomy.
//
// An Entry has no lifetime of its own. A driver builds it on the stack,
// hands it to a formatter and drops it once the line is appended.
//
// Every failure in mysyslog is an *Error carrying a Kind. Callers match
// kinds with errors.Is, which sees through any wrapping added on the way
// up, so a driver's IOError is still visible behind the dispatcher's
// DriverWriteFailed.
package core
