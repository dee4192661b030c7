package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a failure. A Kind is itself an error so it can be used
// as the target of errors.Is.
type Kind uint8

const (
	// InvalidArgument means an empty message or path, or an out-of-range level
	InvalidArgument Kind = iota + 1
	// UnknownDriver means the driver selector has no artifact
	UnknownDriver
	// DriverLoadFailed means the driver artifact could not be found or mapped
	DriverLoadFailed
	// DriverEntryPointMissing means the artifact has no usable entry point
	DriverEntryPointMissing
	// DriverWriteFailed means the driver reported a failure
	DriverWriteFailed
	// IOError means opening, writing or closing the log file failed
	IOError
	// TimeUnavailable means the clock could not be read
	TimeUnavailable
)

var kindNames = map[Kind]string{
	InvalidArgument:         "invalid argument",
	UnknownDriver:           "unknown driver",
	DriverLoadFailed:        "driver load failed",
	DriverEntryPointMissing: "driver entry point missing",
	DriverWriteFailed:       "driver write failed",
	IOError:                 "i/o error",
	TimeUnavailable:         "time unavailable",
}

// Error implements the error interface.
func (k Kind) Error() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Error is a failure of a given Kind with its underlying cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the Kind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// Errorf returns an Error of the given kind with a formatted message.
func Errorf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Err: errors.Errorf(format, args...)}
}

// Wrap returns an Error of the given kind wrapping err with a message.
// Wrap returns nil if err is nil.
func Wrap(kind Kind, err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: errors.Wrap(err, message)}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(kind Kind, err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: errors.Wrapf(err, format, args...)}
}

// KindOf returns the kind of the outermost *Error in err's chain, or zero
// if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
