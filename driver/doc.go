// Package driver implements the output drivers that turn one log call
// into one appended line.
//
// A driver validates its input, reads the clock, asks a ProcessNamer for
// the name of the calling process, formats a core.Entry and appends it to
// the target file. The file is opened with O_APPEND for every call and
// closed before Write returns, on success and on failure alike. Nothing
// is buffered, rotated or retried, and no directories are created.
//
// Two drivers ship with the package. NewText writes
//
//	1439482969 ERROR example-app this is an error
//
// and NewJSON writes
//
//	{"timestamp":1439482969,"log_level":"ERROR","process":"example-app","message":"this is an error"}
//
// FileDriver.DriverWrite exposes a driver through the integer-level calling
// convention that the loader binds by name, so the same code serves both
// the builtin drivers and the plugin builds under cmd/.
package driver
