package driver

import (
	"os"

	"go.uber.org/multierr"

	"github.com/philipp01105/mysyslog/core"
)

// appendLine opens path for appending, writes line and closes the file.
// The file is closed on every path; a close failure is reported even if
// the write succeeded.
func appendLine(path string, line []byte) (err error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return core.Wrapf(core.IOError, err, "cannot open log file %s", path)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = multierr.Append(err, core.Wrapf(core.IOError, closeErr, "failed to close log file %s", path))
		}
	}()

	if _, err := file.Write(line); err != nil {
		return core.Wrapf(core.IOError, err, "failed to write log file %s", path)
	}
	return nil
}
