// Command mysyslog-text is the text driver artifact. Build it with
//
//	go build -buildmode=plugin -o libmysyslog-text.so ./cmd/mysyslog-text
//
// and install the result in the working directory or /usr/lib/mysyslog.
package main

import (
	"github.com/philipp01105/mysyslog/driver"
)

var text = driver.NewText(driver.Config{})

// DriverWrite appends one text line for message at level to path.
func DriverWrite(message string, level int, path string) error {
	return text.DriverWrite(message, level, path)
}

func main() {}
