// Command mysyslog-json is the JSON driver artifact. Build it with
//
//	go build -buildmode=plugin -o libmysyslog-json.so ./cmd/mysyslog-json
package main

import (
	"github.com/philipp01105/mysyslog/driver"
)

var jsonDriver = driver.NewJSON(driver.Config{})

// DriverWrite appends one JSON object line for message at level to path.
func DriverWrite(message string, level int, path string) error {
	return jsonDriver.DriverWrite(message, level, path)
}

func main() {}
