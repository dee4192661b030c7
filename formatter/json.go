package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/philipp01105/mysyslog/core"
)

// JSONFormatter formats log entries as single-line JSON objects
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.MaxMessageBytes <= 0 {
		cfg.MaxMessageBytes = DefaultMaxMessageBytes
	}
	return &JSONFormatter{Config: cfg}
}

// Format formats an entry as JSON
func (f *JSONFormatter) Format(entry *core.Entry) ([]byte, error) {
	return render(entry, f.FormatEntry), nil
}

// FormatTo formats an entry as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	return renderTo(entry, w, f.FormatEntry)
}

// FormatEntry formats an entry as JSON into the given buffer (implements BufferFormatter).
func (f *JSONFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	buf.WriteString(`{"timestamp":`)
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), entry.Timestamp, 10))

	buf.WriteString(`,"log_level":"`)
	buf.WriteString(entry.Level.String())

	buf.WriteString(`","process":"`)
	buf.Write(AppendEscaped(buf.AvailableBuffer(), entry.Process, -1))

	buf.WriteString(`","message":"`)
	buf.Write(AppendEscaped(buf.AvailableBuffer(), entry.Message, f.MaxMessageBytes))

	buf.WriteString("\"}\n")
}
