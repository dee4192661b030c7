package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/philipp01105/mysyslog/core"
)

// TextFormatter formats log entries as space separated plain text
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	return render(entry, f.FormatEntry), nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	return renderTo(entry, w, f.FormatEntry)
}

// FormatEntry writes "<unix> <LEVEL> <process> <message>\n" into buf.
// The message is not escaped; embedded newlines pass through.
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), entry.Timestamp, 10))
	buf.WriteByte(' ')
	buf.WriteString(entry.Level.String())
	buf.WriteByte(' ')
	buf.WriteString(entry.Process)
	buf.WriteByte(' ')
	buf.WriteString(entry.Message)
	buf.WriteByte('\n')
}
