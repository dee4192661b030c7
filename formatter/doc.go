// Package formatter defines how log entries are serialized into bytes.
//
// It exposes three interfaces: Formatter, which returns a []byte,
// WriterFormatter, which writes directly to an io.Writer, and
// BufferFormatter, which appends into a caller-owned bytes.Buffer.
// Drivers check for BufferFormatter at construction time and prefer it.
//
// TextFormatter writes "<unix> <LEVEL> <process> <message>" with the
// message passed through verbatim. JSONFormatter writes a flat object
// with the keys timestamp, log_level, process and message, in that order.
// Its string escaper is bounded: an escaped message never grows past
// Config.MaxMessageBytes and is cut before the first character whose
// escaped form would not fit, so the output is always valid JSON.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
