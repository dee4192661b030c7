package formatter

import (
	"math"
	"unicode/utf8"
)

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// AppendEscaped appends s to dst as the body of a JSON string (without
// surrounding quotes) and returns the extended slice.
//
// Quote and backslash are backslash-escaped, newline, carriage return and
// tab use their short forms, and every other byte below 0x20 is written
// as \u00XX. All remaining bytes are copied unchanged.
//
// If limit is non-negative, at most limit bytes are appended. Escaping
// stops before the first escape sequence or UTF-8 sequence that would
// cross the limit, so the result is never cut mid-sequence.
func AppendEscaped(dst []byte, s string, limit int) []byte {
	if limit < 0 {
		limit = math.MaxInt
	}
	n := 0     // bytes accepted so far, escapes included
	start := 0 // first byte of s not yet copied to dst
	i := 0
	for i < len(s) {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			size := 1
			if c >= utf8.RuneSelf {
				_, size = utf8.DecodeRuneInString(s[i:])
			}
			if n+size > limit {
				break
			}
			n += size
			i += size
			continue
		}

		width := escapeWidth(c)
		if n+width > limit {
			break
		}
		// Flush unescaped prefix
		if start < i {
			dst = append(dst, s[start:i]...)
		}
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexChars[c>>4], hexChars[c&0x0f])
		}
		n += width
		i++
		start = i
	}
	// Flush remaining
	return append(dst, s[start:i]...)
}

func escapeWidth(c byte) int {
	switch c {
	case '"', '\\', '\n', '\r', '\t':
		return 2
	default:
		return 6
	}
}
