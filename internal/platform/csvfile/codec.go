// Package csvfile implements the CSV wire format used by every entity file:
// comma-separated fields, double-quote quoting with doubled-quote escapes,
// and a mandatory header row.
package csvfile

import (
	"strings"
)

// Codec decodes and encodes CSV text. It is safe for concurrent use because
// it holds only immutable configuration.
type Codec struct {
	// PreserveQuotedSpace keeps leading/trailing whitespace inside quoted
	// fields. When false (the default), every field is trimmed after
	// extraction, quoted or not, matching the legacy file format.
	PreserveQuotedSpace bool
}

// Decode parses CSV text into rows of fields. The first row is treated as a
// header and skipped. Empty input yields no rows.
func (c Codec) Decode(text string) [][]string {
	rows := c.DecodeAll(text)
	if len(rows) == 0 {
		return nil
	}
	return rows[1:]
}

// DecodeAll parses CSV text into rows of fields, header included.
func (c Codec) DecodeAll(text string) [][]string {
	if text == "" {
		return nil
	}

	var (
		rows     [][]string
		fields   []string
		current  strings.Builder
		quoted   bool // current field was ever inside quotes
		inQuotes bool
	)

	endField := func() {
		val := current.String()
		if !quoted || !c.PreserveQuotedSpace {
			val = strings.TrimSpace(val)
		}
		fields = append(fields, val)
		current.Reset()
		quoted = false
	}
	endRow := func() {
		endField()
		rows = append(rows, fields)
		fields = nil
	}

	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				// Escaped literal quote
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
				quoted = true
			}
		case ch == ',' && !inQuotes:
			endField()
		case (ch == '\n' || ch == '\r') && !inQuotes:
			if ch == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			endRow()
		default:
			current.WriteByte(ch)
		}
	}

	// Trailing content without a final newline still forms a row.
	if current.Len() > 0 || len(fields) > 0 || quoted {
		endRow()
	}

	return rows
}

// EncodeRow formats a single row as one CSV line without a trailing newline.
func EncodeRow(fields []string) string {
	var sb strings.Builder
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(Escape(f))
	}
	return sb.String()
}

// Encode formats a header row and data rows as CSV text. Every row,
// including the last, is newline-terminated.
func Encode(header []string, rows [][]string) string {
	var sb strings.Builder
	sb.WriteString(EncodeRow(header))
	sb.WriteByte('\n')
	for _, row := range rows {
		sb.WriteString(EncodeRow(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Escape quotes a value when it contains a comma, a quote, or a newline,
// doubling any internal quotes. An empty value encodes as the empty string.
func Escape(value string) string {
	if value == "" {
		return ""
	}
	if strings.ContainsAny(value, ",\"\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}
