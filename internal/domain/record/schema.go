// Package record implements the in-memory repository engine shared by every
// entity type. A repository is parameterized by a Schema describing the
// entity's CSV columns and the bidirectional row/record mapping; type
// conversion is lenient so one malformed cell never loses a row.
package record

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Field formats shared by every entity file.
const (
	DateFormat  = "2006-01-02"
	ClockFormat = "15:04"
)

// Schema describes one entity type to the repository engine: its CSV column
// order, ID conventions, and the row/record conversion functions.
type Schema[T any] struct {
	Entity    string   // logical name, used in logs
	IDPrefix  string   // alphabetic ID prefix; empty when IDs are externally assigned
	IDWidth   int      // zero-padded width of the numeric ID suffix
	Columns   []string // CSV header, order is the compatibility contract
	MinFields int      // rows with fewer fields are dropped on load

	ID     func(T) string
	Decode func(*Row) T
	Encode func(T) []string
}

// ParseWarning records a cell that failed type conversion during load and
// was replaced by its zero value, or a row dropped for having too few
// fields. Line numbers are 1-based and count the header.
type ParseWarning struct {
	Line   int
	Column string
	Value  string
	Reason string
}

func (w ParseWarning) String() string {
	if w.Column == "" {
		return fmt.Sprintf("line %d: %s", w.Line, w.Reason)
	}
	return fmt.Sprintf("line %d, %s: %s (%q)", w.Line, w.Column, w.Reason, w.Value)
}

// Row is a positional view over one decoded CSV row. Its typed getters
// degrade to zero values on conversion failure, recording a warning instead
// of failing the row.
type Row struct {
	fields  []string
	columns []string
	line    int
	warns   *[]ParseWarning
}

// Field returns the raw string at index i, or "" past the end of the row.
func (r *Row) Field(i int) string {
	if i < 0 || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

// Date parses the field at i as yyyy-MM-dd. Missing or unparsable values
// yield the zero time (absent), the latter with a warning.
func (r *Row) Date(i int) time.Time {
	s := r.Field(i)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		r.warn(i, s, "invalid date")
		return time.Time{}
	}
	return t
}

// Clock parses the field at i as HH:mm. Missing or unparsable values yield
// the zero time, the latter with a warning.
func (r *Row) Clock(i int) time.Time {
	s := r.Field(i)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(ClockFormat, s)
	if err != nil {
		r.warn(i, s, "invalid time")
		return time.Time{}
	}
	return t
}

// Int parses the field at i as an integer, yielding 0 with a warning on
// failure. An empty field is 0 without a warning.
func (r *Row) Int(i int) int {
	s := r.Field(i)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		r.warn(i, s, "invalid integer")
		return 0
	}
	return n
}

func (r *Row) warn(i int, value, reason string) {
	col := ""
	if i >= 0 && i < len(r.columns) {
		col = r.columns[i]
	}
	*r.warns = append(*r.warns, ParseWarning{Line: r.line, Column: col, Value: value, Reason: reason})
}

// FormatDate renders a date as yyyy-MM-dd, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateFormat)
}

// FormatClock renders a time of day as HH:mm, or "" for the zero time.
func FormatClock(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(ClockFormat)
}

// NextID derives the next sequential ID for a set of existing IDs: the
// prefix plus the zero-padded successor of the highest numeric suffix.
// Suffixes that fail to parse are ignored; an empty set yields suffix 1.
func NextID(ids []string, prefix string, width int) string {
	maxID := 0
	for _, id := range ids {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(id[len(prefix):])
		if err != nil {
			continue
		}
		if n > maxID {
			maxID = n
		}
	}
	return fmt.Sprintf("%s%0*d", prefix, width, maxID+1)
}
